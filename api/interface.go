package api

import (
	"context"

	"medico/models"
)

// Backend is the remote booking service, consumed as an opaque REST API.
// Handlers depend on this interface so tests can substitute fakes.
type Backend interface {
	FetchMasterData(ctx context.Context) (*models.MasterData, error)
	FetchDoctors(ctx context.Context) ([]models.Doctor, error)
	FetchDoctor(ctx context.Context, id string) (*models.Doctor, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) error
	MyBookings(ctx context.Context, token string) ([]models.Booking, error)
	CreateBooking(ctx context.Context, token string, req models.BookingRequest) (*models.Booking, error)
	CancelBooking(ctx context.Context, token string, id string) error
}
