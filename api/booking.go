package api

import (
	"context"
	"net/http"

	"medico/models"
)

// MyBookings retrieves the signed-in user's bookings.
func (c *Client) MyBookings(ctx context.Context, token string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.do(ctx, http.MethodGet, "/booking/myBookings", token, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CreateBooking submits a new appointment. The request carries the already
// adjusted price and the formatted date/time strings.
func (c *Client) CreateBooking(ctx context.Context, token string, req models.BookingRequest) (*models.Booking, error) {
	var booking models.Booking
	if err := c.do(ctx, http.MethodPost, "/booking", token, req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// CancelBooking deletes a booking by id. No response body is expected.
func (c *Client) CancelBooking(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/booking/"+id, token, nil, nil)
}
