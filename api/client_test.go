package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medico/models"

	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, zap.NewNop()), srv
}

func TestFetchDoctorsDecodesCollection(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/doctor" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing request id header")
		}
		json.NewEncoder(w).Encode([]models.Doctor{
			{ID: "1", Name: "Dr. Rao", Price: 200, Experience: "15"},
			{ID: "2", Name: "Dr. Lee", Price: 120, Experience: "6"},
		})
	})

	doctors, err := client.FetchDoctors(context.Background())
	if err != nil {
		t.Fatalf("FetchDoctors: %v", err)
	}
	if len(doctors) != 2 || doctors[0].Name != "Dr. Rao" {
		t.Errorf("unexpected doctors: %+v", doctors)
	}
}

func TestMyBookingsAttachesBearerToken(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/booking/myBookings" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("Authorization = %q", got)
		}
		json.NewEncoder(w).Encode([]models.Booking{{ID: "b1"}})
	})

	bookings, err := client.MyBookings(context.Background(), "tok-123")
	if err != nil {
		t.Fatalf("MyBookings: %v", err)
	}
	if len(bookings) != 1 || bookings[0].ID != "b1" {
		t.Errorf("unexpected bookings: %+v", bookings)
	}
}

func TestCreateBookingSendsPayload(t *testing.T) {
	var got models.BookingRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/booking" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(models.Booking{ID: "b9"})
	})

	req := models.BookingRequest{
		DoctorID:        "doc-1",
		Price:           150,
		BookingClass:    models.ClassPremium,
		AppointmentDate: "15-03-2026",
		AppointmentTime: "9:00AM",
		BookedBy:        "alice",
	}
	created, err := client.CreateBooking(context.Background(), "tok", req)
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if created.ID != "b9" {
		t.Errorf("created.ID = %q", created.ID)
	}
	if got != req {
		t.Errorf("backend received %+v, want %+v", got, req)
	}
}

func TestCancelBookingIssuesDelete(t *testing.T) {
	called := false
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		if r.Method != http.MethodDelete || r.URL.Path != "/booking/b1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	})

	if err := client.CancelBooking(context.Background(), "tok", "b1"); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}
	if !called {
		t.Error("backend never called")
	}
}

func TestLoginPassesThroughBadCredentials(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"message": "Bad credentials"})
	})

	resp, err := client.Login(context.Background(), models.LoginRequest{Username: "a", Password: "b"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token != "" || resp.Message != "Bad credentials" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestStatusErrorsCarryCodeAndMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"message": "Account locked"})
	})

	_, err := client.Login(context.Background(), models.LoginRequest{Username: "a", Password: "b"})
	if err == nil {
		t.Fatal("expected error")
	}
	if IsTransport(err) {
		t.Error("status failure misclassified as transport")
	}
	if StatusCode(err) != http.StatusForbidden {
		t.Errorf("StatusCode = %d", StatusCode(err))
	}
	if ServerMessage(err) != "Account locked" {
		t.Errorf("ServerMessage = %q", ServerMessage(err))
	}
}

func TestTransportErrorsAreClassified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	client := NewClient(srv.URL, time.Second, zap.NewNop())
	_, err := client.FetchDoctors(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsTransport(err) {
		t.Errorf("expected transport classification, got %v", err)
	}
	if StatusCode(err) != 0 {
		t.Errorf("StatusCode = %d, want 0", StatusCode(err))
	}
}

func TestRegisterSurfacesServerMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "Username already taken"})
	})

	err := client.Register(context.Background(), models.RegisterRequest{Username: "alice"})
	if err == nil {
		t.Fatal("expected error")
	}
	if ServerMessage(err) != "Username already taken" {
		t.Errorf("ServerMessage = %q", ServerMessage(err))
	}
}
