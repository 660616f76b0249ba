package models

import "strings"

// BookingClass is the service tier of an appointment.
type BookingClass string

const (
	ClassGeneral   BookingClass = "GENERAL"
	ClassPremium   BookingClass = "PREMIUM"
	ClassEmergency BookingClass = "EMERGENCY"
)

// BookingClassLabels are the form labels, class name plus implied duration.
// The wire value is the first word only.
var BookingClassLabels = []string{
	"GENERAL (15 Minutes)",
	"PREMIUM (30 Minutes)",
	"EMERGENCY",
}

// ClassFromLabel strips the duration annotation from a form label, e.g.
// "PREMIUM (30 Minutes)" -> PREMIUM. Unknown labels map onto themselves so the
// backend sees whatever was submitted.
func ClassFromLabel(label string) BookingClass {
	word, _, _ := strings.Cut(label, " ")
	return BookingClass(word)
}

// Color returns the accent color keyed by class, used on the bookings page.
func (b BookingClass) Color() string {
	switch b {
	case ClassEmergency:
		return "red"
	case ClassPremium:
		return "purple"
	default:
		return "amber"
	}
}

// Booking is a confirmed appointment as returned by the booking endpoints.
// The client only ever creates or deletes these, never mutates one.
type Booking struct {
	ID              string       `json:"id"`
	DoctorID        string       `json:"doctorId"`
	Price           float64      `json:"price"`
	BookingClass    BookingClass `json:"bookingClass"`
	AppointmentDate string       `json:"appointmentDate"`
	AppointmentTime string       `json:"appointmentTime"`
	Status          string       `json:"status,omitempty"`
	BookedBy        string       `json:"bookedBy,omitempty"`
	BookedOn        string       `json:"bookedOn,omitempty"`
}

// BookingRequest is the submission payload for POST /booking. The price is
// computed on this side and submitted as-is; nothing here assumes the backend
// re-validates it.
type BookingRequest struct {
	DoctorID        string       `json:"doctorId"`
	Price           float64      `json:"price"`
	BookingClass    BookingClass `json:"bookingClass"`
	AppointmentDate string       `json:"appointmentDate"`
	AppointmentTime string       `json:"appointmentTime"`
	BookedBy        string       `json:"bookedBy"`
}
