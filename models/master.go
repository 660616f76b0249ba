package models

// MasterData is the reference vocabulary used to populate search controls.
type MasterData struct {
	BookingClass []string `json:"bookingClass"`
	Locations    []string `json:"locations"`
	Speciality   []string `json:"speciality"`
}
