package booking

import (
	"time"

	"medico/models"
)

// Form is the booking form as submitted from the doctor details page. Dates
// arrive in the HTML date-input format (YYYY-MM-DD); Time is the 24-hour slot
// value; ClassLabel is the display label including the duration annotation.
type Form struct {
	ClassLabel string
	Date       string
	Time       string
}

const dateInputLayout = "2006-01-02"

// wireDateLayout is what the booking endpoint expects: DD-MM-YYYY.
const wireDateLayout = "02-01-2006"

// Validate checks that class, date and time are all selected, that the date is
// today or later, and that the time is one of the offered slots. The returned
// map is keyed by field name; submission is blocked unless it comes back empty.
func (f Form) Validate(now time.Time) map[string]string {
	errs := make(map[string]string)

	if f.ClassLabel == "" {
		errs["class"] = "Please select an appointment type"
	}

	if f.Date == "" {
		errs["date"] = "Please select a date"
	} else {
		date, err := time.Parse(dateInputLayout, f.Date)
		if err != nil {
			errs["date"] = "Please select a valid date"
		} else {
			today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
			if date.Before(today) {
				errs["date"] = "Appointment date cannot be in the past"
			}
		}
	}

	if f.Time == "" {
		errs["time"] = "Please select a time"
	} else if _, ok := SlotByValue(f.Time); !ok {
		errs["time"] = "Please select a valid time"
	}

	return errs
}

// BuildRequest assembles the submission payload for a validated form: the date
// reformatted to DD-MM-YYYY, the time as a compact 12-hour label, the class
// stripped of its duration annotation, and the fee adjusted by the class
// multiplier. Call Validate first; BuildRequest assumes the form passed.
func (f Form) BuildRequest(doctor models.Doctor, username string) models.BookingRequest {
	date, _ := time.Parse(dateInputLayout, f.Date)
	slot, _ := SlotByValue(f.Time)
	class := models.ClassFromLabel(f.ClassLabel)

	return models.BookingRequest{
		DoctorID:        doctor.ID,
		Price:           AdjustedPrice(doctor.Price, class),
		BookingClass:    class,
		AppointmentDate: date.Format(wireDateLayout),
		AppointmentTime: CompactLabel(slot.Label),
		BookedBy:        username,
	}
}
