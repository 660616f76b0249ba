package booking

import (
	"fmt"
	"strings"
)

// TimeSlot pairs a 24-hour submission value with its 12-hour display label.
type TimeSlot struct {
	Value string // "09:00"
	Label string // "9:00 AM"
}

// GenerateTimeSlots returns the fixed hourly slots from 09:00 to 16:00, eight
// in total. The last appointment of the day starts at 4 PM.
func GenerateTimeSlots() []TimeSlot {
	var slots []TimeSlot
	for hour := 9; hour < 17; hour++ {
		display := hour
		if hour > 12 {
			display = hour - 12
		}
		meridiem := "AM"
		if hour >= 12 {
			meridiem = "PM"
		}
		slots = append(slots, TimeSlot{
			Value: fmt.Sprintf("%02d:00", hour),
			Label: fmt.Sprintf("%d:00 %s", display, meridiem),
		})
	}
	return slots
}

// SlotByValue finds the slot with the given 24-hour value.
func SlotByValue(value string) (TimeSlot, bool) {
	for _, slot := range GenerateTimeSlots() {
		if slot.Value == value {
			return slot, true
		}
	}
	return TimeSlot{}, false
}

// CompactLabel turns a display label into the submission form the booking
// endpoint expects: "9:00 AM" -> "9:00AM".
func CompactLabel(label string) string {
	return strings.ReplaceAll(label, " ", "")
}
