package booking

import "medico/models"

// Multiplier returns the fee multiplier for a booking class. Unknown classes
// price as GENERAL.
func Multiplier(class models.BookingClass) float64 {
	switch class {
	case models.ClassPremium:
		return 1.5
	case models.ClassEmergency:
		return 2
	default:
		return 1
	}
}

// AdjustedPrice computes the consultation fee for a class from the doctor's
// base price. This value is submitted as-is on booking; whether the backend
// re-validates it is outside this client's view.
func AdjustedPrice(basePrice float64, class models.BookingClass) float64 {
	return basePrice * Multiplier(class)
}
