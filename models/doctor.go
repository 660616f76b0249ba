package models

import "strconv"

// Doctor is a read-only record served by the doctor directory endpoint.
type Doctor struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Qualification string  `json:"qualification"`
	Experience    string  `json:"experience"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Speciality    string  `json:"speciality"`
	Address       string  `json:"address"`
	Image         string  `json:"image"`
}

// ExperienceYears parses the experience field, which the directory serves as a
// string. Unparseable values count as zero years.
func (d Doctor) ExperienceYears() int {
	years, err := strconv.Atoi(d.Experience)
	if err != nil {
		return 0
	}
	return years
}
