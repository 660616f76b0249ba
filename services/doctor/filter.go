package doctor

import (
	"strings"

	"medico/models"
)

// Filters are the listing-page controls. Zero values for Speciality and
// Qualification mean unrestricted; the sliders default to their permissive
// ends (max price 500, min experience 0).
type Filters struct {
	Speciality    string
	MaxPrice      float64
	MinExperience int
	Qualification string
}

// DefaultFilters returns the unrestricted filter set.
func DefaultFilters() Filters {
	return Filters{MaxPrice: 500}
}

// Apply runs the filters in sequence over the fetched collection: speciality
// (exact, case-insensitive), maximum price (inclusive), minimum experience
// (inclusive), qualification (substring). Ordering is preserved from the
// input; there is no client-side sort.
func Apply(doctors []models.Doctor, f Filters) []models.Doctor {
	filtered := doctors

	if f.Speciality != "" {
		filtered = keep(filtered, func(d models.Doctor) bool {
			return strings.EqualFold(d.Speciality, f.Speciality)
		})
	}

	filtered = keep(filtered, func(d models.Doctor) bool {
		return d.Price <= f.MaxPrice
	})

	filtered = keep(filtered, func(d models.Doctor) bool {
		return d.ExperienceYears() >= f.MinExperience
	})

	if f.Qualification != "" {
		filtered = keep(filtered, func(d models.Doctor) bool {
			return strings.Contains(d.Qualification, f.Qualification)
		})
	}

	return filtered
}

func keep(doctors []models.Doctor, pred func(models.Doctor) bool) []models.Doctor {
	out := make([]models.Doctor, 0, len(doctors))
	for _, d := range doctors {
		if pred(d) {
			out = append(out, d)
		}
	}
	return out
}

// Qualifications derives the filter vocabulary from the collection itself:
// each doctor's qualification string split on commas, trimmed, deduplicated,
// in first-seen order.
func Qualifications(doctors []models.Doctor) []string {
	seen := make(map[string]bool)
	var out []string
	for _, d := range doctors {
		for _, token := range strings.Split(d.Qualification, ",") {
			token = strings.TrimSpace(token)
			if token == "" || seen[token] {
				continue
			}
			seen[token] = true
			out = append(out, token)
		}
	}
	return out
}
