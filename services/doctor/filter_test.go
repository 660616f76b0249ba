package doctor

import (
	"reflect"
	"testing"

	"medico/models"
)

func sampleDoctors() []models.Doctor {
	return []models.Doctor{
		{ID: "1", Name: "Dr. Rao", Speciality: "Cardiology", Price: 200, Experience: "15", Qualification: "MBBS, MD"},
		{ID: "2", Name: "Dr. Lee", Speciality: "Dermatology", Price: 120, Experience: "6", Qualification: "MBBS, DDVL"},
		{ID: "3", Name: "Dr. Okoye", Speciality: "Cardiology", Price: 350, Experience: "20", Qualification: "MBBS, DM"},
		{ID: "4", Name: "Dr. Silva", Speciality: "Pediatrics", Price: 90, Experience: "3", Qualification: "MBBS"},
	}
}

func ids(doctors []models.Doctor) []string {
	out := make([]string, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, d.ID)
	}
	return out
}

func TestApplyUnrestrictedKeepsBackendOrder(t *testing.T) {
	got := Apply(sampleDoctors(), DefaultFilters())
	if !reflect.DeepEqual(ids(got), []string{"1", "2", "3", "4"}) {
		t.Errorf("unexpected result: %v", ids(got))
	}
}

// Every doctor must survive a filter set pinned exactly to its own speciality
// and price when the other filters are unrestricted.
func TestApplyInclusionProperty(t *testing.T) {
	doctors := sampleDoctors()
	for _, d := range doctors {
		f := DefaultFilters()
		f.Speciality = d.Speciality
		f.MaxPrice = d.Price

		got := Apply(doctors, f)
		found := false
		for _, res := range got {
			if res.ID == d.ID {
				found = true
			}
		}
		if !found {
			t.Errorf("doctor %s excluded by its own speciality/price", d.ID)
		}
	}
}

func TestApplySpecialityCaseInsensitive(t *testing.T) {
	f := DefaultFilters()
	f.Speciality = "cardiology"
	got := Apply(sampleDoctors(), f)
	if !reflect.DeepEqual(ids(got), []string{"1", "3"}) {
		t.Errorf("speciality filter: %v", ids(got))
	}
}

func TestApplyPriceBoundInclusive(t *testing.T) {
	f := DefaultFilters()
	f.MaxPrice = 120
	got := Apply(sampleDoctors(), f)
	if !reflect.DeepEqual(ids(got), []string{"2", "4"}) {
		t.Errorf("price filter: %v", ids(got))
	}
}

func TestApplyExperienceBoundInclusive(t *testing.T) {
	f := DefaultFilters()
	f.MinExperience = 15
	got := Apply(sampleDoctors(), f)
	if !reflect.DeepEqual(ids(got), []string{"1", "3"}) {
		t.Errorf("experience filter: %v", ids(got))
	}
}

func TestApplyQualificationSubstring(t *testing.T) {
	f := DefaultFilters()
	f.Qualification = "MD"
	got := Apply(sampleDoctors(), f)
	if !reflect.DeepEqual(ids(got), []string{"1"}) {
		t.Errorf("qualification filter: %v", ids(got))
	}
}

func TestApplyFiltersInSequence(t *testing.T) {
	f := DefaultFilters()
	f.Speciality = "Cardiology"
	f.MaxPrice = 250
	f.MinExperience = 10
	got := Apply(sampleDoctors(), f)
	if !reflect.DeepEqual(ids(got), []string{"1"}) {
		t.Errorf("combined filters: %v", ids(got))
	}
}

func TestQualifications(t *testing.T) {
	got := Qualifications(sampleDoctors())
	want := []string{"MBBS", "MD", "DDVL", "DM"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Qualifications = %v, want %v", got, want)
	}
}

func TestQualificationsTrimsTokens(t *testing.T) {
	doctors := []models.Doctor{
		{Qualification: " MBBS ,  MD"},
		{Qualification: "MD"},
	}
	got := Qualifications(doctors)
	want := []string{"MBBS", "MD"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Qualifications = %v, want %v", got, want)
	}
}
