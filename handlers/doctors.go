package handlers

import (
	"net/http"
	"strconv"

	"medico/services/doctor"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// parseFilters reads the listing controls from the query string, falling back
// to the permissive defaults (price slider at 500, experience slider at 0).
func parseFilters(c *gin.Context) doctor.Filters {
	filters := doctor.DefaultFilters()
	filters.Speciality = c.Query("speciality")
	filters.Qualification = c.Query("qualification")

	if raw := c.Query("price"); raw != "" {
		if price, err := strconv.ParseFloat(raw, 64); err == nil && price >= 0 && price <= 500 {
			filters.MaxPrice = price
		}
	}
	if raw := c.Query("experience"); raw != "" {
		if years, err := strconv.Atoi(raw); err == nil && years >= 0 && years <= 20 {
			filters.MinExperience = years
		}
	}
	return filters
}

// Doctors renders the listing: the full collection is fetched per request,
// then filtered here. Every filter change round-trips as query parameters.
func (h *Handler) Doctors(c *gin.Context) {
	filters := parseFilters(c)

	doctors, err := h.Backend.FetchDoctors(c.Request.Context())
	if err != nil {
		h.Logger.Warn("failed to fetch doctors", zap.Error(err))
		h.render(c, http.StatusOK, "doctors.html", gin.H{
			"Error":   "Failed to load doctors. Please try again later.",
			"Filters": filters,
		})
		return
	}

	h.render(c, http.StatusOK, "doctors.html", gin.H{
		"Doctors":        doctor.Apply(doctors, filters),
		"Qualifications": doctor.Qualifications(doctors),
		"Filters":        filters,
		"Class":          c.Query("class"),
	})
}
