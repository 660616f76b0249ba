package handlers

import (
	"net/http"
	"time"

	"medico/middleware"
	"medico/models"
	"medico/services/booking"
	"medico/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const bookingFailedMessage = "Failed to book appointment. Please try again."

// defaultClassLabel is the preselected appointment type.
var defaultClassLabel = models.BookingClassLabels[0]

// renderDetails renders the doctor page with the booking form in the given
// state. The displayed fee is recomputed from the selected class here; the
// page script mirrors the same multiplier table for live updates between
// submissions.
func (h *Handler) renderDetails(c *gin.Context, status int, doc *models.Doctor, form booking.Form, fieldErrors map[string]string, bookingError string) {
	classLabel := form.ClassLabel
	if classLabel == "" {
		classLabel = defaultClassLabel
	}
	class := models.ClassFromLabel(classLabel)

	h.render(c, status, "doctor_details.html", gin.H{
		"Doctor":        doc,
		"Classes":       models.BookingClassLabels,
		"Slots":         booking.GenerateTimeSlots(),
		"Today":         time.Now().Format("2006-01-02"),
		"SelectedClass": classLabel,
		"SelectedDate":  form.Date,
		"SelectedTime":  form.Time,
		"AdjustedPrice": booking.AdjustedPrice(doc.Price, class),
		"FieldErrors":   fieldErrors,
		"BookingError":  bookingError,
	})
}

// DoctorDetails renders a doctor's profile and the booking form.
func (h *Handler) DoctorDetails(c *gin.Context) {
	doctorID := c.Param("doctorid")
	doc, err := h.Backend.FetchDoctor(c.Request.Context(), doctorID)
	if err != nil {
		h.Logger.Warn("failed to fetch doctor", zap.String("doctorId", doctorID), zap.Error(err))
		h.render(c, http.StatusOK, "error.html", gin.H{
			"Message": "Failed to load doctor details. Please try again later.",
		})
		return
	}
	h.renderDetails(c, http.StatusOK, doc, booking.Form{}, nil, "")
}

// BookAppointment handles the booking form submission. An anonymous visitor is
// sent to the login page before any backend request is made; the in-progress
// form state is discarded.
func (h *Handler) BookAppointment(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	doctorID := c.Param("doctorid")
	form := booking.Form{
		ClassLabel: c.PostForm("class"),
		Date:       c.PostForm("date"),
		Time:       c.PostForm("time"),
	}

	doc, err := h.Backend.FetchDoctor(c.Request.Context(), doctorID)
	if err != nil {
		h.Logger.Warn("failed to fetch doctor", zap.String("doctorId", doctorID), zap.Error(err))
		h.render(c, http.StatusOK, "error.html", gin.H{
			"Message": "Failed to load doctor details. Please try again later.",
		})
		return
	}

	if fieldErrors := form.Validate(time.Now()); len(fieldErrors) > 0 {
		h.renderDetails(c, http.StatusOK, doc, form, fieldErrors, "")
		return
	}

	req := form.BuildRequest(*doc, user.Username)
	token := utils.GetAuthToken(c)
	if _, err := h.Backend.CreateBooking(c.Request.Context(), token, req); err != nil {
		h.Logger.Warn("booking failed",
			zap.String("doctorId", doctorID),
			zap.String("bookedBy", user.Username),
			zap.Error(err))
		h.renderDetails(c, http.StatusOK, doc, form, nil, bookingFailedMessage)
		return
	}

	c.Redirect(http.StatusFound, "/my-bookings")
}
