package handlers

import (
	"net/http"

	"medico/middleware"
	"medico/models"
	"medico/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	bookingsLoadFailed  = "Failed to load bookings. Please try again later."
	cancelFailedMessage = "Failed to cancel booking. Please try again."
)

// fetchBookings loads the signed-in user's bookings with the stored token.
func (h *Handler) fetchBookings(c *gin.Context) ([]models.Booking, error) {
	return h.Backend.MyBookings(c.Request.Context(), utils.GetAuthToken(c))
}

// MyBookings renders the bookings list. Anonymous visitors are sent to the
// login page; there is nothing to show without a token.
func (h *Handler) MyBookings(c *gin.Context) {
	if middleware.CurrentUser(c) == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	bookings, err := h.fetchBookings(c)
	if err != nil {
		h.Logger.Warn("failed to fetch bookings", zap.Error(err))
		h.render(c, http.StatusOK, "my_bookings.html", gin.H{
			"Error": bookingsLoadFailed,
		})
		return
	}

	h.render(c, http.StatusOK, "my_bookings.html", gin.H{
		"Bookings": bookings,
	})
}

// ConfirmCancel renders the confirmation step for one booking. Nothing is
// deleted until the visitor confirms.
func (h *Handler) ConfirmCancel(c *gin.Context) {
	if middleware.CurrentUser(c) == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	bookingID := c.Param("id")
	bookings, err := h.fetchBookings(c)
	if err != nil {
		h.Logger.Warn("failed to fetch bookings", zap.Error(err))
		h.render(c, http.StatusOK, "my_bookings.html", gin.H{
			"Error": bookingsLoadFailed,
		})
		return
	}

	for _, b := range bookings {
		if b.ID == bookingID {
			h.render(c, http.StatusOK, "cancel_booking.html", gin.H{
				"Booking": b,
			})
			return
		}
	}
	c.Redirect(http.StatusFound, "/my-bookings")
}

// CancelBooking issues the deletion after confirmation. Success lands back on
// the list, where the cancelled entry is gone; failure re-renders the list
// unchanged with an error banner.
func (h *Handler) CancelBooking(c *gin.Context) {
	if middleware.CurrentUser(c) == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	bookingID := c.Param("id")
	token := utils.GetAuthToken(c)
	if err := h.Backend.CancelBooking(c.Request.Context(), token, bookingID); err != nil {
		h.Logger.Warn("failed to cancel booking", zap.String("bookingId", bookingID), zap.Error(err))
		bookings, fetchErr := h.fetchBookings(c)
		if fetchErr != nil {
			bookings = nil
		}
		h.render(c, http.StatusOK, "my_bookings.html", gin.H{
			"Bookings": bookings,
			"Error":    cancelFailedMessage,
		})
		return
	}

	c.Redirect(http.StatusFound, "/my-bookings")
}
