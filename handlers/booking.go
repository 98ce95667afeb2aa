package handlers

import (
	"errors"
	"net/http"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/booking"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves booking listing, lookup and admission.
type BookingHandler struct {
	Admission booking.AdmissionService
	Bookings  bookingRepo.BookingRepository
}

func NewBookingHandler(admission booking.AdmissionService, bookings bookingRepo.BookingRepository) *BookingHandler {
	return &BookingHandler{Admission: admission, Bookings: bookings}
}

// GetBookings lists the authenticated patient's bookings. The email query
// must match the token subject.
func (h *BookingHandler) GetBookings(c *gin.Context) {
	email := c.Query("email")
	tokenEmail := c.GetString(middleware.TokenEmailKey)
	if email != tokenEmail {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	bookings, err := h.Bookings.GetByEmail(c.Request.Context(), email)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingByID returns a single booking, or null when the id matches
// nothing.
func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	id := c.Param("id")
	b, err := h.Bookings.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, b)
}

// CreateBooking runs the admission controller. A duplicate for the same
// (date, treatment, email) comes back acknowledged=false with a message, as a
// normal response rather than an error status.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload", err.Error())
		return
	}

	b, err := h.Admission.Submit(c.Request.Context(), req)
	if err != nil {
		var conflict *booking.ConflictError
		if errors.As(err, &conflict) {
			c.JSON(http.StatusOK, gin.H{"acknowledged": false, "message": conflict.Message})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create booking", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "booking": b})
}
