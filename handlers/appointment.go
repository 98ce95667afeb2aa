package handlers

import (
	"net/http"

	"doctorsportal/services/booking"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler serves the availability surface.
type AppointmentHandler struct {
	Availability booking.AvailabilityService
}

func NewAppointmentHandler(availability booking.AvailabilityService) *AppointmentHandler {
	return &AppointmentHandler{Availability: availability}
}

// GetAppointmentOptions returns the catalog with each treatment's slots
// reduced to those still open on the requested date.
func (h *AppointmentHandler) GetAppointmentOptions(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing date", "query parameter 'date' is required")
		return
	}

	options, err := h.Availability.AvailableOptions(c.Request.Context(), date)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, options)
}

// GetSpecialities returns the distinct treatment names.
func (h *AppointmentHandler) GetSpecialities(c *gin.Context) {
	specialities, err := h.Availability.Specialities(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch specialities", err.Error())
		return
	}
	c.JSON(http.StatusOK, specialities)
}
