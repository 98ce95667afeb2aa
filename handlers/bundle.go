package handlers

import (
	"doctorsportal/services/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// UserService is needed by the admin-gating middleware for role lookups.
	UserService user.UserService

	// Appointment endpoints
	GetAppointmentOptionsHandler gin.HandlerFunc
	GetSpecialitiesHandler       gin.HandlerFunc

	// Booking endpoints
	GetBookingsHandler    gin.HandlerFunc
	GetBookingByIDHandler gin.HandlerFunc
	CreateBookingHandler  gin.HandlerFunc

	// Payment endpoints
	CreatePaymentIntentHandler gin.HandlerFunc
	RecordPaymentHandler       gin.HandlerFunc

	// User and token endpoints
	IssueJWTHandler     gin.HandlerFunc
	GetUsersHandler     gin.HandlerFunc
	CreateUserHandler   gin.HandlerFunc
	CheckAdminHandler   gin.HandlerFunc
	PromoteAdminHandler gin.HandlerFunc

	// Doctor endpoints
	CreateDoctorHandler gin.HandlerFunc
	GetDoctorsHandler   gin.HandlerFunc
	DeleteDoctorHandler gin.HandlerFunc
}
