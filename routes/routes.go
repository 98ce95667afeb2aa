package routes

import (
	"net/http"
	"time"

	"doctorsportal/handlers"
	"doctorsportal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAppointmentRoutes registers the open availability endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/appointmentOptions", hb.GetAppointmentOptionsHandler)
	r.GET("/appointmentSpeciality", hb.GetSpecialitiesHandler)
}

// RegisterBookingRoutes registers booking listing, lookup and admission.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/bookings", middleware.JWTAuthMiddleware(), hb.GetBookingsHandler)
	r.GET("/bookings/:id", hb.GetBookingByIDHandler)
	r.POST("/bookings", hb.CreateBookingHandler)
}

// RegisterPaymentRoutes registers the payment-gateway endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/create-payment-intent", hb.CreatePaymentIntentHandler)
	r.POST("/payments", hb.RecordPaymentHandler)
}

// RegisterUserRoutes registers token issuance and the user surface. Promotion
// requires an authenticated admin; the rest is open, mirroring the client's
// registration flow.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/jwt", hb.IssueJWTHandler)
	r.GET("/users", hb.GetUsersHandler)
	r.POST("/users", hb.CreateUserHandler)
	r.GET("/users/admin/:email", hb.CheckAdminHandler)
	r.PUT("/users/admin/:id",
		middleware.JWTAuthMiddleware(),
		middleware.AdminOnlyMiddleware(hb.UserService),
		hb.PromoteAdminHandler)
}

// RegisterDoctorRoutes registers the admin-gated doctor CRUD surface.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	doctorGroup := r.Group("/doctors")
	{
		doctorGroup.Use(middleware.JWTAuthMiddleware(), middleware.AdminOnlyMiddleware(hb.UserService))
		doctorGroup.POST("", hb.CreateDoctorHandler)
		doctorGroup.GET("", hb.GetDoctorsHandler)
		doctorGroup.DELETE("/:id", hb.DeleteDoctorHandler)
	}
}

// RegisterLivenessRoute registers the root liveness endpoint.
func RegisterLivenessRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Doctors portal running")
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterLivenessRoute(r)
	RegisterAppointmentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
}
