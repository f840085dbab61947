package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"medibook/handlers"
	"medibook/middleware"
	"medibook/utils"
)

// RegisterAppointmentRoutes registers the patient-facing booking endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", bh.CreateAppointment)
		api.GET("/mine", bh.ListPatientAppointments)
		api.DELETE("/:id", bh.CancelAppointment)
		api.PATCH("/:id/status", bh.UpdateStatus)
		api.PATCH("/:id/attendance", bh.UpdateAttendance)
	}
}

// RegisterDoctorRoutes registers physician profile, availability, and
// calendar endpoints.
func RegisterDoctorRoutes(r *gin.Engine, dh *handlers.DoctorHandler, bh *handlers.BookingHandler) {
	api := r.Group("/api/doctors")
	{
		// Public read endpoints: patients browse doctors and open slots.
		api.GET("", dh.ListDoctors)
		api.GET("/:id", dh.GetDoctor)
		api.GET("/:id/availability", dh.GetAvailability)
		api.GET("/:id/availability/dates", dh.GetAvailableDates)
		api.GET("/:id/slots/:date", dh.GetAvailableSlots)
		api.GET("/:id/booked/:date", bh.ListBookedTimes)

		// Endpoints that modify doctor data or expose the calendar view
		// require doctor credentials.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole("doctor"))
		protected.POST("", dh.RegisterDoctor)
		protected.PUT("/:id/availability/worktimes", dh.SetWorkTimes)
		protected.PUT("/:id/availability/slot-duration", dh.SetSlotDuration)
		protected.POST("/:id/availability/exceptions", dh.AddException)
		protected.DELETE("/:id/availability/exceptions/:date", dh.RemoveException)
		protected.GET("/:id/calendar/:year/:month", dh.GetMonthCalendar)
		protected.GET("/:id/stats/:date", dh.GetAttendanceStats)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, bh *handlers.BookingHandler, dh *handlers.DoctorHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAppointmentRoutes(r, bh)
	RegisterDoctorRoutes(r, dh, bh)
}
