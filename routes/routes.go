package routes

import (
	"net/http"
	"time"

	"medico/handlers"
	"medico/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the pages every visitor can reach.
func RegisterPublicRoutes(r *gin.Engine, h *handlers.Handler) {
	r.GET("/", h.Home)
	r.GET("/search", h.Search)
	r.GET("/doctors", h.Doctors)
	r.GET("/doctor/:doctorid", h.DoctorDetails)
	r.POST("/doctor/:doctorid/book", h.BookAppointment)
}

// RegisterAuthRoutes registers the sign-in/sign-up pages. Signed-in users are
// redirected away from them, back to home.
func RegisterAuthRoutes(r *gin.Engine, h *handlers.Handler) {
	guest := r.Group("")
	guest.Use(middleware.RedirectAuthenticated())
	{
		guest.GET("/login", h.LoginPage)
		guest.POST("/login", h.LoginSubmit)
		guest.GET("/register", h.RegisterPage)
		guest.POST("/register", h.RegisterSubmit)
	}
	r.POST("/logout", h.Logout)
}

// RegisterBookingRoutes registers the bookings-management pages.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.Handler) {
	bookings := r.Group("/my-bookings")
	{
		bookings.GET("", h.MyBookings)
		bookings.GET("/:id/cancel", h.ConfirmCancel)
		bookings.POST("/:id/cancel", h.CancelBooking)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Medico"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.SessionMiddleware(h.Sessions))

	RegisterPublicRoutes(r, h)
	RegisterAuthRoutes(r, h)
	RegisterBookingRoutes(r, h)
	RegisterHealthRoute(r)
}
