package routes

import (
	"net/http"
	"time"

	"github.com/blue9kamrul/SkillBridge-backend/handlers"
	"github.com/blue9kamrul/SkillBridge-backend/middleware"
	"github.com/blue9kamrul/SkillBridge-backend/models"
	"github.com/blue9kamrul/SkillBridge-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// RegisterAuthRoutes registers signup, signin and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/signin", hb.Auth.SignInHandler)
		api.POST("/signout", hb.Auth.SignOutHandler)

		api.GET("/me", middleware.JWTAuthMiddleware(hb.AuthService), hb.Auth.MeHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
// Creation is student-only; deletion is allowed to students and admins.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AuthService))
		api.POST("", middleware.RequireRole(models.RoleStudent), hb.Booking.CreateBookingHandler)
		api.GET("", hb.Booking.ListBookingsHandler)
		api.GET("/:id", hb.Booking.GetBookingHandler)
		api.PATCH("/:id/status", hb.Booking.UpdateBookingStatusHandler)
		api.DELETE("/:id", middleware.RequireRole(models.RoleStudent, models.RoleAdmin), hb.Booking.DeleteBookingHandler)
	}
}

// RegisterTutorRoutes registers tutor discovery and profile endpoints.
func RegisterTutorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tutors")
	{
		// Public discovery endpoints.
		api.GET("", hb.Tutor.ListTutorsHandler)
		api.GET("/featured", hb.Tutor.FeaturedTutorsHandler)
		api.GET("/available", hb.Tutor.AvailableTutorsHandler)
		api.GET("/:id", hb.Tutor.GetTutorHandler)
		api.GET("/:id/availability", hb.Tutor.GetTutorAvailabilityHandler)
		api.GET("/:id/reviews", hb.Review.ListTutorReviewsHandler)
		api.GET("/:id/bookings", hb.Booking.GetTutorBookingsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.AuthService))
		protected.POST("", hb.Tutor.CreateTutorProfileHandler)
		protected.GET("/me", middleware.RequireRole(models.RoleTutor), hb.Tutor.GetMyTutorProfileHandler)
		protected.PATCH("/me", middleware.RequireRole(models.RoleTutor), hb.Tutor.UpdateMyTutorProfileHandler)
		protected.PATCH("/me/availability", middleware.RequireRole(models.RoleTutor), hb.Tutor.UpdateMyAvailabilityHandler)
		protected.DELETE("/:id", hb.Tutor.DeleteTutorProfileHandler)
	}
}

// RegisterStudentRoutes registers the authenticated user's profile endpoints.
func RegisterStudentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/students")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AuthService))
		api.GET("/me", hb.Student.GetMyProfileHandler)
		api.PATCH("/me", hb.Student.UpdateMyProfileHandler)
	}
}

// RegisterReviewRoutes registers review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AuthService))
		api.GET("", hb.Review.ListReviewsHandler)
		api.POST("", middleware.RequireRole(models.RoleStudent), hb.Review.CreateReviewHandler)
		api.PATCH("/:id", hb.Review.UpdateReviewHandler)
		api.DELETE("/:id", hb.Review.DeleteReviewHandler)
	}
}

// RegisterCategoryRoutes registers category endpoints. Reads are public,
// writes require an admin.
func RegisterCategoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/categories")
	{
		api.GET("", hb.Category.ListCategoriesHandler)
		api.GET("/:id", hb.Category.GetCategoryHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.AuthService), middleware.RequireAdmin())
		protected.POST("", hb.Category.CreateCategoryHandler)
		protected.PATCH("/:id", hb.Category.UpdateCategoryHandler)
		protected.DELETE("/:id", hb.Category.DeleteCategoryHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AuthService), middleware.RequireAdmin())
		api.GET("/dashboard", hb.Admin.DashboardHandler)
		api.GET("/users", hb.Admin.ListUsersHandler)
		api.PATCH("/users/:id/role", hb.Admin.UpdateUserRoleHandler)
		api.PATCH("/users/:id/status", hb.Admin.UpdateUserStatusHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm SkillBridge"})
	})
}

// RegisterMetricsRoute exposes the prometheus scrape endpoint.
func RegisterMetricsRoute(r *gin.Engine, gatherer prometheus.Gatherer) {
	r.GET("/metrics", gin.WrapH(utils.MetricsHandler(gatherer)))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, gatherer prometheus.Gatherer) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterTutorRoutes(r, hb)
	RegisterStudentRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterCategoryRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterMetricsRoute(r, gatherer)
}
