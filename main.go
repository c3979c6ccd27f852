package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blue9kamrul/SkillBridge-backend/config"
	"github.com/blue9kamrul/SkillBridge-backend/database"
	bookingRepoPkg "github.com/blue9kamrul/SkillBridge-backend/database/repository/booking"
	categoryRepoPkg "github.com/blue9kamrul/SkillBridge-backend/database/repository/category"
	reviewRepoPkg "github.com/blue9kamrul/SkillBridge-backend/database/repository/review"
	tutorRepoPkg "github.com/blue9kamrul/SkillBridge-backend/database/repository/tutor"
	userRepoPkg "github.com/blue9kamrul/SkillBridge-backend/database/repository/user"
	"github.com/blue9kamrul/SkillBridge-backend/handlers"
	"github.com/blue9kamrul/SkillBridge-backend/routes"
	"github.com/blue9kamrul/SkillBridge-backend/services/admin"
	"github.com/blue9kamrul/SkillBridge-backend/services/auth"
	"github.com/blue9kamrul/SkillBridge-backend/services/booking"
	"github.com/blue9kamrul/SkillBridge-backend/services/category"
	"github.com/blue9kamrul/SkillBridge-backend/services/review"
	"github.com/blue9kamrul/SkillBridge-backend/services/student"
	"github.com/blue9kamrul/SkillBridge-backend/services/tutor"
	"github.com/blue9kamrul/SkillBridge-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	registry := prometheus.NewRegistry()
	metrics := utils.NewMetrics(registry)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	tutorRepo := tutorRepoPkg.NewMongoTutorRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	categoryRepo := categoryRepoPkg.NewMongoCategoryRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	// services.
	authService := &auth.DefaultAuthService{
		Repo:  userRepo,
		Cache: utils.GetAuthCacheClient(),
	}
	bookingService := &booking.DefaultBookingService{
		Repo:      bookingRepo,
		TutorRepo: tutorRepo,
		UserRepo:  userRepo,
		Metrics:   metrics,
	}
	tutorService := &tutor.DefaultTutorService{
		Repo:         tutorRepo,
		UserRepo:     userRepo,
		ReviewRepo:   reviewRepo,
		CategoryRepo: categoryRepo,
		Cache:        utils.GetCacheClient(),
	}
	studentService := &student.DefaultStudentService{
		Repo: userRepo,
	}
	reviewService := &review.DefaultReviewService{
		Repo:      reviewRepo,
		TutorRepo: tutorRepo,
		UserRepo:  userRepo,
	}
	categoryService := &category.DefaultCategoryService{
		Repo: categoryRepo,
	}
	adminService := &admin.DefaultAdminService{
		UserRepo:     userRepo,
		TutorRepo:    tutorRepo,
		BookingRepo:  bookingRepo,
		CategoryRepo: categoryRepo,
		ReviewRepo:   reviewRepo,
	}

	// Seed the configured admin account if it does not exist yet.
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authService.EnsureAdmin(seedCtx); err != nil {
		logger.Sugar().Warnf("main: failed to seed admin account: %v", err)
	}
	seedCancel()

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AuthService: authService,

		Auth:     handlers.NewAuthHandler(authService),
		Booking:  handlers.NewBookingHandler(bookingService),
		Tutor:    handlers.NewTutorHandler(tutorService),
		Student:  handlers.NewStudentHandler(studentService),
		Review:   handlers.NewReviewHandler(reviewService),
		Category: handlers.NewCategoryHandler(categoryService),
		Admin:    handlers.NewAdminHandler(adminService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, registry)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
