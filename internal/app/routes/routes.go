package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/initi8now/waitlist/internal/app/controllers"
	"github.com/initi8now/waitlist/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	waitlistController *controllers.WaitlistController,
	newsletterController *controllers.NewsletterController,
	notificationController *controllers.NotificationController,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Browser clients submit from the landing page origin
	corsConfig := cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"authorization", "x-client-info", "apikey", "content-type"},
		MaxAge:          12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public submission routes ---
	waitlist := v1.Group("/waitlist")
	{
		waitlist.POST("/students", waitlistController.SubmitStudent)
		waitlist.POST("/recruiters", waitlistController.SubmitRecruiter)
	}

	newsletter := v1.Group("/newsletter")
	{
		newsletter.POST("/subscribe", newsletterController.Subscribe)
	}

	notifications := v1.Group("/notifications")
	{
		notifications.POST("/waitlist", notificationController.Dispatch)
	}

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
	}

	// --- Admin dashboard routes ---
	// The role check runs before any collection data is touched
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.AdminRequired())
	{
		admin.GET("/students", adminController.ListStudents)
		admin.GET("/recruiters", adminController.ListRecruiters)
		admin.GET("/newsletter", adminController.ListSubscribers)
		admin.GET("/stats", adminController.Stats)
		admin.GET("/export/:collection", adminController.Export)
	}
}
