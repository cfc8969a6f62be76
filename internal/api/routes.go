package api

import (
	"net/http"

	"vigor/fitness-app/internal/domain" // Needed for RoleMiddleware
	"vigor/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	catalogService service.CatalogService,
	recoveryService service.RecoveryService,
	readinessService service.ReadinessService,
	recommendationService service.RecommendationService,
) {

	authHandler := NewAuthHandler(authService)
	exerciseHandler := NewExerciseHandler(catalogService)
	recoveryHandler := NewRecoveryHandler(recoveryService)
	readinessHandler := NewReadinessHandler(readinessService)
	recommendationHandler := NewRecommendationHandler(recommendationService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", authHandler.GetProfile)
		protected.PUT("/me", authHandler.UpdateProfile)

		// --- Exercise Catalog Routes ---
		exerciseGroup := protected.Group("/exercises")
		{
			// Every authenticated user can browse the catalog; only
			// coaches can change it.
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.GET("/:id/demo", exerciseHandler.GetDemoVideoURL)

			exerciseGroup.POST("", RoleMiddleware(domain.RoleCoach), exerciseHandler.CreateExercise)
			exerciseGroup.PUT("/:id", RoleMiddleware(domain.RoleCoach), exerciseHandler.UpdateExercise)
			exerciseGroup.DELETE("/:id", RoleMiddleware(domain.RoleCoach), exerciseHandler.DeleteExercise)
			exerciseGroup.POST("/:id/demo/upload-url", RoleMiddleware(domain.RoleCoach), exerciseHandler.RequestDemoUploadURL)
			exerciseGroup.POST("/:id/demo", RoleMiddleware(domain.RoleCoach), exerciseHandler.AttachDemoVideo)
		}

		// --- Recovery Tracker Routes ---
		// POST /api/v1/training/sessions
		protected.POST("/training/sessions", recoveryHandler.LogSession)
		// GET /api/v1/recovery
		protected.GET("/recovery", recoveryHandler.GetRecoveryStatus)

		// --- Readiness Routes ---
		readinessGroup := protected.Group("/readiness")
		{
			readinessGroup.POST("", readinessHandler.LogReadiness)
			readinessGroup.GET("/today", readinessHandler.GetTodayReadiness)
			readinessGroup.GET("/history", readinessHandler.GetReadinessHistory)
		}

		// --- Recommendation Routes ---
		// POST /api/v1/recommendations
		protected.POST("/recommendations", recommendationHandler.Recommend)
	}
}
