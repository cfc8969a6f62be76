package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vigor/fitness-app/internal/api"
	"vigor/fitness-app/internal/catalog"
	"vigor/fitness-app/internal/config"
	"vigor/fitness-app/internal/repository/mongo"
	"vigor/fitness-app/internal/service"
	"vigor/fitness-app/internal/storage"

	"github.com/gin-gonic/gin"
)

// @title Vigor Fitness API
// @version 1.0
// @description Recovery-aware workout recommendations: session logging, daily readiness check-ins and a "what should I do right now" selector.
// @contact.name API Support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log.Println("Starting Vigor App Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() { // Run index creation concurrently/in background
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureExerciseIndexes(ctx, appDB.Collection("exercises"))
		mongo.EnsureRecoveryIndexes(ctx, appDB.Collection("muscle_recovery"))
		mongo.EnsureReadinessIndexes(ctx, appDB.Collection("readiness_logs"))
		mongo.EnsureSessionIndexes(ctx, appDB.Collection("training_sessions"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	log.Println("Initializing file storage service...")
	fileStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	userRepo := mongo.NewMongoUserRepository(appDB)
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)
	recoveryRepo := mongo.NewMongoRecoveryRepository(appDB)
	readinessRepo := mongo.NewMongoReadinessRepository(appDB)
	sessionRepo := mongo.NewMongoSessionRepository(appDB)

	// --- Seed Exercise Catalog ---
	if cfg.Catalog.SeedOnStartup {
		seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
		inserted, err := catalog.Seed(seedCtx, exerciseRepo)
		cancelSeed()
		if err != nil {
			log.Printf("ERROR: Failed to seed exercise catalog: %v", err)
		} else if inserted > 0 {
			log.Printf("Seeded exercise catalog with %d exercises.", inserted)
		}
	}

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	catalogService := service.NewCatalogService(exerciseRepo, fileStorage)
	recoveryService := service.NewRecoveryService(recoveryRepo, sessionRepo)
	readinessService := service.NewReadinessService(readinessRepo)
	recommendationService := service.NewRecommendationService(userRepo, recoveryRepo, readinessRepo, exerciseRepo)

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, authService, catalogService, recoveryService, readinessService, recommendationService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
