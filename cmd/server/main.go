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

	"fittrack/tracker-api/internal/api"
	"fittrack/tracker-api/internal/config"
	"fittrack/tracker-api/internal/nutrition"
	"fittrack/tracker-api/internal/repository/mongo"
	"fittrack/tracker-api/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting Workout & Nutrition Tracker Server...")

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
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureTemplateIndexes(ctx, appDB.Collection("workouttemplate"))
		mongo.EnsureSessionIndexes(ctx, appDB.Collection("workoutsession"))
		mongo.EnsureFoodLogIndexes(ctx, appDB.Collection("foodlog"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	templateRepo := mongo.NewMongoTemplateRepository(appDB)
	sessionRepo := mongo.NewMongoSessionRepository(appDB)
	foodLogRepo := mongo.NewMongoFoodLogRepository(appDB)

	// --- External Nutrition API Client ---
	log.Printf("Using nutrition API at %s (timeout %s)", cfg.Nutrition.BaseURL, cfg.Nutrition.Timeout)
	nutritionClient := nutrition.NewClient(cfg.Nutrition.BaseURL, cfg.Nutrition.Timeout)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	workoutService := service.NewWorkoutService(templateRepo, sessionRepo)
	nutritionService := service.NewNutritionService(foodLogRepo, nutritionClient)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	uriSet := os.Getenv("DATABASE_URI") != ""
	api.SetupRoutes(router, appDB, uriSet, workoutService, nutritionService)

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

	// Give in-flight requests 5 seconds to finish.
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
