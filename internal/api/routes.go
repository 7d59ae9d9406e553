package api

import (
	"fittrack/tracker-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupRoutes wires every endpoint onto the router.
func SetupRoutes(
	router *gin.Engine,
	db *mongo.Database,
	uriSet bool,
	workoutService service.WorkoutService,
	nutritionService service.NutritionService,
) {
	systemHandler := NewSystemHandler(db, uriSet)
	workoutHandler := NewWorkoutHandler(workoutService)
	nutritionHandler := NewNutritionHandler(nutritionService)

	router.Use(RequestIDMiddleware())
	router.Use(MetricsMiddleware())

	router.GET("/", systemHandler.Root)
	router.GET("/test", systemHandler.TestDatabase)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/templates", workoutHandler.CreateTemplate)
		apiGroup.GET("/templates", workoutHandler.ListTemplates)
		apiGroup.POST("/templates/seed", workoutHandler.SeedTemplates)

		apiGroup.POST("/sessions", workoutHandler.CreateSession)
		apiGroup.GET("/sessions", workoutHandler.ListSessions)

		foodGroup := apiGroup.Group("/food")
		{
			foodGroup.GET("/search", nutritionHandler.SearchFood)
			foodGroup.GET("/barcode/:code", nutritionHandler.FoodByBarcode)
			foodGroup.POST("/log", nutritionHandler.CreateFoodLog)
			foodGroup.GET("/logs", nutritionHandler.ListFoodLogs)
		}
	}
}
