package service

import (
	"context"

	"fittrack/tracker-api/internal/domain"
	"fittrack/tracker-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FoodLookup is the external food-database dependency: free-text search and
// exact barcode lookup, each a single best-effort call.
type FoodLookup interface {
	Search(ctx context.Context, query string, pageSize int) ([]domain.FoodItem, error)
	Barcode(ctx context.Context, code string) (domain.FoodItem, error)
}

// NutritionService covers food lookup and food logging.
type NutritionService interface {
	SearchFood(ctx context.Context, query string, pageSize int) ([]domain.FoodItem, error)
	LookupBarcode(ctx context.Context, code string) (domain.FoodItem, error)
	CreateFoodLog(ctx context.Context, log domain.FoodLog) (primitive.ObjectID, error)
	ListFoodLogs(ctx context.Context, userID, logDate string) ([]domain.FoodLog, error)
}

type nutritionService struct {
	foodLogRepo repository.FoodLogRepository
	lookup      FoodLookup
}

// NewNutritionService creates a new instance of nutritionService.
func NewNutritionService(foodLogRepo repository.FoodLogRepository, lookup FoodLookup) NutritionService {
	return &nutritionService{
		foodLogRepo: foodLogRepo,
		lookup:      lookup,
	}
}

// SearchFood proxies a free-text search to the external food database.
func (s *nutritionService) SearchFood(ctx context.Context, query string, pageSize int) ([]domain.FoodItem, error) {
	return s.lookup.Search(ctx, query, pageSize)
}

// LookupBarcode proxies an exact barcode lookup to the external food
// database. An unknown barcode yields a placeholder item, not an error.
func (s *nutritionService) LookupBarcode(ctx context.Context, code string) (domain.FoodItem, error) {
	return s.lookup.Barcode(ctx, code)
}

// CreateFoodLog validates and stores a food log entry.
func (s *nutritionService) CreateFoodLog(ctx context.Context, log domain.FoodLog) (primitive.ObjectID, error) {
	if err := log.Validate(); err != nil {
		return primitive.NilObjectID, err
	}
	return s.foodLogRepo.Create(ctx, &log)
}

// ListFoodLogs returns a user's food logs, optionally narrowed to one date.
func (s *nutritionService) ListFoodLogs(ctx context.Context, userID, logDate string) ([]domain.FoodLog, error) {
	return s.foodLogRepo.ListByUser(ctx, userID, logDate)
}
