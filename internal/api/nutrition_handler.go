package api

import (
	"net/http"
	"strconv"

	"fittrack/tracker-api/internal/domain"
	"fittrack/tracker-api/internal/nutrition"
	"fittrack/tracker-api/internal/service"

	"github.com/gin-gonic/gin"
)

// NutritionHandler holds the nutrition service dependency.
type NutritionHandler struct {
	nutritionService service.NutritionService
}

// NewNutritionHandler creates a new NutritionHandler.
func NewNutritionHandler(nutritionService service.NutritionService) *NutritionHandler {
	return &NutritionHandler{nutritionService: nutritionService}
}

// --- DTOs ---

// CreateFoodLogRequest defines the expected JSON for logging a food item.
// Quantity and Meal are optional; absent values take the documented
// defaults (1.0 and "unspecified").
type CreateFoodLogRequest struct {
	UserID   string           `json:"user_id"`
	LogDate  string           `json:"log_date"`
	Meal     string           `json:"meal"`
	Item     *domain.FoodItem `json:"item"`
	Quantity *float64         `json:"quantity"`
}

// FoodLogResponse is the public form of a stored food log.
type FoodLogResponse struct {
	ID       string          `json:"id"`
	UserID   string          `json:"user_id"`
	LogDate  string          `json:"log_date"`
	Meal     string          `json:"meal"`
	Item     domain.FoodItem `json:"item"`
	Quantity float64         `json:"quantity"`
}

// MapFoodLogToResponse converts a domain.FoodLog to its public form.
func MapFoodLogToResponse(l *domain.FoodLog) FoodLogResponse {
	return FoodLogResponse{
		ID:       l.ID.Hex(),
		UserID:   l.UserID,
		LogDate:  l.LogDate,
		Meal:     l.Meal,
		Item:     l.Item,
		Quantity: l.Quantity,
	}
}

// MapFoodLogsToResponse converts a slice of food logs to public form.
func MapFoodLogsToResponse(logs []domain.FoodLog) []FoodLogResponse {
	responses := make([]FoodLogResponse, len(logs))
	for i := range logs {
		responses[i] = MapFoodLogToResponse(&logs[i])
	}
	return responses
}

// FoodSearchResponse wraps text-search results.
type FoodSearchResponse struct {
	Results []domain.FoodItem `json:"results"`
}

// --- Handler Methods ---

// SearchFood handles GET /api/food/search?q=&page_size= by proxying to the
// external food database.
func (h *NutritionHandler) SearchFood(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		abortWithError(c, http.StatusBadRequest, "q query parameter is required")
		return
	}

	pageSizeStr := c.DefaultQuery("page_size", strconv.Itoa(nutrition.DefaultPageSize))
	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "page_size must be an integer")
		return
	}

	items, err := h.nutritionService.SearchFood(c.Request.Context(), q, pageSize)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, truncate(err.Error(), maxErrorDetail))
		return
	}

	if items == nil {
		items = []domain.FoodItem{}
	}
	c.JSON(http.StatusOK, FoodSearchResponse{Results: items})
}

// FoodByBarcode handles GET /api/food/barcode/:code. An unknown barcode
// returns a placeholder item rather than a 404.
func (h *NutritionHandler) FoodByBarcode(c *gin.Context) {
	code := c.Param("code")

	item, err := h.nutritionService.LookupBarcode(c.Request.Context(), code)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, truncate(err.Error(), maxErrorDetail))
		return
	}

	c.JSON(http.StatusOK, item)
}

// CreateFoodLog handles POST /api/food/log.
func (h *NutritionHandler) CreateFoodLog(c *gin.Context) {
	var req CreateFoodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}

	if req.Item == nil {
		respondServiceError(c, &domain.ValidationError{Field: "item", Constraint: "required"})
		return
	}

	quantity := 1.0
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	log := domain.FoodLog{
		UserID:   req.UserID,
		LogDate:  req.LogDate,
		Meal:     req.Meal,
		Item:     *req.Item,
		Quantity: quantity,
	}

	id, err := h.nutritionService.CreateFoodLog(c.Request.Context(), log)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, IDResponse{ID: id.Hex()})
}

// ListFoodLogs handles GET /api/food/logs?user_id=&log_date=.
func (h *NutritionHandler) ListFoodLogs(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		abortWithError(c, http.StatusBadRequest, "user_id query parameter is required")
		return
	}
	logDate := c.Query("log_date")

	logs, err := h.nutritionService.ListFoodLogs(c.Request.Context(), userID, logDate)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapFoodLogsToResponse(logs))
}
