package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"fittrack/tracker-api/internal/domain"
	"fittrack/tracker-api/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs for API (Data Transfer Objects) ---

// IDResponse is returned by every write endpoint: the stored document's
// identifier in string form.
type IDResponse struct {
	ID string `json:"id"`
}

// CreateTemplateRequest defines the expected JSON for creating a template.
type CreateTemplateRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Exercises   []domain.Exercise `json:"exercises"`
	Level       string            `json:"level"`
}

// TemplateResponse is the public form of a stored template: the store's
// internal identifier renamed to id.
type TemplateResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Exercises   []domain.Exercise `json:"exercises"`
	Level       string            `json:"level,omitempty"`
}

// MapTemplateToResponse converts a domain.WorkoutTemplate to its public form.
func MapTemplateToResponse(tpl *domain.WorkoutTemplate) TemplateResponse {
	exercises := tpl.Exercises
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	return TemplateResponse{
		ID:          tpl.ID.Hex(),
		Title:       tpl.Title,
		Description: tpl.Description,
		Exercises:   exercises,
		Level:       tpl.Level,
	}
}

// MapTemplatesToResponse converts a slice of templates to public form.
func MapTemplatesToResponse(templates []domain.WorkoutTemplate) []TemplateResponse {
	responses := make([]TemplateResponse, len(templates))
	for i := range templates {
		responses[i] = MapTemplateToResponse(&templates[i])
	}
	return responses
}

// CreateSessionRequest defines the expected JSON for logging a session.
type CreateSessionRequest struct {
	UserID      string            `json:"user_id"`
	SessionDate string            `json:"session_date"`
	Title       string            `json:"title"`
	Exercises   []domain.Exercise `json:"exercises"`
	Notes       string            `json:"notes"`
}

// SessionResponse is the public form of a stored session.
type SessionResponse struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	SessionDate string            `json:"session_date"`
	Title       string            `json:"title"`
	Exercises   []domain.Exercise `json:"exercises"`
	Notes       string            `json:"notes,omitempty"`
}

// MapSessionToResponse converts a domain.WorkoutSession to its public form.
func MapSessionToResponse(s *domain.WorkoutSession) SessionResponse {
	exercises := s.Exercises
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	return SessionResponse{
		ID:          s.ID.Hex(),
		UserID:      s.UserID,
		SessionDate: s.SessionDate,
		Title:       s.Title,
		Exercises:   exercises,
		Notes:       s.Notes,
	}
}

// MapSessionsToResponse converts a slice of sessions to public form.
func MapSessionsToResponse(sessions []domain.WorkoutSession) []SessionResponse {
	responses := make([]SessionResponse, len(sessions))
	for i := range sessions {
		responses[i] = MapSessionToResponse(&sessions[i])
	}
	return responses
}

// --- Handler Methods ---

// CreateTemplate handles POST /api/templates.
func (h *WorkoutHandler) CreateTemplate(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}

	tpl := domain.WorkoutTemplate{
		Title:       req.Title,
		Description: req.Description,
		Exercises:   req.Exercises,
		Level:       req.Level,
	}

	id, err := h.workoutService.CreateTemplate(c.Request.Context(), tpl)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, IDResponse{ID: id.Hex()})
}

// ListTemplates handles GET /api/templates with an optional q search
// parameter matched against title and description.
func (h *WorkoutHandler) ListTemplates(c *gin.Context) {
	q := c.Query("q")

	templates, err := h.workoutService.SearchTemplates(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapTemplatesToResponse(templates))
}

// SeedTemplates handles POST /api/templates/seed. Seeding only happens
// against an empty collection.
func (h *WorkoutHandler) SeedTemplates(c *gin.Context) {
	seeded, err := h.workoutService.SeedTemplates(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if seeded == 0 {
		c.JSON(http.StatusOK, gin.H{"seeded": 0, "message": "Templates already exist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"seeded": seeded})
}

// CreateSession handles POST /api/sessions.
func (h *WorkoutHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}

	session := domain.WorkoutSession{
		UserID:      req.UserID,
		SessionDate: req.SessionDate,
		Title:       req.Title,
		Exercises:   req.Exercises,
		Notes:       req.Notes,
	}

	id, err := h.workoutService.CreateSession(c.Request.Context(), session)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, IDResponse{ID: id.Hex()})
}

// ListSessions handles GET /api/sessions?user_id=&limit=.
func (h *WorkoutHandler) ListSessions(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		abortWithError(c, http.StatusBadRequest, "user_id query parameter is required")
		return
	}

	limitStr := c.DefaultQuery("limit", strconv.Itoa(service.SessionLimitDefault))
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "limit must be an integer")
		return
	}

	sessions, err := h.workoutService.ListSessions(c.Request.Context(), userID, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapSessionsToResponse(sessions))
}

// respondServiceError maps a service error onto the HTTP taxonomy: field
// validation failures are client errors, everything else is an upstream
// failure with a truncated diagnostic.
func respondServiceError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		log.Printf("request %s: HTTP %d: %s", requestIDFromContext(c), http.StatusBadRequest, ve.Error())
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": ve.Error(),
			"field": ve.Field,
		})
		return
	}
	abortWithError(c, http.StatusInternalServerError, truncate(err.Error(), maxErrorDetail))
}
