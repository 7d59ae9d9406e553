package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"fittrack/tracker-api/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockWorkoutService struct {
	createdTemplates []domain.WorkoutTemplate
	createdSessions  []domain.WorkoutSession
	templates        []domain.WorkoutTemplate
	sessions         []domain.WorkoutSession
	lastQuery        string
	lastUserID       string
	lastLimit        int
	seeded           int
	err              error
}

func (m *mockWorkoutService) CreateTemplate(ctx context.Context, tpl domain.WorkoutTemplate) (primitive.ObjectID, error) {
	if err := tpl.Validate(); err != nil {
		return primitive.NilObjectID, err
	}
	if m.err != nil {
		return primitive.NilObjectID, m.err
	}
	m.createdTemplates = append(m.createdTemplates, tpl)
	return primitive.NewObjectID(), nil
}

func (m *mockWorkoutService) SearchTemplates(ctx context.Context, q string) ([]domain.WorkoutTemplate, error) {
	m.lastQuery = q
	return m.templates, m.err
}

func (m *mockWorkoutService) SeedTemplates(ctx context.Context) (int, error) {
	return m.seeded, m.err
}

func (m *mockWorkoutService) CreateSession(ctx context.Context, s domain.WorkoutSession) (primitive.ObjectID, error) {
	if err := s.Validate(); err != nil {
		return primitive.NilObjectID, err
	}
	m.createdSessions = append(m.createdSessions, s)
	return primitive.NewObjectID(), nil
}

func (m *mockWorkoutService) ListSessions(ctx context.Context, userID string, limit int) ([]domain.WorkoutSession, error) {
	m.lastUserID = userID
	m.lastLimit = limit
	return m.sessions, m.err
}

type mockNutritionService struct {
	createdLogs []domain.FoodLog
	logs        []domain.FoodLog
	items       []domain.FoodItem
	item        domain.FoodItem
	lastQuery   string
	lastSize    int
	lastCode    string
	lastUserID  string
	lastDate    string
	err         error
}

func (m *mockNutritionService) SearchFood(ctx context.Context, query string, pageSize int) ([]domain.FoodItem, error) {
	m.lastQuery = query
	m.lastSize = pageSize
	return m.items, m.err
}

func (m *mockNutritionService) LookupBarcode(ctx context.Context, code string) (domain.FoodItem, error) {
	m.lastCode = code
	return m.item, m.err
}

func (m *mockNutritionService) CreateFoodLog(ctx context.Context, log domain.FoodLog) (primitive.ObjectID, error) {
	if err := log.Validate(); err != nil {
		return primitive.NilObjectID, err
	}
	m.createdLogs = append(m.createdLogs, log)
	return primitive.NewObjectID(), nil
}

func (m *mockNutritionService) ListFoodLogs(ctx context.Context, userID, logDate string) ([]domain.FoodLog, error) {
	m.lastUserID = userID
	m.lastDate = logDate
	return m.logs, m.err
}

func newTestRouter(workout *mockWorkoutService, nutrition *mockNutritionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router, nil, false, workout, nutrition)
	return router
}

func perform(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestCreateTemplateReturnsID(t *testing.T) {
	workout := &mockWorkoutService{}
	router := newTestRouter(workout, &mockNutritionService{})

	rr := perform(router, http.MethodPost, "/api/templates", `{
		"title": "Push Day",
		"description": "Classic push workout",
		"level": "Intermediate",
		"exercises": [{"name": "Bench Press", "sets": 4, "reps": 8}]
	}`)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp IDResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.ID, 24, "expected a hex ObjectID")
	require.Len(t, workout.createdTemplates, 1)
	assert.Equal(t, "Push Day", workout.createdTemplates[0].Title)
}

func TestCreateTemplateValidationFailure(t *testing.T) {
	router := newTestRouter(&mockWorkoutService{}, &mockNutritionService{})

	rr := perform(router, http.MethodPost, "/api/templates", `{
		"title": "Push Day",
		"exercises": [{"name": "Bench Press", "sets": 0, "reps": 8}]
	}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "exercises[0].sets", resp["field"])
	assert.Contains(t, resp["error"], "between 1 and 20")
}

func TestListTemplatesPublicForm(t *testing.T) {
	id := primitive.NewObjectID()
	workout := &mockWorkoutService{templates: []domain.WorkoutTemplate{{
		ID:          id,
		Title:       "Push Day",
		Description: "Classic push workout",
	}}}
	router := newTestRouter(workout, &mockNutritionService{})

	rr := perform(router, http.MethodGet, "/api/templates?q=Push", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Push", workout.lastQuery)

	var resp []map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, id.Hex(), resp[0]["id"])
	assert.NotContains(t, resp[0], "_id")
}

func TestSeedTemplatesResponses(t *testing.T) {
	t.Run("fresh collection", func(t *testing.T) {
		router := newTestRouter(&mockWorkoutService{seeded: 3}, &mockNutritionService{})

		rr := perform(router, http.MethodPost, "/api/templates/seed", "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"seeded": 3}`, rr.Body.String())
	})

	t.Run("already seeded", func(t *testing.T) {
		router := newTestRouter(&mockWorkoutService{seeded: 0}, &mockNutritionService{})

		rr := perform(router, http.MethodPost, "/api/templates/seed", "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"seeded": 0, "message": "Templates already exist"}`, rr.Body.String())
	})
}

func TestListSessionsRequiresUserID(t *testing.T) {
	router := newTestRouter(&mockWorkoutService{}, &mockNutritionService{})

	rr := perform(router, http.MethodGet, "/api/sessions", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListSessionsDefaultsAndParsesLimit(t *testing.T) {
	workout := &mockWorkoutService{}
	router := newTestRouter(workout, &mockNutritionService{})

	rr := perform(router, http.MethodGet, "/api/sessions?user_id=user-1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "user-1", workout.lastUserID)
	assert.Equal(t, 50, workout.lastLimit)

	rr = perform(router, http.MethodGet, "/api/sessions?user_id=user-1&limit=25", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 25, workout.lastLimit)

	rr = perform(router, http.MethodGet, "/api/sessions?user_id=user-1&limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListSessionsEmptyIsJSONArray(t *testing.T) {
	router := newTestRouter(&mockWorkoutService{}, &mockNutritionService{})

	rr := perform(router, http.MethodGet, "/api/sessions?user_id=nobody", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))
}

func TestRequestIDMiddleware(t *testing.T) {
	router := newTestRouter(&mockWorkoutService{}, &mockNutritionService{})

	t.Run("echoes supplied id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "req-42")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, "req-42", rr.Header().Get("X-Request-ID"))
	})

	t.Run("generates one when absent", func(t *testing.T) {
		rr := perform(router, http.MethodGet, "/", "")
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})
}

func TestErrorResponsesLogRequestID(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	router := newTestRouter(&mockWorkoutService{}, &mockNutritionService{})

	t.Run("parameter error", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
		req.Header.Set("X-Request-ID", "req-42")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, buf.String(), "request req-42")
	})

	t.Run("validation error", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodPost, "/api/templates", strings.NewReader(`{
			"title": "Push Day",
			"exercises": [{"name": "Bench Press", "sets": 0, "reps": 8}]
		}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Request-ID", "req-43")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, buf.String(), "request req-43")
		assert.Contains(t, buf.String(), "exercises[0].sets")
	})
}

func TestRootAndTestEndpoints(t *testing.T) {
	router := newTestRouter(&mockWorkoutService{}, &mockNutritionService{})

	rr := perform(router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Backend Ready")

	// With no database handle the connectivity report still answers 200.
	rr = perform(router, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "running", resp["backend"])
	assert.Equal(t, "not connected", resp["connection_status"])
}
