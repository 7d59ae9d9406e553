package service

import (
	"context"

	"fittrack/tracker-api/internal/domain"
	"fittrack/tracker-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session listing limits. Callers outside these bounds are clamped, not
// rejected.
const (
	SessionLimitDefault = 50
	sessionLimitMin     = 1
	sessionLimitMax     = 200
)

// WorkoutService covers templates and logged sessions.
type WorkoutService interface {
	CreateTemplate(ctx context.Context, tpl domain.WorkoutTemplate) (primitive.ObjectID, error)
	SearchTemplates(ctx context.Context, q string) ([]domain.WorkoutTemplate, error)
	SeedTemplates(ctx context.Context) (int, error)
	CreateSession(ctx context.Context, session domain.WorkoutSession) (primitive.ObjectID, error)
	ListSessions(ctx context.Context, userID string, limit int) ([]domain.WorkoutSession, error)
}

type workoutService struct {
	templateRepo repository.TemplateRepository
	sessionRepo  repository.SessionRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(templateRepo repository.TemplateRepository, sessionRepo repository.SessionRepository) WorkoutService {
	return &workoutService{
		templateRepo: templateRepo,
		sessionRepo:  sessionRepo,
	}
}

// CreateTemplate validates and stores a workout template.
func (s *workoutService) CreateTemplate(ctx context.Context, tpl domain.WorkoutTemplate) (primitive.ObjectID, error) {
	if err := tpl.Validate(); err != nil {
		return primitive.NilObjectID, err
	}
	return s.templateRepo.Create(ctx, &tpl)
}

// SearchTemplates returns templates matching q in title or description;
// an empty q returns all of them.
func (s *workoutService) SearchTemplates(ctx context.Context, q string) ([]domain.WorkoutTemplate, error) {
	return s.templateRepo.Search(ctx, q)
}

// SeedTemplates inserts the prebuilt templates if the collection is empty
// and reports how many were inserted. The count-then-insert window means
// concurrent seed calls can duplicate the seed data; single-caller
// seeding is assumed.
func (s *workoutService) SeedTemplates(ctx context.Context) (int, error) {
	existing, err := s.templateRepo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		return 0, nil
	}

	for i := range prebuiltTemplates {
		tpl := prebuiltTemplates[i]
		if _, err := s.templateRepo.Create(ctx, &tpl); err != nil {
			// No rollback: earlier inserts stay committed.
			return i, err
		}
	}
	return len(prebuiltTemplates), nil
}

// CreateSession validates and stores a logged workout session.
func (s *workoutService) CreateSession(ctx context.Context, session domain.WorkoutSession) (primitive.ObjectID, error) {
	if err := session.Validate(); err != nil {
		return primitive.NilObjectID, err
	}
	return s.sessionRepo.Create(ctx, &session)
}

// ListSessions returns a user's sessions, capped at the clamped limit.
func (s *workoutService) ListSessions(ctx context.Context, userID string, limit int) ([]domain.WorkoutSession, error) {
	return s.sessionRepo.ListByUser(ctx, userID, int64(clampLimit(limit)))
}

// clampLimit forces a session listing limit into [1, 200]. The default for
// an absent limit is resolved at the request boundary.
func clampLimit(limit int) int {
	if limit < sessionLimitMin {
		return sessionLimitMin
	}
	if limit > sessionLimitMax {
		return sessionLimitMax
	}
	return limit
}
