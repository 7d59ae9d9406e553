package repository

import (
	"context"

	"fittrack/tracker-api/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	// ErrInsertFailed reports an insert whose assigned identifier could
	// not be read back from the store.
	ErrInsertFailed = RepositoryError("insert failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// TemplateRepository stores workout templates. Search matches q as a
// case-insensitive substring of title or description; an empty q matches
// everything.
type TemplateRepository interface {
	Create(ctx context.Context, tpl *domain.WorkoutTemplate) (primitive.ObjectID, error)
	Search(ctx context.Context, q string) ([]domain.WorkoutTemplate, error)
	Count(ctx context.Context) (int64, error)
}

// SessionRepository stores logged workout sessions, queried by exact
// user_id with a result cap.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error)
	ListByUser(ctx context.Context, userID string, limit int64) ([]domain.WorkoutSession, error)
}

// FoodLogRepository stores food logs, queried by exact user_id and an
// optional exact log_date.
type FoodLogRepository interface {
	Create(ctx context.Context, log *domain.FoodLog) (primitive.ObjectID, error)
	ListByUser(ctx context.Context, userID, logDate string) ([]domain.FoodLog, error)
}
