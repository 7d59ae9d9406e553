package domain

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is a single entry within a template or logged session. It is a
// value object embedded by composition and never stored on its own.
type Exercise struct {
	Name   string   `bson:"name" json:"name"`
	Sets   int      `bson:"sets" json:"sets"`
	Reps   int      `bson:"reps" json:"reps"`
	Weight *float64 `bson:"weight,omitempty" json:"weight,omitempty"`
	Notes  string   `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Validate checks field constraints. path is the position of this exercise
// within the enclosing payload, used to name the offending field.
func (e *Exercise) Validate(path string) *ValidationError {
	if strings.TrimSpace(e.Name) == "" {
		return invalid(path+".name", "required")
	}
	if e.Sets < 1 || e.Sets > 20 {
		return invalid(path+".sets", "must be between 1 and 20")
	}
	if e.Reps < 1 || e.Reps > 100 {
		return invalid(path+".reps", "must be between 1 and 100")
	}
	if e.Weight != nil && *e.Weight < 0 {
		return invalid(path+".weight", "must not be negative")
	}
	return nil
}

// WorkoutTemplate is a reusable workout definition. Stored in the
// "workouttemplate" collection.
type WorkoutTemplate struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Exercises   []Exercise         `bson:"exercises" json:"exercises"`
	Level       string             `bson:"level,omitempty" json:"level,omitempty"`
}

func (t *WorkoutTemplate) Validate() *ValidationError {
	if strings.TrimSpace(t.Title) == "" {
		return invalid("title", "required")
	}
	for i := range t.Exercises {
		if err := t.Exercises[i].Validate(fmt.Sprintf("exercises[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

// WorkoutSession is a workout a user actually performed. user_id is an
// opaque identifier; no referential integrity is enforced. Stored in the
// "workoutsession" collection.
type WorkoutSession struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID      string             `bson:"user_id" json:"user_id"`
	SessionDate string             `bson:"session_date" json:"session_date"`
	Title       string             `bson:"title" json:"title"`
	Exercises   []Exercise         `bson:"exercises" json:"exercises"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
}

func (s *WorkoutSession) Validate() *ValidationError {
	if strings.TrimSpace(s.UserID) == "" {
		return invalid("user_id", "required")
	}
	if err := validateDate("session_date", s.SessionDate); err != nil {
		return err
	}
	if strings.TrimSpace(s.Title) == "" {
		return invalid("title", "required")
	}
	for i := range s.Exercises {
		if err := s.Exercises[i].Validate(fmt.Sprintf("exercises[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}
