package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestExerciseValidate(t *testing.T) {
	tests := []struct {
		name      string
		exercise  Exercise
		wantField string
	}{
		{
			name:     "valid minimal",
			exercise: Exercise{Name: "Bench Press", Sets: 1, Reps: 1},
		},
		{
			name:     "valid upper bounds",
			exercise: Exercise{Name: "Squat", Sets: 20, Reps: 100},
		},
		{
			name:     "valid with weight and notes",
			exercise: Exercise{Name: "Deadlift", Sets: 3, Reps: 5, Weight: floatPtr(120), Notes: "belt on"},
		},
		{
			name:     "zero weight allowed",
			exercise: Exercise{Name: "Plank", Sets: 3, Reps: 1, Weight: floatPtr(0)},
		},
		{
			name:      "missing name",
			exercise:  Exercise{Sets: 3, Reps: 10},
			wantField: "exercises[0].name",
		},
		{
			name:      "sets below minimum",
			exercise:  Exercise{Name: "Row", Sets: 0, Reps: 10},
			wantField: "exercises[0].sets",
		},
		{
			name:      "sets above maximum",
			exercise:  Exercise{Name: "Row", Sets: 21, Reps: 10},
			wantField: "exercises[0].sets",
		},
		{
			name:      "reps below minimum",
			exercise:  Exercise{Name: "Row", Sets: 3, Reps: 0},
			wantField: "exercises[0].reps",
		},
		{
			name:      "reps above maximum",
			exercise:  Exercise{Name: "Row", Sets: 3, Reps: 101},
			wantField: "exercises[0].reps",
		},
		{
			name:      "negative weight",
			exercise:  Exercise{Name: "Row", Sets: 3, Reps: 10, Weight: floatPtr(-1)},
			wantField: "exercises[0].weight",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.exercise.Validate("exercises[0]")
			if tt.wantField == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, tt.wantField, err.Field)
		})
	}
}

func TestWorkoutTemplateValidate(t *testing.T) {
	t.Run("title required", func(t *testing.T) {
		tpl := WorkoutTemplate{Title: "   "}
		err := tpl.Validate()
		require.NotNil(t, err)
		assert.Equal(t, "title", err.Field)
	})

	t.Run("empty exercise list is valid", func(t *testing.T) {
		tpl := WorkoutTemplate{Title: "Push Day"}
		assert.Nil(t, tpl.Validate())
	})

	t.Run("rejects first invalid nested exercise", func(t *testing.T) {
		tpl := WorkoutTemplate{
			Title: "Push Day",
			Exercises: []Exercise{
				{Name: "Bench Press", Sets: 4, Reps: 8},
				{Name: "Overhead Press", Sets: 25, Reps: 8},
			},
		}
		err := tpl.Validate()
		require.NotNil(t, err)
		assert.Equal(t, "exercises[1].sets", err.Field)
	})
}

func TestWorkoutSessionValidate(t *testing.T) {
	valid := WorkoutSession{
		UserID:      "user-1",
		SessionDate: "2026-08-20",
		Title:       "Push Day",
		Exercises:   []Exercise{{Name: "Bench Press", Sets: 4, Reps: 8}},
	}

	t.Run("valid session", func(t *testing.T) {
		s := valid
		assert.Nil(t, s.Validate())
	})

	t.Run("user_id required", func(t *testing.T) {
		s := valid
		s.UserID = ""
		err := s.Validate()
		require.NotNil(t, err)
		assert.Equal(t, "user_id", err.Field)
	})

	t.Run("date must be ISO calendar date", func(t *testing.T) {
		s := valid
		s.SessionDate = "20/08/2026"
		err := s.Validate()
		require.NotNil(t, err)
		assert.Equal(t, "session_date", err.Field)
	})

	t.Run("date required", func(t *testing.T) {
		s := valid
		s.SessionDate = ""
		err := s.Validate()
		require.NotNil(t, err)
		assert.Equal(t, "session_date", err.Field)
		assert.Equal(t, "required", err.Constraint)
	})

	t.Run("title required", func(t *testing.T) {
		s := valid
		s.Title = ""
		err := s.Validate()
		require.NotNil(t, err)
		assert.Equal(t, "title", err.Field)
	})
}

func TestFoodItemValidate(t *testing.T) {
	t.Run("name required", func(t *testing.T) {
		item := FoodItem{Calories: 100}
		err := item.Validate("item")
		require.NotNil(t, err)
		assert.Equal(t, "item.name", err.Field)
	})

	t.Run("negative macros rejected", func(t *testing.T) {
		for _, tc := range []struct {
			field string
			item  FoodItem
		}{
			{"item.calories", FoodItem{Name: "Oats", Calories: -1}},
			{"item.protein", FoodItem{Name: "Oats", Protein: -0.5}},
			{"item.carbs", FoodItem{Name: "Oats", Carbs: -2}},
			{"item.fat", FoodItem{Name: "Oats", Fat: -0.1}},
		} {
			err := tc.item.Validate("item")
			require.NotNil(t, err, tc.field)
			assert.Equal(t, tc.field, err.Field)
		}
	})

	t.Run("zero macros are valid", func(t *testing.T) {
		item := FoodItem{Name: "Water"}
		assert.Nil(t, item.Validate("item"))
	})
}

func TestFoodLogValidate(t *testing.T) {
	valid := FoodLog{
		UserID:   "user-1",
		LogDate:  "2026-08-20",
		Meal:     "breakfast",
		Item:     FoodItem{Name: "Oats", Calories: 380},
		Quantity: 1.0,
	}

	t.Run("valid log", func(t *testing.T) {
		l := valid
		assert.Nil(t, l.Validate())
	})

	t.Run("quantity below minimum", func(t *testing.T) {
		l := valid
		l.Quantity = 0.05
		err := l.Validate()
		require.NotNil(t, err)
		assert.Equal(t, "quantity", err.Field)
	})

	t.Run("quantity at minimum", func(t *testing.T) {
		l := valid
		l.Quantity = 0.1
		assert.Nil(t, l.Validate())
	})

	t.Run("empty meal defaults to unspecified", func(t *testing.T) {
		l := valid
		l.Meal = ""
		require.Nil(t, l.Validate())
		assert.Equal(t, MealUnspecified, l.Meal)
	})

	t.Run("embedded item validated", func(t *testing.T) {
		l := valid
		l.Item = FoodItem{Calories: 100}
		err := l.Validate()
		require.NotNil(t, err)
		assert.Equal(t, "item.name", err.Field)
	})

	t.Run("log date validated", func(t *testing.T) {
		l := valid
		l.LogDate = "yesterday"
		err := l.Validate()
		require.NotNil(t, err)
		assert.Equal(t, "log_date", err.Field)
	})
}
