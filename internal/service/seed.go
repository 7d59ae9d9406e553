package service

import "fittrack/tracker-api/internal/domain"

// prebuiltTemplates is the fixed starter set inserted by the seed
// endpoint when the template collection is empty.
var prebuiltTemplates = []domain.WorkoutTemplate{
	{
		Title:       "Push Day (Chest/Shoulders/Triceps)",
		Description: "Classic push workout",
		Level:       "Intermediate",
		Exercises: []domain.Exercise{
			{Name: "Bench Press", Sets: 4, Reps: 8},
			{Name: "Incline Dumbbell Press", Sets: 3, Reps: 10},
			{Name: "Overhead Press", Sets: 3, Reps: 8},
			{Name: "Lateral Raise", Sets: 3, Reps: 15},
			{Name: "Tricep Pushdown", Sets: 3, Reps: 12},
		},
	},
	{
		Title:       "Pull Day (Back/Biceps)",
		Description: "Back and biceps focus",
		Level:       "Intermediate",
		Exercises: []domain.Exercise{
			{Name: "Deadlift", Sets: 3, Reps: 5},
			{Name: "Bent-over Row", Sets: 4, Reps: 8},
			{Name: "Lat Pulldown", Sets: 3, Reps: 10},
			{Name: "Face Pulls", Sets: 3, Reps: 15},
			{Name: "Bicep Curl", Sets: 3, Reps: 12},
		},
	},
	{
		Title:       "Leg Day",
		Description: "Quads, hamstrings, glutes",
		Level:       "Intermediate",
		Exercises: []domain.Exercise{
			{Name: "Squat", Sets: 4, Reps: 6},
			{Name: "Romanian Deadlift", Sets: 3, Reps: 8},
			{Name: "Leg Press", Sets: 3, Reps: 12},
			{Name: "Leg Curl", Sets: 3, Reps: 12},
			{Name: "Calf Raise", Sets: 4, Reps: 15},
		},
	},
}
