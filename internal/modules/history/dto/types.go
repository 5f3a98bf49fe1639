package dto

import "time"

type AppendInput struct {
	ID               string
	StartTime        time.Time
	EndTime          time.Time
	WorkoutType      string
	TotalSteps       int
	AverageHeartRate int
	CaloriesBurned   float64
	Distance         float64
	Notes            string
}

type SessionOutput struct {
	ID               string        `json:"id"`
	StartTime        time.Time     `json:"start_time"`
	EndTime          time.Time     `json:"end_time"`
	WorkoutType      string        `json:"workout_type"`
	Duration         time.Duration `json:"-"`
	DurationMS       int64         `json:"duration_ms"`
	TotalSteps       int           `json:"total_steps"`
	AverageHeartRate int           `json:"average_heart_rate"`
	CaloriesBurned   float64       `json:"calories_burned"`
	Distance         float64       `json:"distance"`
	Notes            string        `json:"notes,omitempty"`
}
