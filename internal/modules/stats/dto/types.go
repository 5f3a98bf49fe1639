package dto

import "time"

type PeriodStatsOutput struct {
	Period            string    `json:"period"`
	Since             time.Time `json:"since"`
	TotalWorkouts     int       `json:"total_workouts"`
	TotalSteps        int64     `json:"total_steps"`
	TotalCalories     float64   `json:"total_calories"`
	TotalDurationMS   int64     `json:"total_duration_ms"`
	AverageDurationMS int64     `json:"average_duration_ms"`
	MostFrequentType  string    `json:"most_frequent_type"`
}

type DailyProgressOutput struct {
	Date          time.Time `json:"date"`
	Weekday       string    `json:"weekday"`
	Steps         int       `json:"steps"`
	Calories      float64   `json:"calories"`
	ActiveMinutes int       `json:"active_minutes"`
	Workouts      int       `json:"workouts"`
}
