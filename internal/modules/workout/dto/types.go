package dto

import "time"

type SessionOutput struct {
	ID          string    `json:"id"`
	State       string    `json:"state"`
	WorkoutType string    `json:"workout_type"`
	StartTime   time.Time `json:"start_time"`
	ElapsedMS   int64     `json:"elapsed_ms"`
}

type SnapshotOutput struct {
	Steps     int     `json:"steps"`
	HeartRate int     `json:"heart_rate"`
	Calories  float64 `json:"calories"`
	Distance  float64 `json:"distance"`
}

type StatusOutput struct {
	State        string         `json:"state"`
	SelectedType string         `json:"selected_type"`
	Session      *SessionOutput `json:"session,omitempty"`
	Snapshot     SnapshotOutput `json:"snapshot"`
}

type EndInput struct {
	Notes string `json:"notes"`
}

type EndOutput struct {
	ID             string    `json:"id"`
	WorkoutType    string    `json:"workout_type"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	DurationMS     int64     `json:"duration_ms"`
	TotalSteps     int       `json:"total_steps"`
	AverageHR      int       `json:"average_heart_rate"`
	CaloriesBurned float64   `json:"calories_burned"`
	Distance       float64   `json:"distance"`
	Notes          string    `json:"notes,omitempty"`
	JournalPath    string    `json:"journal_path,omitempty"`
	CompletedGoals []string  `json:"completed_goals"`
	GoalsStale     bool      `json:"goals_stale,omitempty"`
}
