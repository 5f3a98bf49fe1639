package dto

import "time"

type SnapshotInput struct {
	Steps         int     `json:"steps"`
	HeartRate     int     `json:"heart_rate"`
	Calories      float64 `json:"calories"`
	Distance      float64 `json:"distance"`
	ActiveMinutes int     `json:"active_minutes"`
}

type SnapshotOutput struct {
	Steps         int       `json:"steps"`
	HeartRate     int       `json:"heart_rate"`
	Calories      float64   `json:"calories"`
	Distance      float64   `json:"distance"`
	ActiveMinutes int       `json:"active_minutes"`
	UpdatedAt     time.Time `json:"updated_at"`
}
