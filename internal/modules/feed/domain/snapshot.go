package domain

import (
	"time"

	apperrors "watchtrainer/internal/platform/errors"
)

// HealthSnapshot is the latest reading synced from the wearable.
type HealthSnapshot struct {
	Steps         int       `json:"steps"`
	HeartRate     int       `json:"heart_rate"`
	Calories      float64   `json:"calories"`
	Distance      float64   `json:"distance"`
	ActiveMinutes int       `json:"active_minutes"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (s HealthSnapshot) Validate() error {
	if s.Steps < 0 || s.HeartRate < 0 || s.Calories < 0 || s.Distance < 0 || s.ActiveMinutes < 0 {
		return apperrors.Validation("health snapshot values must be non-negative")
	}
	return nil
}

func (s HealthSnapshot) IsZero() bool {
	return s == HealthSnapshot{}
}

// Since returns the counters accumulated after start, clamped at zero.
// HeartRate is an instantaneous reading and is kept as-is.
func (s HealthSnapshot) Since(start HealthSnapshot) HealthSnapshot {
	return HealthSnapshot{
		Steps:         max(0, s.Steps-start.Steps),
		HeartRate:     s.HeartRate,
		Calories:      max(0, s.Calories-start.Calories),
		Distance:      max(0, s.Distance-start.Distance),
		ActiveMinutes: max(0, s.ActiveMinutes-start.ActiveMinutes),
		UpdatedAt:     s.UpdatedAt,
	}
}
