package dto

import "time"

type CreateGoalInput struct {
	Type     string     `json:"type"`
	Target   float64    `json:"target"`
	Deadline *time.Time `json:"deadline,omitempty"`
}

type GoalOutput struct {
	ID          int64      `json:"id"`
	Type        string     `json:"type"`
	Unit        string     `json:"unit"`
	Target      float64    `json:"target"`
	Current     float64    `json:"current"`
	Progress    float64    `json:"progress"`
	Active      bool       `json:"active"`
	Summary     string     `json:"summary"`
	CreatedAt   time.Time  `json:"created_at"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	DaysLeft    *int       `json:"days_left,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type RefreshOutput struct {
	Goals     []GoalOutput `json:"goals"`
	Completed []GoalOutput `json:"completed"`
}
