package models

import "time"

type WorkoutPlan struct {
	PlanID      int64     `json:"plan_id"`
	UserID      int64     `json:"user_id"`
	PlanName    string    `json:"plan_name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
