package models

import "time"

type Exercise struct {
	ExerciseID   int64     `json:"exercise_id"`
	PlanID       int64     `json:"plan_id"`
	ExerciseName string    `json:"exercise_name"`
	Sets         int       `json:"sets"`
	Repetitions  int       `json:"repetitions"`
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
