package repository

import (
	"context"

	"github.com/CodeByColin/MVP/internal/models"
)

type CreateExerciseInput struct {
	PlanID       int64
	ExerciseName string
	Sets         int
	Repetitions  int
	Notes        *string
}

type ExerciseRepository struct {
	db DBTX
}

func NewExerciseRepository(db DBTX) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

func (r *ExerciseRepository) Create(
	ctx context.Context,
	input CreateExerciseInput,
) (*models.Exercise, error) {
	query := `
		INSERT INTO exercises (plan_id, exercise_name, sets, repetitions, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING exercise_id, plan_id, exercise_name, sets, repetitions, notes, created_at
	`

	var exercise models.Exercise
	err := r.db.QueryRow(
		ctx,
		query,
		input.PlanID,
		input.ExerciseName,
		input.Sets,
		input.Repetitions,
		input.Notes,
	).Scan(
		&exercise.ExerciseID,
		&exercise.PlanID,
		&exercise.ExerciseName,
		&exercise.Sets,
		&exercise.Repetitions,
		&exercise.Notes,
		&exercise.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &exercise, nil
}

func (r *ExerciseRepository) ListByPlanID(ctx context.Context, planID int64) ([]models.Exercise, error) {
	query := `
		SELECT exercise_id, plan_id, exercise_name, sets, repetitions, notes, created_at
		FROM exercises
		WHERE plan_id = $1
		ORDER BY exercise_id
	`

	rows, err := r.db.Query(ctx, query, planID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := make([]models.Exercise, 0)
	for rows.Next() {
		var exercise models.Exercise
		if err := rows.Scan(
			&exercise.ExerciseID,
			&exercise.PlanID,
			&exercise.ExerciseName,
			&exercise.Sets,
			&exercise.Repetitions,
			&exercise.Notes,
			&exercise.CreatedAt,
		); err != nil {
			return nil, err
		}
		exercises = append(exercises, exercise)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}

func (r *ExerciseRepository) DeleteByPlanID(ctx context.Context, planID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM exercises WHERE plan_id = $1`, planID)
	return err
}
