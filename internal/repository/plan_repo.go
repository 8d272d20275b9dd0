package repository

import (
	"context"

	"github.com/CodeByColin/MVP/internal/models"
)

type CreateWorkoutPlanInput struct {
	UserID      int64
	PlanName    string
	Description *string
}

type WorkoutPlanRepository struct {
	db DBTX
}

func NewWorkoutPlanRepository(db DBTX) *WorkoutPlanRepository {
	return &WorkoutPlanRepository{db: db}
}

func (r *WorkoutPlanRepository) Create(
	ctx context.Context,
	input CreateWorkoutPlanInput,
) (*models.WorkoutPlan, error) {
	query := `
		INSERT INTO workout_plans (user_id, plan_name, description)
		VALUES ($1, $2, $3)
		RETURNING plan_id, user_id, plan_name, description, created_at
	`

	var plan models.WorkoutPlan
	err := r.db.QueryRow(
		ctx,
		query,
		input.UserID,
		input.PlanName,
		input.Description,
	).Scan(
		&plan.PlanID,
		&plan.UserID,
		&plan.PlanName,
		&plan.Description,
		&plan.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &plan, nil
}

func (r *WorkoutPlanRepository) ListByUserID(ctx context.Context, userID int64) ([]models.WorkoutPlan, error) {
	query := `
		SELECT plan_id, user_id, plan_name, description, created_at
		FROM workout_plans
		WHERE user_id = $1
		ORDER BY plan_id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := make([]models.WorkoutPlan, 0)
	for rows.Next() {
		var plan models.WorkoutPlan
		if err := rows.Scan(
			&plan.PlanID,
			&plan.UserID,
			&plan.PlanName,
			&plan.Description,
			&plan.CreatedAt,
		); err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return plans, nil
}

// DeleteByID removes the plan row and reports how many rows matched, so the
// caller can tell a successful delete from a nonexistent plan.
func (r *WorkoutPlanRepository) DeleteByID(ctx context.Context, planID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM workout_plans WHERE plan_id = $1`, planID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
