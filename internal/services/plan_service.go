package services

import (
	"context"
	"errors"

	"github.com/CodeByColin/MVP/internal/models"
	"github.com/CodeByColin/MVP/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrPlanNotFound = errors.New("workout plan not found")

type workoutPlanStore interface {
	Create(ctx context.Context, input repository.CreateWorkoutPlanInput) (*models.WorkoutPlan, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.WorkoutPlan, error)
}

type PlanService struct {
	db       *pgxpool.Pool
	planRepo workoutPlanStore
}

func NewPlanService(db *pgxpool.Pool, planRepo *repository.WorkoutPlanRepository) *PlanService {
	return &PlanService{
		db:       db,
		planRepo: planRepo,
	}
}

func (s *PlanService) CreatePlan(
	ctx context.Context,
	input repository.CreateWorkoutPlanInput,
) (*models.WorkoutPlan, error) {
	return s.planRepo.Create(ctx, input)
}

func (s *PlanService) ListPlans(ctx context.Context, userID int64) ([]models.WorkoutPlan, error) {
	return s.planRepo.ListByUserID(ctx, userID)
}

// DeletePlan removes a plan and all its exercises in one transaction. A plan
// must never be deleted while its exercises survive (or the other way round),
// so both deletes either commit together or roll back together.
func (s *PlanService) DeletePlan(ctx context.Context, planID int64) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	txExerciseRepo := repository.NewExerciseRepository(tx)
	txPlanRepo := repository.NewWorkoutPlanRepository(tx)

	if err := txExerciseRepo.DeleteByPlanID(ctx, planID); err != nil {
		return err
	}

	deleted, err := txPlanRepo.DeleteByID(ctx, planID)
	if err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	// The not-found check runs after commit on purpose: the exercise delete
	// that already committed matched zero rows for a nonexistent plan, so
	// nothing was lost.
	if deleted == 0 {
		return ErrPlanNotFound
	}

	return nil
}
