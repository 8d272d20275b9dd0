package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/CodeByColin/MVP/internal/models"
	"github.com/CodeByColin/MVP/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

var (
	testDBOnce sync.Once
	testDBPool *pgxpool.Pool
	testDBErr  error
)

func TestPlanServiceDeleteCascadesToExercises(t *testing.T) {
	ctx := context.Background()
	pool := integrationTestPool(t)
	service := NewPlanService(pool, repository.NewWorkoutPlanRepository(pool))

	userID := createTestUser(t, ctx, pool)
	t.Cleanup(func() { cleanupTestUser(t, ctx, pool, userID) })

	plan := createTestPlan(t, ctx, pool, userID)

	exerciseRepo := repository.NewExerciseRepository(pool)
	for _, name := range []string{"Squat", "Bench Press"} {
		if _, err := exerciseRepo.Create(ctx, repository.CreateExerciseInput{
			PlanID:       plan.PlanID,
			ExerciseName: name,
			Sets:         3,
			Repetitions:  8,
		}); err != nil {
			t.Fatalf("Create exercise %s: %v", name, err)
		}
	}

	if err := service.DeletePlan(ctx, plan.PlanID); err != nil {
		t.Fatalf("DeletePlan: %v", err)
	}

	remaining, err := exerciseRepo.ListByPlanID(ctx, plan.PlanID)
	if err != nil {
		t.Fatalf("ListByPlanID: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected no exercises after plan delete, got %d", len(remaining))
	}

	plans, err := service.ListPlans(ctx, userID)
	if err != nil {
		t.Fatalf("ListPlans: %v", err)
	}
	if len(plans) != 0 {
		t.Fatalf("expected no plans after delete, got %d", len(plans))
	}
}

func TestPlanServiceDeleteNonexistentPlanReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	pool := integrationTestPool(t)
	service := NewPlanService(pool, repository.NewWorkoutPlanRepository(pool))

	err := service.DeletePlan(ctx, 1<<60)
	if !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
}

func TestPlanServiceCreateThenListIncludesPlanOnce(t *testing.T) {
	ctx := context.Background()
	pool := integrationTestPool(t)
	service := NewPlanService(pool, repository.NewWorkoutPlanRepository(pool))

	userID := createTestUser(t, ctx, pool)
	t.Cleanup(func() { cleanupTestUser(t, ctx, pool, userID) })

	created, err := service.CreatePlan(ctx, repository.CreateWorkoutPlanInput{
		UserID:   userID,
		PlanName: "Upper/Lower",
	})
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}

	plans, err := service.ListPlans(ctx, userID)
	if err != nil {
		t.Fatalf("ListPlans: %v", err)
	}

	seen := 0
	for _, plan := range plans {
		if plan.PlanID == created.PlanID {
			seen++
		}
	}
	if seen != 1 {
		t.Fatalf("expected created plan to appear exactly once, saw it %d times", seen)
	}
}

func integrationTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	testDBOnce.Do(func() {
		_ = godotenv.Load(".env")
		_ = godotenv.Load(filepath.Join("..", "..", ".env"))

		dbURL := os.Getenv("DB_URL")
		if dbURL == "" {
			testDBErr = fmt.Errorf("DB_URL is not set")
			return
		}

		cfg, err := pgxpool.ParseConfig(dbURL)
		if err != nil {
			testDBErr = err
			return
		}

		testDBPool, testDBErr = pgxpool.NewWithConfig(context.Background(), cfg)
		if testDBErr != nil {
			return
		}
		testDBErr = testDBPool.Ping(context.Background())
	})

	if testDBErr != nil {
		t.Skipf("skipping integration test: %v", testDBErr)
	}
	return testDBPool
}

func createTestUser(t *testing.T, ctx context.Context, pool *pgxpool.Pool) int64 {
	t.Helper()

	userRepo := repository.NewUserRepository(pool)
	user := &models.User{
		Username:     fmt.Sprintf("plan-test-%d", time.Now().UnixNano()),
		PasswordHash: "test-hash",
	}
	if err := userRepo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return user.ID
}

func createTestPlan(t *testing.T, ctx context.Context, pool *pgxpool.Pool, userID int64) *models.WorkoutPlan {
	t.Helper()

	planRepo := repository.NewWorkoutPlanRepository(pool)
	plan, err := planRepo.Create(ctx, repository.CreateWorkoutPlanInput{
		UserID:   userID,
		PlanName: "Integration plan",
	})
	if err != nil {
		t.Fatalf("Create plan: %v", err)
	}
	return plan
}

func cleanupTestUser(t *testing.T, ctx context.Context, pool *pgxpool.Pool, userID int64) {
	t.Helper()

	queries := []string{
		`DELETE FROM exercises WHERE plan_id IN (SELECT plan_id FROM workout_plans WHERE user_id = $1)`,
		`DELETE FROM workout_plans WHERE user_id = $1`,
		`DELETE FROM users WHERE id = $1`,
	}
	for _, query := range queries {
		if _, err := pool.Exec(ctx, query, userID); err != nil {
			t.Logf("cleanup: %v", err)
		}
	}
}
