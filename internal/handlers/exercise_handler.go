package handlers

import (
	"context"
	"strconv"

	"github.com/CodeByColin/MVP/internal/models"
	"github.com/CodeByColin/MVP/internal/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type exerciseStore interface {
	Create(ctx context.Context, input repository.CreateExerciseInput) (*models.Exercise, error)
	ListByPlanID(ctx context.Context, planID int64) ([]models.Exercise, error)
}

type ExerciseHandler struct {
	exerciseRepo exerciseStore
	log          zerolog.Logger
}

func NewExerciseHandler(exerciseRepo exerciseStore, log zerolog.Logger) *ExerciseHandler {
	return &ExerciseHandler{
		exerciseRepo: exerciseRepo,
		log:          log,
	}
}

type createExerciseRequest struct {
	ExerciseName string  `json:"exercise_name"`
	Sets         int     `json:"sets"`
	Repetitions  int     `json:"repetitions"`
	Notes        *string `json:"notes"`
}

func (h *ExerciseHandler) CreateExercise(c *fiber.Ctx) error {
	planID, err := strconv.ParseInt(c.Params("planId"), 10, 64)
	if err != nil || planID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid plan id"})
	}

	var req createExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	exercise, err := h.exerciseRepo.Create(c.Context(), repository.CreateExerciseInput{
		PlanID:       planID,
		ExerciseName: req.ExerciseName,
		Sets:         req.Sets,
		Repetitions:  req.Repetitions,
		Notes:        req.Notes,
	})
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"success": false, "message": "Workout plan not found."})
		}
		h.log.Error().Err(err).Int64("plan_id", planID).Msg("create exercise")
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to create exercise"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"message":  "Exercise added successfully.",
		"exercise": exercise,
	})
}

func (h *ExerciseHandler) ListExercises(c *fiber.Ctx) error {
	planID, err := strconv.ParseInt(c.Params("planId"), 10, 64)
	if err != nil || planID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid plan id"})
	}

	exercises, err := h.exerciseRepo.ListByPlanID(c.Context(), planID)
	if err != nil {
		h.log.Error().Err(err).Int64("plan_id", planID).Msg("list exercises")
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to list exercises"})
	}

	return c.JSON(exercises)
}
