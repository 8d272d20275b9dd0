package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/CodeByColin/MVP/internal/models"
	"github.com/CodeByColin/MVP/internal/repository"
	"github.com/CodeByColin/MVP/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type planApplicationService interface {
	CreatePlan(ctx context.Context, input repository.CreateWorkoutPlanInput) (*models.WorkoutPlan, error)
	ListPlans(ctx context.Context, userID int64) ([]models.WorkoutPlan, error)
	DeletePlan(ctx context.Context, planID int64) error
}

type PlanHandler struct {
	service planApplicationService
	log     zerolog.Logger
}

func NewPlanHandler(service planApplicationService, log zerolog.Logger) *PlanHandler {
	return &PlanHandler{
		service: service,
		log:     log,
	}
}

type createPlanRequest struct {
	UserID      int64   `json:"user_id"`
	PlanName    string  `json:"plan_name"`
	Description *string `json:"description"`
}

func (h *PlanHandler) CreatePlan(c *fiber.Ctx) error {
	var req createPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	plan, err := h.service.CreatePlan(c.Context(), repository.CreateWorkoutPlanInput{
		UserID:      req.UserID,
		PlanName:    req.PlanName,
		Description: req.Description,
	})
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "user_id does not reference an existing user"})
		}
		h.log.Error().Err(err).Int64("user_id", req.UserID).Msg("create plan")
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to create workout plan"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"plan": plan})
}

func (h *PlanHandler) ListPlans(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("userId"), 10, 64)
	if err != nil || userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	plans, err := h.service.ListPlans(c.Context(), userID)
	if err != nil {
		h.log.Error().Err(err).Int64("user_id", userID).Msg("list plans")
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to list workout plans"})
	}

	return c.JSON(plans)
}

func (h *PlanHandler) DeletePlan(c *fiber.Ctx) error {
	planID, err := strconv.ParseInt(c.Params("planId"), 10, 64)
	if err != nil || planID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid plan id"})
	}

	if err := h.service.DeletePlan(c.Context(), planID); err != nil {
		if errors.Is(err, services.ErrPlanNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"success": false, "message": "Workout plan not found."})
		}
		h.log.Error().Err(err).Int64("plan_id", planID).Msg("delete plan")
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to delete workout plan"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Workout plan and its exercises deleted successfully.",
	})
}
