package handlers

import (
	"context"
	"errors"

	"github.com/CodeByColin/MVP/internal/models"
	"github.com/CodeByColin/MVP/internal/repository"
	"github.com/CodeByColin/MVP/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type userStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type AuthHandler struct {
	userRepo userStore
	log      zerolog.Logger
}

func NewAuthHandler(userRepo userStore, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		userRepo: userRepo,
		log:      log,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		h.log.Error().Err(err).Msg("hash password")
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to create user"})
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hashed,
	}
	if err := h.userRepo.CreateUser(c.Context(), user); err != nil {
		if repository.IsUniqueViolation(err) {
			return c.Status(fiber.StatusConflict).
				JSON(fiber.Map{"error": "Username already exists"})
		}
		h.log.Error().Err(err).Str("username", req.Username).Msg("create user")
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to create user"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	user, err := h.userRepo.GetByUsername(c.Context(), req.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"success": false, "message": "User not found."})
		}
		h.log.Error().Err(err).Str("username", req.Username).Msg("lookup user")
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to log in"})
	}

	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		return c.Status(fiber.StatusUnauthorized).
			JSON(fiber.Map{"success": false, "message": "Invalid password."})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful.",
		"user":    user,
	})
}
