package routes

import (
	"github.com/CodeByColin/MVP/internal/handlers"
	"github.com/CodeByColin/MVP/internal/repository"
	"github.com/CodeByColin/MVP/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

func RegisterRoutes(app *fiber.App, db *pgxpool.Pool, log zerolog.Logger) {
	userRepo := repository.NewUserRepository(db)
	planRepo := repository.NewWorkoutPlanRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)

	planService := services.NewPlanService(db, planRepo)

	authHandler := handlers.NewAuthHandler(userRepo, log)
	planHandler := handlers.NewPlanHandler(planService, log)
	exerciseHandler := handlers.NewExerciseHandler(exerciseRepo, log)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Workout tracker API is running")
	})

	api := app.Group("/api")

	users := api.Group("/users")
	users.Post("/register", authHandler.Register)
	users.Post("/login", authHandler.Login)

	plans := api.Group("/workout-plans")
	plans.Post("", planHandler.CreatePlan)
	plans.Get("/:userId", planHandler.ListPlans)
	plans.Delete("/:planId", planHandler.DeletePlan)

	exercises := api.Group("/exercises")
	exercises.Post("/:planId", exerciseHandler.CreateExercise)
	exercises.Get("/:planId", exerciseHandler.ListExercises)
}
