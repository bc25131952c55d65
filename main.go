package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	swag "github.com/gofiber/swagger"
	"github.com/joho/godotenv"

	_ "user-registry/docs" // required to register swagger spec

	"user-registry/controller"
	"user-registry/middleware"
	"user-registry/repository"
	"user-registry/seeder"
	"user-registry/service"
	"user-registry/util"
)

// @title           User Registry API
// @version         1.0
// @description     A CRUD web API managing users, profiles, and roles.

// @host            localhost:4000
// @BasePath        /api
func main() {
	if err := godotenv.Load(); err != nil {
		util.Logger.Warn().Err(err).Msg("failed to load .env file, using system environment variables")
	}
	util.InitLogger()

	db := util.InitDB()

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		seeder.SeedDemoUsers(db)
	}

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	roleRepo := repository.NewRoleRepository(db)

	app := fiber.New()
	setupRoutes(app, userRepo, profileRepo, roleRepo)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	util.Logger.Fatal().Err(app.Listen(":" + port)).Msg("server stopped")
}

func setupRoutes(app *fiber.App, userRepo repository.UserRepository, profileRepo repository.ProfileRepository, roleRepo repository.RoleRepository) {
	app.Use(middleware.TimerMetrics)
	app.Use(middleware.InitRateLimiter())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/swagger/*", swag.HandlerDefault)

	userService := service.NewUserService(userRepo, roleRepo)
	profileService := service.NewProfileService(profileRepo, userRepo)
	userController := controller.NewUserController(userService)
	profileController := controller.NewProfileController(profileService)

	api := app.Group("/api")

	users := api.Group("/users")
	users.Get("/", userController.GetUsers)
	// static segments before the :id wildcard
	users.Get("/FindByRole", userController.FindByRole)
	users.Get("/FindByUsername", userController.FindByUsername)
	users.Get("/FilterByEmail", userController.FilterByEmail)
	users.Post("/AddRole", userController.AddRoleToUser)
	users.Get("/:id", userController.GetUser)
	users.Put("/:id", userController.EditUser)
	users.Post("/", userController.Register)
	users.Delete("/:id", userController.DeleteUser)

	profiles := api.Group("/profiles")
	profiles.Get("/:id", profileController.ViewProfile)
	profiles.Post("/", profileController.AddProfile)
}
