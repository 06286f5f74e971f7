package routes

import (
	"caloreat/internal/api/handlers"
	"caloreat/internal/middleware"
	"caloreat/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	FoodHandler      handlers.FoodHandler
	NutritionHandler handlers.NutritionHandler
	StatsHandler     handlers.StatsHandler
	MealHandler      handlers.MealHandler
	ProfileHandler   handlers.ProfileHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Foods()
	c.Nutrition()
	c.Stats()
	c.MealLogs()
	c.Profile()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Foods() {
	foods := c.App.Group("/api/v1/foods", c.Middleware.AuthMiddleware(c.JWTService))
	{
		foods.Get("/", c.FoodHandler.SearchFoods)
		foods.Post("/resolve", c.FoodHandler.ResolveFood)
		foods.Post("/resolve-batch", c.FoodHandler.ResolveFoods)
	}
}

func (c *Config) Nutrition() {
	nutrition := c.App.Group("/api/v1/nutrition", c.Middleware.AuthMiddleware(c.JWTService))
	{
		nutrition.Get("/target", c.NutritionHandler.GetTarget)
		nutrition.Get("/advice", c.NutritionHandler.GetAdvice)
	}
}

func (c *Config) Stats() {
	stats := c.App.Group("/api/v1/stats", c.Middleware.AuthMiddleware(c.JWTService))
	{
		stats.Get("/daily", c.StatsHandler.GetDailyStats)
		stats.Get("/weekly", c.StatsHandler.GetWeeklyStats)
		stats.Get("/monthly", c.StatsHandler.GetMonthlyStats)
	}
}

func (c *Config) MealLogs() {
	mealLogs := c.App.Group("/api/v1/meal-logs", c.Middleware.AuthMiddleware(c.JWTService))
	{
		mealLogs.Post("/", c.MealHandler.CreateMealLog)
		mealLogs.Get("/", c.MealHandler.GetMealLogs)
		mealLogs.Delete("/:id", c.MealHandler.DeleteMealLog)
	}
}

func (c *Config) Profile() {
	profile := c.App.Group("/api/v1/profile", c.Middleware.AuthMiddleware(c.JWTService))
	{
		profile.Put("/", c.ProfileHandler.UpsertProfile)
		profile.Get("/", c.ProfileHandler.GetProfile)
		profile.Put("/conditions", c.ProfileHandler.UpdateConditions)
		profile.Get("/conditions", c.ProfileHandler.GetConditions)
	}
}
