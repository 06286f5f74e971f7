package config

import (
	"os"
	"path/filepath"
	"time"

	"caloreat/internal/api/handlers"
	"caloreat/internal/api/routes"
	"caloreat/internal/middleware"
	"caloreat/internal/utils"
	"caloreat/internal/utils/storage"
	"caloreat/pkg/food"
	"caloreat/pkg/jwt"
	"caloreat/pkg/meal"
	"caloreat/pkg/nutrition"
	"caloreat/pkg/oracle"
	"caloreat/pkg/profile"
	"caloreat/pkg/stats"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Dependencies are the pieces NewApp cannot build for itself. Tests swap
// the oracle, storage and clock.
type Dependencies struct {
	DB     *gorm.DB
	Config *utils.Config
	Logger *zap.Logger
	Oracle oracle.Client
	S3     storage.AwsS3
	Clock  utils.Clock
}

func NewApp(deps Dependencies) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate
	cfg := deps.Config
	location := cfg.Location()

	// setting up logging and limiter
	if err := os.MkdirAll(cfg.LogDir, os.ModePerm); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(
		filepath.Join(cfg.LogDir, "app.log"),
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, err
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   cfg.Timezone,
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	foodRepository := food.NewFoodRepository(deps.DB)
	mealRepository := meal.NewMealRepository(deps.DB)
	profileRepository := profile.NewProfileRepository(deps.DB)

	// Service
	jwtService := jwt.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer)
	foodService := food.NewFoodService(foodRepository, deps.Oracle, deps.Logger)
	mealService := meal.NewMealService(mealRepository, deps.S3, deps.Clock, location, deps.Logger)
	profileService := profile.NewProfileService(profileRepository, deps.Clock, location)
	nutritionService := nutrition.NewNutritionService(profileRepository, mealRepository, deps.Clock, location)
	statsService := stats.NewStatsService(mealRepository, nutritionService, deps.Clock, location)

	// Handler
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	mealHandler := handlers.NewMealHandler(mealService, validator)
	profileHandler := handlers.NewProfileHandler(profileService, validator)
	nutritionHandler := handlers.NewNutritionHandler(nutritionService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// routes
	routesConfig := routes.Config{
		App:              app,
		FoodHandler:      foodHandler,
		NutritionHandler: nutritionHandler,
		StatsHandler:     statsHandler,
		MealHandler:      mealHandler,
		ProfileHandler:   profileHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
