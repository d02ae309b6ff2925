package config

import (
	"Pick-My-Dish/internal/api/handlers"
	"Pick-My-Dish/internal/api/routes"
	"Pick-My-Dish/internal/middleware"
	"Pick-My-Dish/internal/utils"
	"Pick-My-Dish/internal/utils/mailing"
	"Pick-My-Dish/internal/utils/storage"
	"Pick-My-Dish/pkg/category"
	"Pick-My-Dish/pkg/ingredient"
	"Pick-My-Dish/pkg/jwt"
	"Pick-My-Dish/pkg/recipe"
	"Pick-My-Dish/pkg/user"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// bodyLimit sits above storage.MaxImageSize so oversized images reach the
// upload check and get a field-level error.
const bodyLimit = 8 << 20

func NewApp(cfg *utils.Config, db *gorm.DB) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName:      "Pick My Dish",
		BodyLimit:    bodyLimit,
		ErrorHandler: handlers.ErrorHandler,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.NewValidator()

	// setting up logging and limiter
	output, err := logOutput(cfg.LogFile)
	if err != nil {
		return nil, err
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     output,
	}))
	if cfg.RateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimitMax,
			Expiration: 1 * time.Second,
		}))
	}

	// utils
	store, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}
	var mailer mailing.Mailer
	if cfg.MailEnabled() {
		mailer = mailing.NewMailer(mailing.LoadMailConfig(cfg))
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	categoryRepository := category.NewCategoryRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)

	// Service
	jwtService := jwt.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer)
	userService := user.NewUserService(userRepository, jwtService, mailer, cfg.AppURL)
	categoryService := category.NewCategoryService(categoryRepository, cfg.DefaultCategoryID)
	if err := categoryService.CheckDefaultCategory(context.Background()); err != nil {
		return nil, err
	}
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, userRepository, categoryService, ingredientService)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, store, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	categoryHandler := handlers.NewCategoryHandler(categoryService)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		RecipeHandler:     recipeHandler,
		IngredientHandler: ingredientHandler,
		CategoryHandler:   categoryHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	if cfg.StorageDriver != "s3" {
		routesConfig.UploadDir = cfg.UploadDir
	}
	routesConfig.Setup()
	return app, nil
}

func logOutput(path string) (io.Writer, error) {
	if path == "" {
		return os.Stdout, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	return file, nil
}

func newStorage(cfg *utils.Config) (storage.Storage, error) {
	switch cfg.StorageDriver {
	case "s3":
		log.Infof("storing uploads in s3 bucket %s", cfg.AWSS3Bucket)
		return storage.NewAwsS3(context.Background(), cfg)
	case "local", "":
		baseURL := strings.TrimRight(cfg.AppURL, "/") + "/uploads/"
		log.Infof("storing uploads under %s", cfg.UploadDir)
		return storage.NewLocalStorage(cfg.UploadDir, baseURL), nil
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.StorageDriver)
	}
}
