package routes

import (
	"Pick-My-Dish/domain"
	"Pick-My-Dish/internal/api/handlers"
	"Pick-My-Dish/internal/middleware"
	"Pick-My-Dish/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	RecipeHandler     handlers.RecipeHandler
	IngredientHandler handlers.IngredientHandler
	CategoryHandler   handlers.CategoryHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
	// UploadDir is served under /uploads when set.
	UploadDir string
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Auth()
	c.User()
	c.Recipe()
	c.Catalog()
	c.Uploads()
}

func (c *Config) GuestRoute() {
	c.App.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Pick My Dish API",
			"endpoints": []string{
				"POST /api/auth/register",
				"POST /api/auth/login",
				"GET /api/users/profile",
				"PUT /api/users/username",
				"GET /api/recipes",
				"POST /api/recipes",
				"GET /api/recipes/:id",
				"POST /api/recipes/:id/ingredients",
				"GET /api/ingredients",
				"POST /api/ingredients",
				"GET /api/categories",
				"GET /api/health",
			},
		})
	})
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": domain.MessageSuccessPing})
	})
	c.App.Get("/api/health", c.CategoryHandler.Health)
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	auth.Post("/register", c.UserHandler.Register)
	auth.Post("/login", c.UserHandler.Login)
}

func (c *Config) User() {
	user := c.App.Group("/api/users", c.Middleware.AuthMiddleware(c.JWTService))
	user.Get("/profile", c.UserHandler.Profile)
	user.Put("/username", c.UserHandler.UpdateUsername)
}

func (c *Config) Recipe() {
	recipes := c.App.Group("/api/recipes")
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Post("", c.RecipeHandler.CreateRecipe)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipes.Post("/:id/ingredients", c.RecipeHandler.AttachIngredients)
}

func (c *Config) Catalog() {
	c.App.Get("/api/ingredients", c.IngredientHandler.GetIngredients)
	c.App.Post("/api/ingredients", c.IngredientHandler.CreateIngredient)
	c.App.Get("/api/categories", c.CategoryHandler.GetCategories)
}

func (c *Config) Uploads() {
	if c.UploadDir == "" {
		return
	}
	c.App.Static("/uploads", c.UploadDir, fiber.Static{ByteRange: true})
}
