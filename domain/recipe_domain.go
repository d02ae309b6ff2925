package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateRecipe     = "Recipe created"
	MessageSuccessGetRecipes       = "success get recipes"
	MessageSuccessGetRecipeDetail  = "success get recipe detail"
	MessageSuccessAttachIngredient = "ingredients linked to recipe"

	MessageFailedCreateRecipe     = "failed to create recipe"
	MessageFailedGetRecipes       = "failed to get recipes"
	MessageFailedGetRecipeDetail  = "failed to get recipe detail"
	MessageFailedAttachIngredient = "failed to link ingredients"

	ErrRecipeNotFound = errors.New("recipe not found")
)

// Read-side fallbacks for columns left empty by older rows.
const (
	DefaultCategoryName = "Main Course"
	DefaultCookingTime  = "30 mins"
	DefaultCalories     = "0"
	DefaultImagePath    = "assets/recipes/placeholder.png"
	DefaultAuthorName   = "Unknown"
)

type (
	// CreateRecipeRequest is the multipart form posted by the app. The
	// list-shaped fields carry JSON arrays.
	CreateRecipeRequest struct {
		Name         string `form:"name"`
		Category     string `form:"category"`
		Time         string `form:"time"`
		Calories     string `form:"calories"`
		Ingredients  string `form:"ingredients"`
		Instructions string `form:"instructions"`
		Emotions     string `form:"emotions"`
		UserID       string `form:"userId"`
	}

	// RecipeDraft is a decoded CreateRecipeRequest ready for ingestion.
	RecipeDraft struct {
		Name          string
		Category      string
		CookingTime   string
		Calories      string
		IngredientIDs []uint
		Instructions  []string
		Moods         []string
		OwnerUserID   uint
	}

	AttachIngredientsRequest struct {
		Ingredients []uint `json:"ingredients" validate:"required,min=1,dive,gt=0"`
	}

	RecipeView struct {
		ID           uint      `json:"id"`
		Name         string    `json:"name"`
		Category     string    `json:"category"`
		Time         string    `json:"time"`
		Calories     string    `json:"calories"`
		ImagePath    string    `json:"imagePath"`
		Ingredients  []string  `json:"ingredients"`
		Instructions []string  `json:"instructions"`
		Emotions     []string  `json:"emotions"`
		UserID       *uint     `json:"userId"`
		AuthorName   string    `json:"authorName"`
		IsFavorite   bool      `json:"isFavorite"`
		CreatedAt    time.Time `json:"createdAt"`
	}
)
