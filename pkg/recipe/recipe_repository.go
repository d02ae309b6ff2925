package recipe

import (
	"Pick-My-Dish/domain"
	"Pick-My-Dish/entities"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipeWithIngredients(ctx context.Context, recipe *entities.Recipe, ingredientIDs []uint) error
		AddRecipeIngredients(ctx context.Context, recipeID uint, ingredientIDs []uint) error
		RecipeExists(ctx context.Context, id uint) (bool, error)
		GetRecipeListings(ctx context.Context, recipeID uint) ([]RecipeListing, error)
		GetIngredientNames(ctx context.Context, recipeIDs []uint) (map[uint][]string, error)
		GetRecipeIngredients(ctx context.Context, recipeID uint) ([]*entities.RecipeIngredient, error)
	}

	// RecipeListing is one recipe joined with its category and author.
	RecipeListing struct {
		ID             uint
		Name           string
		CategoryName   *string
		CookingTime    *string
		Calories       *string
		ImagePath      *string
		Steps          string
		Emotions       string
		UserID         *uint
		AuthorUsername *string
		AuthorFullName *string
		CreatedAt      time.Time
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// CreateRecipeWithIngredients inserts the recipe and one association row
// per id, in order, inside a single transaction.
func (r *recipeRepository) CreateRecipeWithIngredients(ctx context.Context, recipe *entities.Recipe, ingredientIDs []uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		return linkIngredients(tx, recipe.ID, ingredientIDs)
	})

	var linkErr *domain.IngredientLinkError
	if errors.As(err, &linkErr) {
		linkErr.RecipeDiscarded = true
	}
	return err
}

func (r *recipeRepository) AddRecipeIngredients(ctx context.Context, recipeID uint, ingredientIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return linkIngredients(tx, recipeID, ingredientIDs)
	})
}

// linkIngredients inserts row by row so a failure names the ingredient.
func linkIngredients(tx *gorm.DB, recipeID uint, ingredientIDs []uint) error {
	for _, ingredientID := range ingredientIDs {
		link := &entities.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: ingredientID,
		}
		if err := tx.Create(link).Error; err != nil {
			return &domain.IngredientLinkError{
				RecipeID:     recipeID,
				IngredientID: ingredientID,
				Err:          err,
			}
		}
	}
	return nil
}

func (r *recipeRepository) RecipeExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetRecipeListings returns every recipe, newest first, or only recipeID
// when it is non-zero.
func (r *recipeRepository) GetRecipeListings(ctx context.Context, recipeID uint) ([]RecipeListing, error) {
	var listings []RecipeListing

	query := r.db.WithContext(ctx).
		Table("recipes").
		Select(`recipes.id, recipes.name, categories.name AS category_name,
			recipes.cooking_time, recipes.calories, recipes.image_path,
			recipes.steps, recipes.emotions, recipes.user_id,
			users.username AS author_username, users.full_name AS author_full_name,
			recipes.created_at`).
		Joins("LEFT JOIN categories ON categories.id = recipes.category_id").
		Joins("LEFT JOIN users ON users.id = recipes.user_id")

	if recipeID != 0 {
		query = query.Where("recipes.id = ?", recipeID)
	}

	if err := query.
		Order("recipes.created_at desc").
		Order("recipes.id desc").
		Scan(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

// GetIngredientNames returns, per recipe, the distinct ingredient names in
// the order they were first linked.
func (r *recipeRepository) GetIngredientNames(ctx context.Context, recipeIDs []uint) (map[uint][]string, error) {
	names := make(map[uint][]string, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return names, nil
	}

	var rows []struct {
		RecipeID uint
		Name     string
	}
	if err := r.db.WithContext(ctx).
		Table("recipe_ingredients").
		Select("recipe_ingredients.recipe_id, ingredients.name").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("recipe_ingredients.recipe_id IN ?", recipeIDs).
		Order("recipe_ingredients.id asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	seen := make(map[uint]map[string]bool)
	for _, row := range rows {
		if seen[row.RecipeID] == nil {
			seen[row.RecipeID] = map[string]bool{}
		}
		if seen[row.RecipeID][row.Name] {
			continue
		}
		seen[row.RecipeID][row.Name] = true
		names[row.RecipeID] = append(names[row.RecipeID], row.Name)
	}
	return names, nil
}

func (r *recipeRepository) GetRecipeIngredients(ctx context.Context, recipeID uint) ([]*entities.RecipeIngredient, error) {
	var links []*entities.RecipeIngredient
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("id asc").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}
