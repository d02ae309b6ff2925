package recipe

import (
	"Pick-My-Dish/domain"
	"Pick-My-Dish/entities"
	"Pick-My-Dish/pkg/category"
	"Pick-My-Dish/pkg/ingredient"
	"Pick-My-Dish/pkg/user"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2/log"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, draft domain.RecipeDraft, imagePath *string) (uint, error)
		AttachIngredients(ctx context.Context, recipeID uint, ingredientIDs []uint) error
		ListRecipes(ctx context.Context) ([]domain.RecipeView, error)
		GetRecipe(ctx context.Context, recipeID uint) (domain.RecipeView, error)
	}

	recipeService struct {
		recipeRepository  RecipeRepository
		userRepository    user.UserRepository
		categoryService   category.CategoryService
		ingredientService ingredient.IngredientService
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	userRepository user.UserRepository,
	categoryService category.CategoryService,
	ingredientService ingredient.IngredientService,
) RecipeService {
	return &recipeService{
		recipeRepository:  recipeRepository,
		userRepository:    userRepository,
		categoryService:   categoryService,
		ingredientService: ingredientService,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, draft domain.RecipeDraft, imagePath *string) (uint, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return 0, domain.NewValidationError("name", "is required")
	}
	if strings.TrimSpace(draft.Category) == "" {
		return 0, domain.NewValidationError("category", "is required")
	}
	if draft.OwnerUserID == 0 {
		return 0, domain.NewValidationError("userId", "is required")
	}

	owner, err := s.userRepository.GetUserByID(ctx, draft.OwnerUserID)
	if err != nil {
		return 0, &domain.StorageError{Op: "find recipe owner", Err: err}
	}
	if owner == nil {
		return 0, domain.NewValidationError("userId", fmt.Sprintf("unknown user %d", draft.OwnerUserID))
	}

	if err := s.ingredientService.EnsureExist(ctx, draft.IngredientIDs); err != nil {
		return 0, err
	}

	categoryID, err := s.categoryService.ResolveCategoryID(ctx, draft.Category)
	if err != nil {
		return 0, err
	}

	recipe := &entities.Recipe{
		UserID:      &owner.ID,
		Name:        strings.TrimSpace(draft.Name),
		CategoryID:  categoryID,
		CookingTime: optional(draft.CookingTime),
		Calories:    optional(draft.Calories),
		Steps:       EncodeStringList(draft.Instructions),
		Emotions:    EncodeStringList(uniqueStrings(draft.Moods)),
		ImagePath:   imagePath,
	}

	if err := s.recipeRepository.CreateRecipeWithIngredients(ctx, recipe, draft.IngredientIDs); err != nil {
		var linkErr *domain.IngredientLinkError
		if errors.As(err, &linkErr) {
			log.Errorw("recipe rolled back, ingredient link failed",
				"recipe_id", linkErr.RecipeID, "ingredient_id", linkErr.IngredientID,
				"discarded", linkErr.RecipeDiscarded, "error", linkErr.Err)
			return 0, linkErr
		}
		return 0, &domain.StorageError{Op: "create recipe", Err: err}
	}

	log.Infow("recipe created",
		"recipe_id", recipe.ID, "user_id", owner.ID, "category_id", categoryID, "ingredients", len(draft.IngredientIDs))
	return recipe.ID, nil
}

// AttachIngredients links more ingredients to an existing recipe. It is the
// retry path after an IngredientLinkError and follows the same ordering and
// duplicate rules as CreateRecipe.
func (s *recipeService) AttachIngredients(ctx context.Context, recipeID uint, ingredientIDs []uint) error {
	if len(ingredientIDs) == 0 {
		return domain.NewValidationError("ingredients", "at least one ingredient id is required")
	}

	exists, err := s.recipeRepository.RecipeExists(ctx, recipeID)
	if err != nil {
		return &domain.StorageError{Op: "find recipe", Err: err}
	}
	if !exists {
		return domain.ErrRecipeNotFound
	}

	if err := s.ingredientService.EnsureExist(ctx, ingredientIDs); err != nil {
		return err
	}

	if err := s.recipeRepository.AddRecipeIngredients(ctx, recipeID, ingredientIDs); err != nil {
		var linkErr *domain.IngredientLinkError
		if errors.As(err, &linkErr) {
			log.Errorw("ingredient link failed",
				"recipe_id", linkErr.RecipeID, "ingredient_id", linkErr.IngredientID, "error", linkErr.Err)
			return linkErr
		}
		return &domain.StorageError{Op: "link ingredients", Err: err}
	}
	return nil
}

func (s *recipeService) ListRecipes(ctx context.Context) ([]domain.RecipeView, error) {
	return s.views(ctx, 0)
}

func (s *recipeService) GetRecipe(ctx context.Context, recipeID uint) (domain.RecipeView, error) {
	views, err := s.views(ctx, recipeID)
	if err != nil {
		return domain.RecipeView{}, err
	}
	if len(views) == 0 {
		return domain.RecipeView{}, domain.ErrRecipeNotFound
	}
	return views[0], nil
}

func (s *recipeService) views(ctx context.Context, recipeID uint) ([]domain.RecipeView, error) {
	listings, err := s.recipeRepository.GetRecipeListings(ctx, recipeID)
	if err != nil {
		return nil, &domain.StorageError{Op: "list recipes", Err: err}
	}

	ids := make([]uint, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.ID)
	}
	names, err := s.recipeRepository.GetIngredientNames(ctx, ids)
	if err != nil {
		return nil, &domain.StorageError{Op: "list recipe ingredients", Err: err}
	}

	views := make([]domain.RecipeView, 0, len(listings))
	for _, l := range listings {
		views = append(views, toRecipeView(l, names[l.ID]))
	}
	return views, nil
}

func toRecipeView(l RecipeListing, ingredientNames []string) domain.RecipeView {
	instructions, ok := decodeStoredList(l.Steps)
	if !ok {
		log.Warnw("unreadable recipe steps, showing none", "recipe_id", l.ID)
	}
	emotions, ok := decodeStoredList(l.Emotions)
	if !ok {
		log.Warnw("unreadable recipe emotions, showing none", "recipe_id", l.ID)
	}
	if ingredientNames == nil {
		ingredientNames = []string{}
	}

	return domain.RecipeView{
		ID:           l.ID,
		Name:         l.Name,
		Category:     valueOr(l.CategoryName, domain.DefaultCategoryName),
		Time:         valueOr(l.CookingTime, domain.DefaultCookingTime),
		Calories:     valueOr(l.Calories, domain.DefaultCalories),
		ImagePath:    valueOr(l.ImagePath, domain.DefaultImagePath),
		Ingredients:  ingredientNames,
		Instructions: instructions,
		Emotions:     emotions,
		UserID:       l.UserID,
		AuthorName:   authorName(l),
		IsFavorite:   false,
		CreatedAt:    l.CreatedAt,
	}
}

func authorName(l RecipeListing) string {
	if l.AuthorFullName != nil && strings.TrimSpace(*l.AuthorFullName) != "" {
		return *l.AuthorFullName
	}
	return valueOr(l.AuthorUsername, domain.DefaultAuthorName)
}

func valueOr(v *string, fallback string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return fallback
	}
	return *v
}

func optional(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}
