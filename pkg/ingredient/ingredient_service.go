package ingredient

import (
	"Pick-My-Dish/domain"
	"Pick-My-Dish/entities"
	"context"
	"fmt"
	"strings"
)

type (
	IngredientService interface {
		GetIngredients(ctx context.Context) ([]domain.Ingredient, error)
		CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (uint, error)
		EnsureExist(ctx context.Context, ids []uint) error
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

func (s *ingredientService) GetIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx)
	if err != nil {
		return nil, &domain.StorageError{Op: "list ingredients", Err: err}
	}

	res := make([]domain.Ingredient, 0, len(ingredients))
	for _, i := range ingredients {
		res = append(res, domain.Ingredient{ID: i.ID, Name: i.Name})
	}
	return res, nil
}

func (s *ingredientService) CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (uint, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return 0, domain.NewValidationError("name", "is required")
	}

	ingredient := &entities.Ingredient{Name: name}
	if err := s.ingredientRepository.CreateIngredient(ctx, ingredient); err != nil {
		return 0, &domain.StorageError{Op: "create ingredient", Err: err}
	}
	return ingredient.ID, nil
}

// EnsureExist fails with a ValidationError naming the first unknown id,
// in input order.
func (s *ingredientService) EnsureExist(ctx context.Context, ids []uint) error {
	existing, err := s.ingredientRepository.GetExistingIDs(ctx, ids)
	if err != nil {
		return &domain.StorageError{Op: "check ingredients", Err: err}
	}
	for _, id := range ids {
		if !existing[id] {
			return domain.NewValidationError("ingredients", fmt.Sprintf("unknown ingredient id %d", id))
		}
	}
	return nil
}
