package category

import (
	"Pick-My-Dish/domain"
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2/log"
)

type (
	CategoryService interface {
		GetCategories(ctx context.Context) ([]domain.Category, error)
		ResolveCategoryID(ctx context.Context, name string) (uint, error)
		CheckDefaultCategory(ctx context.Context) error
	}

	categoryService struct {
		categoryRepository CategoryRepository
		defaultCategoryID  uint
	}
)

func NewCategoryService(categoryRepository CategoryRepository, defaultCategoryID uint) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		defaultCategoryID:  defaultCategoryID,
	}
}

func (s *categoryService) GetCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepository.GetCategories(ctx)
	if err != nil {
		return nil, &domain.StorageError{Op: "list categories", Err: err}
	}

	res := make([]domain.Category, 0, len(categories))
	for _, c := range categories {
		res = append(res, domain.Category{ID: c.ID, Name: c.Name})
	}
	return res, nil
}

// ResolveCategoryID looks the name up exactly. Unknown names fall back to
// the configured default id; no category row is ever created here.
func (s *categoryService) ResolveCategoryID(ctx context.Context, name string) (uint, error) {
	category, err := s.categoryRepository.GetCategoryByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return 0, &domain.StorageError{Op: "find category", Err: err}
	}
	if category == nil {
		log.Infow("unknown category, using default", "category", name, "default_id", s.defaultCategoryID)
		return s.defaultCategoryID, nil
	}
	return category.ID, nil
}

// CheckDefaultCategory fails when the configured fallback id has no
// category row. Every unknown category name resolves to it, so the server
// refuses to start without it.
func (s *categoryService) CheckDefaultCategory(ctx context.Context) error {
	category, err := s.categoryRepository.GetCategoryByID(ctx, s.defaultCategoryID)
	if err != nil {
		return &domain.StorageError{Op: "find default category", Err: err}
	}
	if category == nil {
		return fmt.Errorf("DEFAULT_CATEGORY_ID %d does not name an existing category", s.defaultCategoryID)
	}
	return nil
}
