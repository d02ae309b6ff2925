package category

import (
	"Pick-My-Dish/entities"
	"Pick-My-Dish/internal/testutil"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCategoryID(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewCategoryService(NewCategoryRepository(db), 6)
	ctx := context.Background()

	var breakfast entities.Category
	require.NoError(t, db.Where("name = ?", "Breakfast").First(&breakfast).Error)

	id, err := svc.ResolveCategoryID(ctx, "Breakfast")
	require.NoError(t, err)
	assert.Equal(t, breakfast.ID, id)

	id, err = svc.ResolveCategoryID(ctx, "Brunch")
	require.NoError(t, err)
	assert.Equal(t, uint(6), id)

	var count int64
	require.NoError(t, db.Model(&entities.Category{}).Count(&count).Error)
	assert.Equal(t, int64(len(entities.SeedCategories)), count, "unknown names must not create categories")
}

func TestGetCategories_SeededInOrder(t *testing.T) {
	svc := NewCategoryService(NewCategoryRepository(testutil.NewDB(t)), 1)

	categories, err := svc.GetCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, len(entities.SeedCategories))
	for i, name := range entities.SeedCategories {
		assert.Equal(t, name, categories[i].Name)
	}
	assert.Equal(t, uint(1), categories[0].ID)
}

func TestCheckDefaultCategory(t *testing.T) {
	repo := NewCategoryRepository(testutil.NewDB(t))

	assert.NoError(t, NewCategoryService(repo, 6).CheckDefaultCategory(context.Background()))

	err := NewCategoryService(repo, 99).CheckDefaultCategory(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "99")
}
