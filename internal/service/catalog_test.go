package service

import (
	"context"
	"testing"

	"github.com/Skotchmaster/food_delivery/internal/transport"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_MenuItemCRUD(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, transport.CategoryRequest{Name: "salad", ImageURL: "salad.png"})
	require.NoError(t, err)

	item, err := svc.CreateMenuItem(ctx, transport.MenuItemRequest{
		Name:       "Attieke",
		Price:      10,
		ImageURL:   "attieke.jpg",
		CategoryID: category.CategoryID,
		Nutrition:  "250 cal",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, item.FoodID)

	got, err := svc.GetMenuItem(ctx, item.FoodID)
	require.NoError(t, err)
	assert.Equal(t, "Attieke", got.Name)

	updated, err := svc.UpdateMenuItem(ctx, item.FoodID, transport.MenuItemRequest{
		Name:       "Attieke",
		Price:      12,
		CategoryID: category.CategoryID,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(12), updated.Price)

	total, items, err := svc.GetMenuItems(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)

	require.NoError(t, svc.DeleteMenuItem(ctx, item.FoodID))
	assert.ErrorIs(t, svc.DeleteMenuItem(ctx, item.FoodID), ErrNotFound)

	_, err = svc.GetMenuItem(ctx, item.FoodID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogService_Validation(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	_, err := svc.CreateMenuItem(ctx, transport.MenuItemRequest{Name: ""})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateMenuItem(ctx, transport.MenuItemRequest{Name: "x", Price: -1})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateCategory(ctx, transport.CategoryRequest{Name: ""})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCatalogService_Categories(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	for _, name := range []string{"salad", "rolls", "deserts"} {
		_, err := svc.CreateCategory(ctx, transport.CategoryRequest{Name: name})
		require.NoError(t, err)
	}

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "salad", categories[0].Name)
}
