package service

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/food_delivery/internal/models"
	"github.com/Skotchmaster/food_delivery/internal/repo"
	"github.com/Skotchmaster/food_delivery/internal/transport"
	"github.com/google/uuid"
)

type CatalogService struct {
	Repo *repo.GormRepo
}

func (svc *CatalogService) CreateMenuItem(ctx context.Context, req transport.MenuItemRequest) (*models.MenuItem, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}

	item := &models.MenuItem{
		FoodID:         uuid.New(),
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		ImageURL:       req.ImageURL,
		CategoryID:     req.CategoryID,
		Customizations: req.Customizations,
		Nutrition:      req.Nutrition,
	}
	created, err := svc.Repo.CreateMenuItem(ctx, item)
	if err != nil {
		return nil, storeError(err)
	}
	return created, nil
}

func (svc *CatalogService) GetMenuItems(ctx context.Context, offset, limit int) (int64, []models.MenuItem, error) {
	total, items, err := svc.Repo.GetMenuItems(ctx, offset, limit)
	if err != nil {
		return 0, nil, storeError(err)
	}
	return total, items, nil
}

func (svc *CatalogService) GetMenuItem(ctx context.Context, foodID uuid.UUID) (*models.MenuItem, error) {
	item, err := svc.Repo.GetMenuItem(ctx, foodID)
	if err != nil {
		return nil, storeError(err)
	}
	return item, nil
}

func (svc *CatalogService) UpdateMenuItem(ctx context.Context, foodID uuid.UUID, req transport.MenuItemRequest) (*models.MenuItem, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}

	item, err := svc.Repo.UpdateMenuItem(ctx, foodID, &models.MenuItem{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		ImageURL:       req.ImageURL,
		CategoryID:     req.CategoryID,
		Customizations: req.Customizations,
		Nutrition:      req.Nutrition,
	})
	if err != nil {
		return nil, storeError(err)
	}
	return item, nil
}

func (svc *CatalogService) DeleteMenuItem(ctx context.Context, foodID uuid.UUID) error {
	if err := svc.Repo.DeleteMenuItem(ctx, foodID); err != nil {
		return storeError(err)
	}
	return nil
}

func (svc *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := svc.Repo.ListCategories(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	return categories, nil
}

func (svc *CatalogService) CreateCategory(ctx context.Context, req transport.CategoryRequest) (*models.Category, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}

	category, err := svc.Repo.CreateCategory(ctx, &models.Category{
		CategoryID: uuid.New(),
		Name:       req.Name,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		return nil, storeError(err)
	}
	return category, nil
}
