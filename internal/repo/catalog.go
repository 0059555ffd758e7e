package repo

import (
	"context"

	"github.com/Skotchmaster/food_delivery/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (r *GormRepo) CreateMenuItem(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	if err := r.DB.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *GormRepo) GetMenuItems(ctx context.Context, offset, limit int) (int64, []models.MenuItem, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.MenuItem{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.MenuItem
	if err := r.DB.WithContext(ctx).Model(&models.MenuItem{}).
		Order("id ASC").Offset(offset).Limit(limit).
		Find(&items).Error; err != nil {
		return 0, nil, err
	}

	return total, items, nil
}

func (r *GormRepo) GetMenuItem(ctx context.Context, foodID uuid.UUID) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.DB.WithContext(ctx).Where("food_id = ?", foodID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) UpdateMenuItem(ctx context.Context, foodID uuid.UUID, item *models.MenuItem) (*models.MenuItem, error) {
	var existing models.MenuItem
	if err := r.DB.WithContext(ctx).Where("food_id = ?", foodID).First(&existing).Error; err != nil {
		return nil, err
	}

	existing.Name = item.Name
	existing.Description = item.Description
	existing.Price = item.Price
	existing.ImageURL = item.ImageURL
	existing.CategoryID = item.CategoryID
	existing.Customizations = item.Customizations
	existing.Nutrition = item.Nutrition

	if err := r.DB.WithContext(ctx).Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

func (r *GormRepo) DeleteMenuItem(ctx context.Context, foodID uuid.UUID) error {
	res := r.DB.WithContext(ctx).Where("food_id = ?", foodID).Delete(&models.MenuItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormRepo) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	if err := r.DB.WithContext(ctx).Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}
