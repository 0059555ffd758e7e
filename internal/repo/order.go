package repo

import (
	"context"
	"errors"

	"github.com/Skotchmaster/food_delivery/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlaceOrder записывает заказ, его позиции, начисление баллов и очистку
// корзины одной транзакцией: либо всё, либо ничего.
func (r *GormRepo) PlaceOrder(ctx context.Context, order *models.Order, items []models.OrderItem, points int64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("user_id = ?", order.UserID).First(&user).Error; err != nil {
			return err
		}

		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for i := range items {
			var food models.MenuItem
			if err := tx.Where("food_id = ?", items[i].FoodID).First(&food).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrUnknownFoodItem
				}
				return err
			}
			items[i].OrderID = order.OrderID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}

		if points > 0 {
			if err := tx.Model(&models.User{}).
				Where("user_id = ?", order.UserID).
				UpdateColumn("points", gorm.Expr("points + ?", points)).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", order.UserID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return nil
	})
}

func (r *GormRepo) GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).Where("order_id = ?", orderID).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	res := r.DB.WithContext(ctx).Model(&models.Order{}).
		Where("order_id = ?", orderID).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetOrder(ctx, orderID)
}

func (r *GormRepo) ListOrders(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.Order, error) {
	var orders []models.Order
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Позиции возвращаются в порядке вставки, то есть в порядке корзины.
func (r *GormRepo) GetOrderItems(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	var items []models.OrderItem
	if err := r.DB.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
