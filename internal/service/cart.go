package service

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/food_delivery/internal/models"
	"github.com/Skotchmaster/food_delivery/internal/repo"
	"github.com/google/uuid"
)

type CartService struct {
	Repo *repo.GormRepo
}

func (svc *CartService) GetCart(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	items, err := svc.Repo.GetCart(ctx, userID)
	if err != nil {
		return nil, storeError(err)
	}
	return items, nil
}

func (svc *CartService) AddToCart(ctx context.Context, userID, foodID uuid.UUID, quantity uint, price float64) (*models.CartItem, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user_id required", ErrValidation)
	}
	if foodID == uuid.Nil {
		return nil, fmt.Errorf("%w: food_id required", ErrValidation)
	}
	if quantity == 0 {
		return nil, fmt.Errorf("%w: quantity must be > 0", ErrValidation)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}

	item := &models.CartItem{
		CartID:   uuid.New(),
		UserID:   userID,
		FoodID:   foodID,
		Quantity: quantity,
		Price:    price,
	}
	if err := svc.Repo.AddToCart(ctx, item); err != nil {
		return nil, storeError(err)
	}
	return item, nil
}

func (svc *CartService) UpdateCartItem(ctx context.Context, cartID uuid.UUID, quantity uint, price float64) (*models.CartItem, error) {
	if quantity == 0 {
		return nil, fmt.Errorf("%w: quantity must be > 0", ErrValidation)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}

	item, err := svc.Repo.UpdateCartItem(ctx, cartID, quantity, price)
	if err != nil {
		return nil, storeError(err)
	}
	return item, nil
}

func (svc *CartService) DeleteCartItem(ctx context.Context, cartID uuid.UUID) error {
	if err := svc.Repo.DeleteCartItem(ctx, cartID); err != nil {
		return storeError(err)
	}
	return nil
}
