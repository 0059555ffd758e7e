package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/Skotchmaster/food_delivery/internal/models"
	"github.com/Skotchmaster/food_delivery/internal/repo"
	"github.com/Skotchmaster/food_delivery/internal/transport"
	"github.com/google/uuid"
)

type OrderService struct {
	Repo *repo.GormRepo

	// RequireItems запрещает заказ с пустой корзиной.
	RequireItems bool
}

// PlaceOrder оформляет заказ: шапка, позиции в порядке корзины, начисление
// одного балла за каждую целую денежную единицу и очистка корзины —
// всё в одной транзакции.
func (svc *OrderService) PlaceOrder(ctx context.Context, userID uuid.UUID, totalPrice float64, basket []transport.BasketItem) (uuid.UUID, error) {
	if userID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: user_id required", ErrValidation)
	}
	if totalPrice < 0 {
		return uuid.Nil, fmt.Errorf("%w: total_price must be >= 0", ErrValidation)
	}
	if svc.RequireItems && len(basket) == 0 {
		return uuid.Nil, fmt.Errorf("%w: items required", ErrValidation)
	}

	items := make([]models.OrderItem, 0, len(basket))
	for i := range basket {
		if basket[i].FoodID == uuid.Nil {
			return uuid.Nil, fmt.Errorf("%w: food_id required", ErrValidation)
		}
		if basket[i].Quantity == 0 {
			return uuid.Nil, fmt.Errorf("%w: quantity must be > 0", ErrValidation)
		}
		if basket[i].Price < 0 {
			return uuid.Nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
		}

		items = append(items, models.OrderItem{
			FoodID:   basket[i].FoodID,
			Quantity: basket[i].Quantity,
			Price:    basket[i].Price,
		})
	}

	order := &models.Order{
		OrderID:   uuid.New(),
		UserID:    userID,
		Total:     totalPrice,
		Status:    models.OrderStatusPreparing,
		CreatedAt: time.Now().Unix(),
	}

	points := int64(math.Floor(totalPrice))

	if err := svc.Repo.PlaceOrder(ctx, order, items, points); err != nil {
		return uuid.Nil, storeError(err)
	}
	return order.OrderID, nil
}

func (svc *OrderService) GetOrderStatus(ctx context.Context, orderID uuid.UUID) (models.OrderStatus, error) {
	order, err := svc.Repo.GetOrder(ctx, orderID)
	if err != nil {
		return "", storeError(err)
	}
	return order.Status, nil
}

func (svc *OrderService) SetOrderStatus(ctx context.Context, orderID uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	order, err := svc.Repo.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		return nil, storeError(err)
	}
	return order, nil
}

// RedeemPoints списывает баллы отдельной атомарной операцией,
// не разделяющей транзакцию с PlaceOrder.
func (svc *OrderService) RedeemPoints(ctx context.Context, userID uuid.UUID, points int64) (int64, error) {
	if points < 0 {
		return 0, fmt.Errorf("%w: points must be >= 0", ErrValidation)
	}

	if err := svc.Repo.RedeemPoints(ctx, userID, points); err != nil {
		return 0, storeError(err)
	}

	balance, err := svc.Repo.GetPoints(ctx, userID)
	if err != nil {
		return 0, storeError(err)
	}
	return balance, nil
}

func (svc *OrderService) ListOrders(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.Order, error) {
	orders, err := svc.Repo.ListOrders(ctx, userID, offset, limit)
	if err != nil {
		return nil, storeError(err)
	}
	return orders, nil
}

func (svc *OrderService) GetOrderItems(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	if _, err := svc.Repo.GetOrder(ctx, orderID); err != nil {
		return nil, storeError(err)
	}

	items, err := svc.Repo.GetOrderItems(ctx, orderID)
	if err != nil {
		return nil, storeError(err)
	}
	return items, nil
}
