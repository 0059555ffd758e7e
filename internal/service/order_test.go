package service

import (
	"context"
	"sync"
	"testing"

	"github.com/Skotchmaster/food_delivery/internal/models"
	"github.com/Skotchmaster/food_delivery/internal/transport"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrder_Success(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()

	userID := seedUser(t, r, 5)
	seedCartItem(t, r, userID)
	seedCartItem(t, r, userID)

	basket := []transport.BasketItem{
		{FoodID: seedMenuItem(t, r, 10), Quantity: 1, Price: 10},
		{FoodID: seedMenuItem(t, r, 13.95), Quantity: 2, Price: 13.95},
	}

	orderID, err := svc.PlaceOrder(ctx, userID, 37.9, basket)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, orderID)

	order, err := r.GetOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPreparing, order.Status)
	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, 37.9, order.Total)

	items, err := r.GetOrderItems(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// один балл за каждую целую денежную единицу: 5 + floor(37.9) = 42
	balance, err := r.GetPoints(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), balance)

	cart, err := r.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestPlaceOrder_UnknownAccount(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()

	userID := seedUser(t, r, 0)
	seedCartItem(t, r, userID)

	ghost := uuid.New()
	basket := []transport.BasketItem{{FoodID: seedMenuItem(t, r, 10), Quantity: 1, Price: 10}}

	_, err := svc.PlaceOrder(ctx, ghost, 42, basket)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	var orders int64
	require.NoError(t, r.DB.Model(&models.Order{}).Count(&orders).Error)
	assert.Zero(t, orders)

	var orderItems int64
	require.NoError(t, r.DB.Model(&models.OrderItem{}).Count(&orderItems).Error)
	assert.Zero(t, orderItems)

	cart, err := r.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, cart, 1)
}

func TestPlaceOrder_UnknownFoodItem(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()

	userID := seedUser(t, r, 5)
	seedCartItem(t, r, userID)

	// вторая позиция ссылается на несуществующее блюдо
	basket := []transport.BasketItem{
		{FoodID: seedMenuItem(t, r, 10), Quantity: 1, Price: 10},
		{FoodID: uuid.New(), Quantity: 1, Price: 5},
	}

	_, err := svc.PlaceOrder(ctx, userID, 15, basket)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidReference)

	var orders int64
	require.NoError(t, r.DB.Model(&models.Order{}).Count(&orders).Error)
	assert.Zero(t, orders)

	var orderItems int64
	require.NoError(t, r.DB.Model(&models.OrderItem{}).Count(&orderItems).Error)
	assert.Zero(t, orderItems)

	balance, err := r.GetPoints(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), balance)

	cart, err := r.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, cart, 1)
}

func TestPlaceOrder_EmptyBasket(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	userID := seedUser(t, r, 0)

	svc := &OrderService{Repo: r}
	orderID, err := svc.PlaceOrder(ctx, userID, 10, nil)
	require.NoError(t, err)

	items, err := r.GetOrderItems(ctx, orderID)
	require.NoError(t, err)
	assert.Empty(t, items)

	strict := &OrderService{Repo: r, RequireItems: true}
	_, err = strict.PlaceOrder(ctx, userID, 10, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPlaceOrder_Validation(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()
	userID := seedUser(t, r, 0)

	tests := []struct {
		name   string
		userID uuid.UUID
		total  float64
		basket []transport.BasketItem
	}{
		{name: "nil user", userID: uuid.Nil, total: 10},
		{name: "negative total", userID: userID, total: -1},
		{name: "nil food id", userID: userID, total: 10, basket: []transport.BasketItem{{Quantity: 1, Price: 1}}},
		{name: "zero quantity", userID: userID, total: 10, basket: []transport.BasketItem{{FoodID: uuid.New(), Price: 1}}},
		{name: "negative price", userID: userID, total: 10, basket: []transport.BasketItem{{FoodID: uuid.New(), Quantity: 1, Price: -1}}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.PlaceOrder(ctx, tt.userID, tt.total, tt.basket)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestPlaceOrder_BasketOrderPreserved(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()
	userID := seedUser(t, r, 0)

	basket := make([]transport.BasketItem, 5)
	for i := range basket {
		basket[i] = transport.BasketItem{FoodID: seedMenuItem(t, r, float64(i)), Quantity: uint(i + 1), Price: float64(i)}
	}

	orderID, err := svc.PlaceOrder(ctx, userID, 50, basket)
	require.NoError(t, err)

	items, err := svc.GetOrderItems(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, items, len(basket))

	for i := range basket {
		assert.Equal(t, basket[i].FoodID, items[i].FoodID)
		assert.Equal(t, basket[i].Quantity, items[i].Quantity)
	}
}

func TestPlaceOrder_ConcurrentAccrual(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()
	userID := seedUser(t, r, 0)

	totals := []float64{10, 20}
	foods := []uuid.UUID{seedMenuItem(t, r, 10), seedMenuItem(t, r, 20)}

	var wg sync.WaitGroup
	errs := make([]error, len(totals))
	for i, total := range totals {
		wg.Add(1)
		go func(i int, total float64) {
			defer wg.Done()
			_, errs[i] = svc.PlaceOrder(ctx, userID, total, []transport.BasketItem{
				{FoodID: foods[i], Quantity: 1, Price: total},
			})
		}(i, total)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	balance, err := r.GetPoints(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(30), balance)
}

func TestOrderStatus(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()
	userID := seedUser(t, r, 0)

	orderID, err := svc.PlaceOrder(ctx, userID, 5, nil)
	require.NoError(t, err)

	status, err := svc.GetOrderStatus(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPreparing, status)

	order, err := svc.SetOrderStatus(ctx, orderID, models.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, order.Status)

	// повторное выставление того же статуса ничего не меняет
	order, err = svc.SetOrderStatus(ctx, orderID, models.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, order.Status)

	status, err = svc.GetOrderStatus(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, status)
}

func TestOrderStatus_Errors(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()
	userID := seedUser(t, r, 0)

	_, err := svc.GetOrderStatus(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.SetOrderStatus(ctx, uuid.New(), models.OrderStatusDelivered)
	assert.ErrorIs(t, err, ErrNotFound)

	orderID, err := svc.PlaceOrder(ctx, userID, 5, nil)
	require.NoError(t, err)

	_, err = svc.SetOrderStatus(ctx, orderID, models.OrderStatus("Teleported"))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRedeemPoints(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()
	userID := seedUser(t, r, 30)

	_, err := svc.RedeemPoints(ctx, userID, 100)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	balance, err := r.GetPoints(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(30), balance)

	balance, err = svc.RedeemPoints(ctx, userID, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	_, err = svc.RedeemPoints(ctx, userID, -1)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.RedeemPoints(ctx, uuid.New(), 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListOrders(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()
	userID := seedUser(t, r, 0)

	for i := 0; i < 3; i++ {
		_, err := svc.PlaceOrder(ctx, userID, float64(i), nil)
		require.NoError(t, err)
	}

	orders, err := svc.ListOrders(ctx, userID, 0, 10)
	require.NoError(t, err)
	assert.Len(t, orders, 3)

	orders, err = svc.ListOrders(ctx, uuid.New(), 0, 10)
	require.NoError(t, err)
	assert.Empty(t, orders)
}
