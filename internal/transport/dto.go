package transport

import (
	"github.com/Skotchmaster/food_delivery/internal/models"
	"github.com/google/uuid"
)

type BasketItem struct {
	FoodID   uuid.UUID `json:"food_id"`
	Quantity uint      `json:"quantity"`
	Price    float64   `json:"price"`
}

type PlaceOrderRequest struct {
	UserID     uuid.UUID    `json:"user_id"`
	TotalPrice float64      `json:"total_price"`
	Items      []BasketItem `json:"items"`
}

type PlaceOrderResponse struct {
	OrderID uuid.UUID `json:"order_id"`
}

type OrderStatusResponse struct {
	Status models.OrderStatus `json:"status"`
}

type SetOrderStatusRequest struct {
	Status string `json:"status"`
}

type RedeemPointsRequest struct {
	UserID uuid.UUID `json:"user_id"`
	Points int64     `json:"points"`
}

type RedeemPointsResponse struct {
	Points int64 `json:"points"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User        *models.User `json:"user"`
	AccessToken string       `json:"access_token"`
}

type AddCartItemRequest struct {
	UserID   uuid.UUID `json:"user_id"`
	FoodID   uuid.UUID `json:"food_id"`
	Quantity uint      `json:"quantity"`
	Price    float64   `json:"price"`
}

type UpdateCartItemRequest struct {
	Quantity uint    `json:"quantity"`
	Price    float64 `json:"price"`
}

type MenuItemRequest struct {
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	ImageURL       string    `json:"image_url"`
	CategoryID     uuid.UUID `json:"category_id"`
	Customizations string    `json:"customizations"`
	Nutrition      string    `json:"nutrition"`
}

type CategoryRequest struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}
