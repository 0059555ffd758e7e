package models

import (
	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPreparing      OrderStatus = "Preparing"
	OrderStatusOutForDelivery OrderStatus = "OutForDelivery"
	OrderStatusDelivered      OrderStatus = "Delivered"
	OrderStatusCancelled      OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPreparing, OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Category struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"       json:"-"`
	CategoryID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"category_id"`
	Name       string    `gorm:"unique;not null"                json:"name"`
	ImageURL   string    `json:"image_url"`
}

type MenuItem struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"       json:"-"`
	FoodID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"food_id"`
	Name           string    `gorm:"unique;not null"                json:"name"`
	Description    string    `json:"description"`
	Price          float64   `gorm:"not null"                       json:"price"`
	ImageURL       string    `json:"image_url"`
	CategoryID     uuid.UUID `gorm:"type:uuid;index"                json:"category_id"`
	Customizations string    `json:"customizations"`
	Nutrition      string    `json:"nutrition"`
}

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"       json:"-"`
	UserID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Name         string    `gorm:"not null"                       json:"name"`
	Email        string    `gorm:"unique;not null"                json:"email"`
	PasswordHash string    `gorm:"column:password;not null"       json:"-"`
	Role         string    `gorm:"not null;default:user"          json:"role"`
	Points       int64     `gorm:"not null;default:0"             json:"points"`
	Preferences  string    `json:"preferences,omitempty"`
}

type CartItem struct {
	CartID   uuid.UUID `gorm:"type:uuid;primaryKey"       json:"cart_id"`
	UserID   uuid.UUID `gorm:"type:uuid;index;not null"   json:"user_id"`
	FoodID   uuid.UUID `gorm:"type:uuid;not null"         json:"food_id"`
	Quantity uint      `gorm:"default:1;check:quantity>0" json:"quantity"`
	Price    float64   `gorm:"not null"                   json:"price"`
}

func (CartItem) TableName() string { return "cart" }

type Order struct {
	ID        uint        `gorm:"primaryKey;autoIncrement"       json:"-"`
	OrderID   uuid.UUID   `gorm:"type:uuid;uniqueIndex;not null" json:"order_id"`
	UserID    uuid.UUID   `gorm:"type:uuid;index;not null"       json:"user_id"`
	Total     float64     `gorm:"not null"                       json:"total"`
	Status    OrderStatus `gorm:"not null"                       json:"status"`
	CreatedAt int64       `gorm:"not null"                       json:"created_at"`
}

type OrderItem struct {
	ID       uint      `gorm:"primaryKey;autoIncrement"   json:"-"`
	OrderID  uuid.UUID `gorm:"type:uuid;index;not null"   json:"order_id"`
	FoodID   uuid.UUID `gorm:"type:uuid;not null"         json:"food_id"`
	Quantity uint      `gorm:"default:1;check:quantity>0" json:"quantity"`
	Price    float64   `gorm:"not null"                   json:"price"`

	Food *MenuItem `gorm:"foreignKey:FoodID;references:FoodID" json:"-"`
}
