package repo

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrUnknownFoodItem    = errors.New("unknown food item")
)

type GormRepo struct {
	DB *gorm.DB
}

func NewGormRepo(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}
