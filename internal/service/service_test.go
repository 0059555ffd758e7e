package service

import (
	"testing"

	"github.com/Skotchmaster/food_delivery/internal/models"
	"github.com/Skotchmaster/food_delivery/internal/repo"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Category{},
		&models.MenuItem{},
		&models.User{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	// один сокет на весь пул: все горутины делят одну базу :memory:
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	return db
}

func newTestRepo(t *testing.T) *repo.GormRepo {
	return repo.NewGormRepo(newTestDB(t))
}

func seedUser(t *testing.T, r *repo.GormRepo, points int64) uuid.UUID {
	t.Helper()

	user := models.User{
		UserID:       uuid.New(),
		Name:         "John Doe",
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "x",
		Role:         "user",
		Points:       points,
	}
	require.NoError(t, r.DB.Create(&user).Error)
	return user.UserID
}

func seedMenuItem(t *testing.T, r *repo.GormRepo, price float64) uuid.UUID {
	t.Helper()

	item := models.MenuItem{
		FoodID: uuid.New(),
		Name:   "dish-" + uuid.NewString(),
		Price:  price,
	}
	require.NoError(t, r.DB.Create(&item).Error)
	return item.FoodID
}

func seedCartItem(t *testing.T, r *repo.GormRepo, userID uuid.UUID) models.CartItem {
	t.Helper()

	item := models.CartItem{
		CartID:   uuid.New(),
		UserID:   userID,
		FoodID:   uuid.New(),
		Quantity: 2,
		Price:    10,
	}
	require.NoError(t, r.DB.Create(&item).Error)
	return item
}
