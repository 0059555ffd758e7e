package repo

import (
	"context"

	"github.com/Skotchmaster/food_delivery/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RedeemPoints списывает баллы одним условным UPDATE, чтобы конкурентные
// списания и начисления не теряли обновления.
func (r *GormRepo) RedeemPoints(ctx context.Context, userID uuid.UUID, points int64) error {
	res := r.DB.WithContext(ctx).Model(&models.User{}).
		Where("user_id = ? AND points >= ?", userID, points).
		UpdateColumn("points", gorm.Expr("points - ?", points))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var user models.User
		if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error; err != nil {
			return err
		}
		return ErrInsufficientPoints
	}
	return nil
}

func (r *GormRepo) GetPoints(ctx context.Context, userID uuid.UUID) (int64, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error; err != nil {
		return 0, err
	}
	return user.Points, nil
}
