package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/domain/loyalty"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

func (r *GormRepository) ListPointsHistory(
	ctx context.Context,
	userID string,
) ([]models.PointsHistory, error) {

	var out []models.PointsHistory
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormRepository) ListActiveRewards(ctx context.Context) ([]models.Reward, error) {
	var out []models.Reward
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("points_cost ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormRepository) GetReward(ctx context.Context, id string) (*models.Reward, error) {
	var reward models.Reward
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&reward).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("reward_not_found")
		}
		return nil, err
	}
	return &reward, nil
}

func (r *GormRepository) RedeemPoints(ctx context.Context, red loyalty.Redemption) (bool, error) {
	redeemed := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).
			Where("id = ? AND points >= ?", red.UserID, red.Cost).
			UpdateColumn("points", gorm.Expr("points - ?", red.Cost))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		history := red.History
		if err := tx.Create(&history).Error; err != nil {
			return err
		}

		redeemed = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return redeemed, nil
}

var _ loyalty.Repository = (*GormRepository)(nil)
