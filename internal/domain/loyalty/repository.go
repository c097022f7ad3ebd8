package loyalty

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// Redemption debits Cost points iff the balance covers it and appends
// History in the same unit.
type Redemption struct {
	UserID   string
	RewardID string
	Cost     int
	History  models.PointsHistory
}

func NewRedemption(userID string, reward *models.Reward, now time.Time) Redemption {
	return Redemption{
		UserID:   userID,
		RewardID: reward.ID,
		Cost:     reward.PointsCost,
		History: models.PointsHistory{
			ID:          models.NewID(),
			UserID:      userID,
			Points:      -reward.PointsCost,
			Type:        models.PointsRewardRedeemed,
			Description: "Redeemed " + reward.Title,
			RewardID:    reward.ID,
			CreatedAt:   now,
		},
	}
}

type Repository interface {
	GetUser(ctx context.Context, id string) (*models.User, error)

	ListPointsHistory(ctx context.Context, userID string) ([]models.PointsHistory, error)

	ListActiveRewards(ctx context.Context) ([]models.Reward, error)
	GetReward(ctx context.Context, id string) (*models.Reward, error)

	// RedeemPoints reports false when the balance is below the cost.
	RedeemPoints(ctx context.Context, r Redemption) (bool, error)
}
