package loyalty

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/loyalty"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

// ======================================================
// Balance / history / catalogue
// ======================================================

type GetBalance struct {
	repo domain.Repository
}

func NewGetBalance(repo domain.Repository) *GetBalance {
	return &GetBalance{repo: repo}
}

func (uc *GetBalance) Execute(ctx context.Context, userID string) (int, error) {
	user, err := uc.repo.GetUser(ctx, userID)
	if err != nil {
		return 0, httperr.Operation("get_user", err)
	}
	return user.Points, nil
}

type ListPointsHistory struct {
	repo domain.Repository
}

func NewListPointsHistory(repo domain.Repository) *ListPointsHistory {
	return &ListPointsHistory{repo: repo}
}

func (uc *ListPointsHistory) Execute(ctx context.Context, userID string) ([]models.PointsHistory, error) {
	history, err := uc.repo.ListPointsHistory(ctx, userID)
	if err != nil {
		return nil, httperr.Operation("list_points_history", err)
	}
	return history, nil
}

type ListRewards struct {
	repo domain.Repository
}

func NewListRewards(repo domain.Repository) *ListRewards {
	return &ListRewards{repo: repo}
}

func (uc *ListRewards) Execute(ctx context.Context) ([]models.Reward, error) {
	rewards, err := uc.repo.ListActiveRewards(ctx)
	if err != nil {
		return nil, httperr.Operation("list_rewards", err)
	}
	return rewards, nil
}

// ======================================================
// Redeem
// ======================================================

type RedeemResult struct {
	Reward  models.Reward `json:"reward"`
	Balance int           `json:"balance"`
}

type RedeemReward struct {
	repo  domain.Repository
	clock timezone.Clock
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewRedeemReward(
	repo domain.Repository,
	clock timezone.Clock,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *RedeemReward {
	return &RedeemReward{
		repo:  repo,
		clock: clock,
		audit: audit,
		log:   log,
	}
}

func (uc *RedeemReward) Execute(
	ctx context.Context,
	userID string,
	rewardID string,
) (*RedeemResult, error) {

	reward, err := uc.repo.GetReward(ctx, rewardID)
	if err != nil {
		return nil, httperr.Operation("get_reward", err)
	}
	if !reward.IsActive {
		return nil, httperr.ErrBusiness("reward_not_found")
	}

	ok, err := uc.repo.RedeemPoints(ctx, domain.NewRedemption(userID, reward, uc.clock()))
	if err != nil {
		return nil, httperr.Operation("redeem_points", err)
	}
	if !ok {
		return nil, httperr.ErrBusiness("insufficient_points")
	}

	user, err := uc.repo.GetUser(ctx, userID)
	if err != nil {
		uc.log.Warn("balance reload after redemption failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil, httperr.Operation("get_user", err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   audit.ActionRewardRedeemed,
		Entity:   "reward",
		EntityID: reward.ID,
		Metadata: map[string]int{"points": reward.PointsCost},
	})

	return &RedeemResult{Reward: *reward, Balance: user.Points}, nil
}
