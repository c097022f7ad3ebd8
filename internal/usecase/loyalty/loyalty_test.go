package loyalty

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/infra/repository"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

func seed(t *testing.T, points int) (*repository.MemoryRepository, *models.User, *models.Reward) {
	t.Helper()
	repo := repository.NewMemoryRepository()
	ctx := context.Background()

	user := &models.User{Name: "Ana", Email: "ana@example.com", Points: points}
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	reward := &models.Reward{Title: "Free cut", PointsCost: 50, DiscountPercent: 100, IsActive: true}
	if err := repo.CreateReward(ctx, reward); err != nil {
		t.Fatalf("seed reward: %v", err)
	}
	return repo, user, reward
}

func TestRedeemReward(t *testing.T) {
	repo, user, reward := seed(t, 70)
	clock := timezone.FixedClock(time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC))
	uc := NewRedeemReward(repo, clock, nil, zap.NewNop())
	ctx := context.Background()

	res, err := uc.Execute(ctx, user.ID, reward.ID)
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}
	if res.Balance != 20 || res.Reward.ID != reward.ID {
		t.Fatalf("unexpected result %+v", res)
	}

	if _, err := uc.Execute(ctx, user.ID, reward.ID); !httperr.IsBusiness(err, "insufficient_points") {
		t.Fatalf("expected insufficient_points, got %v", err)
	}

	balance, err := NewGetBalance(repo).Execute(ctx, user.ID)
	if err != nil || balance != 20 {
		t.Fatalf("balance = %d err=%v", balance, err)
	}

	history, err := NewListPointsHistory(repo).Execute(ctx, user.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || history[0].Points != -50 || history[0].Type != models.PointsRewardRedeemed {
		t.Fatalf("unexpected history %+v", history)
	}
}

func TestRedeemReward_UnknownOrInactive(t *testing.T) {
	repo, user, _ := seed(t, 500)
	ctx := context.Background()

	inactive := &models.Reward{Title: "Old promo", PointsCost: 10, IsActive: false}
	_ = repo.CreateReward(ctx, inactive)

	uc := NewRedeemReward(repo, timezone.FixedClock(time.Now()), nil, zap.NewNop())

	if _, err := uc.Execute(ctx, user.ID, "missing"); !httperr.IsBusiness(err, "reward_not_found") {
		t.Fatalf("expected reward_not_found, got %v", err)
	}
	if _, err := uc.Execute(ctx, user.ID, inactive.ID); !httperr.IsBusiness(err, "reward_not_found") {
		t.Fatalf("expected reward_not_found for inactive reward, got %v", err)
	}

	rewards, err := NewListRewards(repo).Execute(ctx)
	if err != nil {
		t.Fatalf("list rewards: %v", err)
	}
	if len(rewards) != 1 || !rewards[0].IsActive {
		t.Fatalf("expected only the active reward, got %+v", rewards)
	}
}
