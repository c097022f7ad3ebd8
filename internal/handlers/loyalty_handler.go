package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/loyalty"
)

type LoyaltyHandler struct {
	balance *loyalty.GetBalance
	history *loyalty.ListPointsHistory
	rewards *loyalty.ListRewards
	redeem  *loyalty.RedeemReward
	log     *zap.Logger
}

func NewLoyaltyHandler(
	balance *loyalty.GetBalance,
	history *loyalty.ListPointsHistory,
	rewards *loyalty.ListRewards,
	redeem *loyalty.RedeemReward,
	log *zap.Logger,
) *LoyaltyHandler {
	return &LoyaltyHandler{
		balance: balance,
		history: history,
		rewards: rewards,
		redeem:  redeem,
		log:     log,
	}
}

func (h *LoyaltyHandler) Balance(c *gin.Context) {
	points, err := h.balance.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"points": points})
}

func (h *LoyaltyHandler) History(c *gin.Context) {
	items, err := h.history.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respond(c, h.log, err)
		return
	}
	httpresp.List(c, items)
}

func (h *LoyaltyHandler) Rewards(c *gin.Context) {
	items, err := h.rewards.Execute(c.Request.Context())
	if err != nil {
		respond(c, h.log, err)
		return
	}
	httpresp.List(c, items)
}

func (h *LoyaltyHandler) Redeem(c *gin.Context) {
	res, err := h.redeem.Execute(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
