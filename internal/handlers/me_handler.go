package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/account"
)

type MeHandler struct {
	profile *account.GetProfile
	log     *zap.Logger
}

func NewMeHandler(profile *account.GetProfile, log *zap.Logger) *MeHandler {
	return &MeHandler{profile: profile, log: log}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	user, err := h.profile.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": user,
	})
}
