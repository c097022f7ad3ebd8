package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/account"
)

type AuthHandler struct {
	register *account.RegisterUser
	login    *account.Authenticate
	secret   string
	clock    timezone.Clock
	log      *zap.Logger
}

func NewAuthHandler(
	register *account.RegisterUser,
	login *account.Authenticate,
	secret string,
	clock timezone.Clock,
	log *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		secret:   secret,
		clock:    clock,
		log:      log,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name, email and password are required.")
		return
	}

	user, err := h.register.Execute(c.Request.Context(), account.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		respond(c, h.log, err)
		return
	}

	h.writeSession(c, http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email and password are required.")
		return
	}

	user, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respond(c, h.log, err)
		return
	}

	h.writeSession(c, http.StatusOK, user)
}

func (h *AuthHandler) writeSession(c *gin.Context, status int, user *models.User) {
	token, err := middleware.IssueToken(h.secret, user, h.clock())
	if err != nil {
		h.log.Error("token signing failed", zap.Error(err))
		httperr.Internal(c, "failed_to_generate_token", "Could not create a session.")
		return
	}

	c.JSON(status, gin.H{
		"user":  user,
		"token": token,
	})
}
