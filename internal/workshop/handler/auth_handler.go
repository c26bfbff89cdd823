package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/robomate/servicedesk/internal/workshop/service"
)

// AuthHandler serves login, registration and session endpoints.
type AuthHandler struct {
	authSvc *service.AuthService
}

func NewAuthHandler(authSvc *service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Login POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	user, pair, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			Error(c, 40101, err.Error())
			return
		}
		Internal(c, "login failed")
		return
	}

	Success(c, gin.H{
		"email":    user.Email,
		"is_admin": user.IsAdmin,
		"tokens":   pair,
	})
}

// Register POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	user, pair, err := h.authSvc.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) || errors.Is(err, service.ErrEmailDomain) {
			BadRequest(c, err.Error())
			return
		}
		Internal(c, "registration failed")
		return
	}

	Created(c, gin.H{
		"email":    user.Email,
		"is_admin": user.IsAdmin,
		"tokens":   pair,
	})
}

// Refresh POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	pair, err := h.authSvc.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		Error(c, 40104, "invalid refresh token")
		return
	}
	Success(c, pair)
}

// Me GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authSvc.GetUser(c.Request.Context(), c.GetString("user_email"))
	if err != nil {
		NotFound(c, "user not found")
		return
	}
	Success(c, gin.H{
		"email":      user.Email,
		"is_admin":   user.IsAdmin,
		"technician": user.TechnicianName(),
	})
}
