package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/robomate/servicedesk/internal/workshop/service"
)

// UserHandler serves administrator user management.
type UserHandler struct {
	authSvc *service.AuthService
}

func NewUserHandler(authSvc *service.AuthService) *UserHandler {
	return &UserHandler{authSvc: authSvc}
}

// List GET /api/v1/users (admin only)
func (h *UserHandler) List(c *gin.Context) {
	Success(c, h.authSvc.ListUsers(c.Request.Context()))
}

type updatePasswordRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// UpdatePassword PUT /api/v1/users/password
// Non-administrators are a silent no-op.
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	if err := h.authSvc.UpdatePassword(c.Request.Context(), actorFrom(c), req.Email, req.Password); err != nil {
		Internal(c, "failed to update password")
		return
	}
	Success(c, nil)
}
