package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/robomate/servicedesk/internal/workshop/entity"
	"github.com/robomate/servicedesk/internal/workshop/service"
)

// Handlers is the set of HTTP handlers.
type Handlers struct {
	Auth   *AuthHandler
	Record *RecordHandler
	Part   *PartHandler
	User   *UserHandler
}

// NewHandlers creates the handler set over the services.
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Auth:   NewAuthHandler(svc.Auth),
		Record: NewRecordHandler(svc.Record, svc.Reconcile),
		Part:   NewPartHandler(svc.Part),
		User:   NewUserHandler(svc.Auth),
	}
}

// Response is the common JSON envelope.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success writes a 200 envelope.
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created writes a 201 envelope.
func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error writes an error envelope; the HTTP status is the leading three
// digits of the code.
func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest writes a validation error envelope.
func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

// NotFound writes a not-found envelope.
func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

// Internal writes a server error envelope.
func Internal(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// actorFrom rebuilds the acting user from the JWT claims stored on the
// context by the auth middleware.
func actorFrom(c *gin.Context) *entity.User {
	email := c.GetString("user_email")
	if email == "" {
		return nil
	}
	return &entity.User{
		Email:   email,
		IsAdmin: c.GetBool("is_admin"),
	}
}
