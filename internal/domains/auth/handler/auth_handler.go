package handler

import (
	"errors"
	"net/http"

	"blog-backend/internal/domains/auth/model"
	"blog-backend/internal/domains/auth/service"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service service.ServiceInterface
}

func NewAuthHandler(svc service.ServiceInterface) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Register handles POST /api/auth/register.
// Any failure other than bad input, duplicates included, answers 401.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidInput):
			response.BadRequest(c, err.Error())
		case errors.Is(err, model.ErrEmailAlreadyExists):
			response.Unauthorized(c, "Registration failed")
		default:
			logger.Error("register failed", err)
			response.Unauthorized(c, "Registration failed")
		}
		return
	}
	response.Success(c, http.StatusOK, "User registered successfully", user)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Login successful", result)
}

// Me handles GET /api/users/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	user, err := h.service.GetMe(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "User retrieved successfully", user)
}

func (h *AuthHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		response.BadRequest(c, err.Error())
	case errors.Is(err, model.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, model.ErrTooManyAttempts):
		response.TooManyRequests(c, err.Error())
	case errors.Is(err, model.ErrUserNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("auth request failed", err)
		response.InternalServerError(c)
	}
}
