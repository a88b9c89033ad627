package handler

import (
	"errors"
	"net/http"

	"blog-backend/internal/domains/user/model"
	"blog-backend/internal/domains/user/service"
	"blog-backend/internal/shared/response"
	"blog-backend/internal/shared/utils"
	"blog-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service service.ServiceInterface
}

func NewUserHandler(svc service.ServiceInterface) *UserHandler {
	return &UserHandler{service: svc}
}

// Create handles POST /api/user
func (h *UserHandler) Create(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "User created successfully", user)
}

// GetByEmail handles GET /api/user/:email
func (h *UserHandler) GetByEmail(c *gin.Context) {
	user, err := h.service.GetUserByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "User retrieved successfully", user)
}

// Update handles PUT /api/user/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	req.ID = &id

	user, err := h.service.UpdateUser(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "User updated successfully", user)
}

// DeleteByEmail handles DELETE /api/user/:email
func (h *UserHandler) DeleteByEmail(c *gin.Context) {
	if err := h.service.DeleteUserByEmail(c.Request.Context(), c.Param("email")); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "User deleted successfully", nil)
}

func (h *UserHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		response.BadRequest(c, err.Error())
	case errors.Is(err, model.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrEmailAlreadyExists):
		response.Conflict(c, err.Error())
	default:
		logger.Error("user request failed", err)
		response.InternalServerError(c)
	}
}
