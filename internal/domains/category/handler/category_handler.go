package handler

import (
	"errors"
	"net/http"

	"blog-backend/internal/domains/category/model"
	"blog-backend/internal/domains/category/service"
	"blog-backend/internal/shared/response"
	"blog-backend/internal/shared/utils"
	"blog-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	service service.ServiceInterface
}

func NewCategoryHandler(svc service.ServiceInterface) *CategoryHandler {
	return &CategoryHandler{service: svc}
}

// GetAll handles GET /api/categories
func (h *CategoryHandler) GetAll(c *gin.Context) {
	categories, err := h.service.GetCategories(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Categories retrieved successfully", categories)
}

// GetByID handles GET /api/categories/:id
func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	category, err := h.service.GetCategory(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Category retrieved successfully", category)
}

// Create handles POST /api/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req model.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Category created successfully", category)
}

// Update handles PUT /api/categories/:id. The path id wins over any id in
// the body.
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req model.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	req.ID = &id

	category, err := h.service.UpdateCategory(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Category updated successfully", category)
}

// Delete handles DELETE /api/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.DeleteCategory(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Category deleted successfully", nil)
}

func (h *CategoryHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		response.BadRequest(c, err.Error())
	case errors.Is(err, model.ErrCategoryNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("category request failed", err)
		response.InternalServerError(c)
	}
}
