package handler

import (
	"errors"
	"net/http"

	"blog-backend/internal/domains/comment/model"
	"blog-backend/internal/domains/comment/service"
	"blog-backend/internal/shared/response"
	"blog-backend/internal/shared/utils"
	"blog-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	service service.ServiceInterface
}

func NewCommentHandler(svc service.ServiceInterface) *CommentHandler {
	return &CommentHandler{service: svc}
}

// GetAll handles GET /api/comments
func (h *CommentHandler) GetAll(c *gin.Context) {
	comments, err := h.service.GetComments(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Comments retrieved successfully", comments)
}

// GetByID handles GET /api/comments/:id
func (h *CommentHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comment, err := h.service.GetComment(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Comment retrieved successfully", comment)
}

// Create handles POST /api/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req model.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	comment, err := h.service.CreateComment(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Comment created successfully", comment)
}

// Update handles PUT /api/comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req model.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	comment, err := h.service.UpdateComment(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Comment updated successfully", comment)
}

// Delete handles DELETE /api/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.DeleteComment(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Comment deleted successfully", nil)
}

func (h *CommentHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidInput),
		errors.Is(err, model.ErrPostNotFound):
		response.BadRequest(c, err.Error())
	case errors.Is(err, model.ErrCommentNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("comment request failed", err)
		response.InternalServerError(c)
	}
}
