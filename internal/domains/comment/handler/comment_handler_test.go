package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blog-backend/internal/domains/comment/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetComments(ctx context.Context) ([]*model.CommentResponse, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*model.CommentResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) GetComment(ctx context.Context, id int) (*model.CommentResponse, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.CommentResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) CreateComment(ctx context.Context, req model.CommentRequest) (*model.CommentResponse, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*model.CommentResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) UpdateComment(ctx context.Context, id int, req model.CommentRequest) (*model.CommentResponse, error) {
	args := m.Called(ctx, id, req)
	if v := args.Get(0); v != nil {
		return v.(*model.CommentResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) DeleteComment(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func setupRouter(svc *mockService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCommentHandler(svc)
	r := gin.New()
	r.GET("/comments", h.GetAll)
	r.GET("/comments/:id", h.GetByID)
	r.POST("/comments", h.Create)
	r.PUT("/comments/:id", h.Update)
	r.DELETE("/comments/:id", h.Delete)
	return r
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCommentHandlerStatuses(t *testing.T) {
	svc := new(mockService)
	svc.On("CreateComment", mock.Anything, model.CommentRequest{PostID: 1, CommenterName: "a", Body: "b"}).
		Return(&model.CommentResponse{ID: 1, PostID: 1, CommenterName: "a", Body: "b"}, nil)
	svc.On("UpdateComment", mock.Anything, 9, mock.Anything).Return(nil, model.ErrCommentNotFound)
	svc.On("GetComment", mock.Anything, 1).Return(&model.CommentResponse{ID: 1}, nil)
	r := setupRouter(svc)

	assert.Equal(t, http.StatusCreated,
		perform(r, http.MethodPost, "/comments", `{"id_post_comment":1,"user_name_comment":"a","comment":"b"}`).Code)
	assert.Equal(t, http.StatusBadRequest, perform(r, http.MethodPost, "/comments", `not json`).Code)
	assert.Equal(t, http.StatusNotFound,
		perform(r, http.MethodPut, "/comments/9", `{"id_post_comment":1,"user_name_comment":"a","comment":"b"}`).Code)
	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/comments/1", "").Code)
	assert.Equal(t, http.StatusBadRequest, perform(r, http.MethodGet, "/comments/0", "").Code)

	svc.AssertNumberOfCalls(t, "CreateComment", 1)
}
