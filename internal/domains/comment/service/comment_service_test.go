package service

import (
	"context"
	"testing"

	"blog-backend/internal/domains/comment/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) FindAll(ctx context.Context) ([]model.Comment, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]model.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) FindByID(ctx context.Context, id int) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) Create(ctx context.Context, c *model.Comment) (*model.Comment, error) {
	args := m.Called(ctx, c)
	if v := args.Get(0); v != nil {
		return v.(*model.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, c *model.Comment) (*model.Comment, error) {
	args := m.Called(ctx, c)
	if v := args.Get(0); v != nil {
		return v.(*model.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func TestUpdateCommentTargetsPathID(t *testing.T) {
	repo := new(mockRepo)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(c *model.Comment) bool {
		return c.ID == 12 && c.PostID == 3
	})).Return(&model.Comment{ID: 12, PostID: 3, CommenterName: "bob", Body: "edited"}, nil)

	got, err := NewCommentService(repo).UpdateComment(context.Background(), 12, model.CommentRequest{
		PostID:        3,
		CommenterName: "bob",
		Body:          "edited",
	})
	require.NoError(t, err)
	assert.Equal(t, 12, got.ID)
	assert.Equal(t, 3, got.PostID)
	repo.AssertExpectations(t)
}

func TestCreateCommentOnMissingPost(t *testing.T) {
	repo := new(mockRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, model.ErrPostNotFound)

	_, err := NewCommentService(repo).CreateComment(context.Background(), model.CommentRequest{
		PostID:        404,
		CommenterName: "a",
		Body:          "b",
	})
	assert.ErrorIs(t, err, model.ErrPostNotFound)
}

func TestCreateCommentValidation(t *testing.T) {
	repo := new(mockRepo)

	_, err := NewCommentService(repo).CreateComment(context.Background(), model.CommentRequest{PostID: 1})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetAndDeleteComment(t *testing.T) {
	repo := new(mockRepo)
	repo.On("FindAll", mock.Anything).Return([]model.Comment{{ID: 1, PostID: 1, CommenterName: "a", Body: "hi"}}, nil)
	repo.On("FindByID", mock.Anything, 2).Return(nil, model.ErrCommentNotFound)
	repo.On("Delete", mock.Anything, 2).Return(model.ErrCommentNotFound)
	svc := NewCommentService(repo)

	all, err := svc.GetComments(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "hi", all[0].Body)

	_, err = svc.GetComment(context.Background(), 2)
	assert.ErrorIs(t, err, model.ErrCommentNotFound)
	assert.ErrorIs(t, svc.DeleteComment(context.Background(), 2), model.ErrCommentNotFound)
}
