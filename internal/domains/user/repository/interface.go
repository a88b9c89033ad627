package repository

import (
	"context"

	"blog-backend/internal/domains/user/model"
)

// RepositoryInterface is shared by the user and auth services. Emails are
// expected to be normalized by the caller.
type RepositoryInterface interface {
	// Create returns model.ErrEmailAlreadyExists on a unique violation.
	Create(ctx context.Context, u *model.User) (*model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, id int, changes model.UserChanges) (*model.User, error)
	DeleteByEmail(ctx context.Context, email string) error
}
