package repository

import (
	"context"
	"fmt"

	"blog-backend/internal/domains/user/model"
	"blog-backend/pkg/database"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, firstname, lastname, email, password`

type postgresUserRepository struct {
	db database.Querier
}

func NewPostgresRepository(db database.Querier) RepositoryInterface {
	return &postgresUserRepository{db: db}
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Firstname, &u.Lastname, &u.Email, &u.PasswordHash); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *postgresUserRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	created, err := scanUser(r.db.QueryRow(ctx, `
		INSERT INTO users (firstname, lastname, email, password)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns,
		u.Firstname, u.Lastname, u.Email, u.PasswordHash,
	))
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, model.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return created, nil
}

func (r *postgresUserRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	return u, nil
}

func (r *postgresUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

func (r *postgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return exists, nil
}

func (r *postgresUserRepository) Update(ctx context.Context, id int, changes model.UserChanges) (*model.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `
		UPDATE users
		SET firstname = COALESCE($2, firstname),
		    lastname  = COALESCE($3, lastname),
		    email     = COALESCE($4, email)
		WHERE id = $1
		RETURNING `+userColumns,
		id, changes.Firstname, changes.Lastname, changes.Email,
	))
	if err != nil {
		switch {
		case database.IsNoRows(err):
			return nil, model.ErrUserNotFound
		case database.IsUniqueViolation(err):
			return nil, model.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	return u, nil
}

// DeleteByEmail cascades to the user's posts and their comments.
func (r *postgresUserRepository) DeleteByEmail(ctx context.Context, email string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE email = $1`, email)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}
