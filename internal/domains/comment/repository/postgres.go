package repository

import (
	"context"
	"fmt"

	"blog-backend/internal/domains/comment/model"
	"blog-backend/pkg/database"

	"github.com/jackc/pgx/v5"
)

type postgresCommentRepository struct {
	db database.Querier
}

func NewPostgresRepository(db database.Querier) RepositoryInterface {
	return &postgresCommentRepository{db: db}
}

func scanComment(row pgx.Row) (*model.Comment, error) {
	var c model.Comment
	if err := row.Scan(&c.ID, &c.PostID, &c.CommenterName, &c.Body); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresCommentRepository) FindAll(ctx context.Context) ([]model.Comment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, id_post_comment, user_name_comment, comment
		FROM comments
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	comments := make([]model.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}

	return comments, nil
}

func (r *postgresCommentRepository) FindByID(ctx context.Context, id int) (*model.Comment, error) {
	c, err := scanComment(r.db.QueryRow(ctx, `
		SELECT id, id_post_comment, user_name_comment, comment
		FROM comments
		WHERE id = $1`, id))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, model.ErrCommentNotFound
		}
		return nil, fmt.Errorf("find comment %d: %w", id, err)
	}
	return c, nil
}

func (r *postgresCommentRepository) Create(ctx context.Context, c *model.Comment) (*model.Comment, error) {
	created, err := scanComment(r.db.QueryRow(ctx, `
		INSERT INTO comments (id_post_comment, user_name_comment, comment)
		VALUES ($1, $2, $3)
		RETURNING id, id_post_comment, user_name_comment, comment`,
		c.PostID, c.CommenterName, c.Body,
	))
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	return created, nil
}

func (r *postgresCommentRepository) Update(ctx context.Context, c *model.Comment) (*model.Comment, error) {
	updated, err := scanComment(r.db.QueryRow(ctx, `
		UPDATE comments
		SET id_post_comment = $2, user_name_comment = $3, comment = $4
		WHERE id = $1
		RETURNING id, id_post_comment, user_name_comment, comment`,
		c.ID, c.PostID, c.CommenterName, c.Body,
	))
	if err != nil {
		switch {
		case database.IsNoRows(err):
			return nil, model.ErrCommentNotFound
		case database.IsForeignKeyViolation(err):
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("update comment %d: %w", c.ID, err)
	}
	return updated, nil
}

func (r *postgresCommentRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}
	return nil
}
