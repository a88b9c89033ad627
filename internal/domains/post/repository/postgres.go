package repository

import (
	"context"
	"fmt"

	"blog-backend/internal/domains/post/model"
	"blog-backend/pkg/database"

	"github.com/jackc/pgx/v5"
)

const postColumns = `id, title, slug, img, body, category_id, user_id, user_name`

type postgresPostRepository struct {
	db database.Querier
}

func NewPostgresRepository(db database.Querier) RepositoryInterface {
	return &postgresPostRepository{db: db}
}

func scanPost(row pgx.Row) (*model.Post, error) {
	var p model.Post
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Image, &p.Body, &p.CategoryID, &p.AuthorID, &p.AuthorName)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresPostRepository) FindAll(ctx context.Context) ([]model.Post, error) {
	rows, err := r.db.Query(ctx, `SELECT `+postColumns+` FROM posts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	posts := make([]model.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}

	return posts, nil
}

func (r *postgresPostRepository) FindByID(ctx context.Context, id int) (*model.Post, error) {
	p, err := scanPost(r.db.QueryRow(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post %d: %w", id, err)
	}
	return p, nil
}

func (r *postgresPostRepository) FindWithComments(ctx context.Context, id int) ([]model.PostComment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.title, c.id, c.id_post_comment, c.user_name_comment, c.comment
		FROM posts p
		LEFT JOIN comments c ON c.id_post_comment = p.id
		WHERE p.id = $1
		ORDER BY c.id`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("query post %d relation: %w", id, err)
	}
	defer rows.Close()

	var (
		found    bool
		relation = make([]model.PostComment, 0)
	)
	for rows.Next() {
		var (
			pc            model.PostComment
			commentID     *int
			commentPostID *int
			commenter     *string
			comment       *string
		)
		if err := rows.Scan(&pc.PostID, &pc.Title, &commentID, &commentPostID, &commenter, &comment); err != nil {
			return nil, fmt.Errorf("scan post relation: %w", err)
		}
		found = true

		// LEFT JOIN row for a post with no comments
		if commentID == nil {
			continue
		}
		pc.CommentID = *commentID
		pc.CommentPostID = *commentPostID
		pc.CommenterName = *commenter
		pc.Comment = *comment
		relation = append(relation, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate post relation: %w", err)
	}

	if !found {
		return nil, model.ErrPostNotFound
	}
	return relation, nil
}

func (r *postgresPostRepository) Create(ctx context.Context, p *model.Post) (*model.Post, error) {
	created, err := scanPost(r.db.QueryRow(ctx, `
		INSERT INTO posts (title, slug, img, body, category_id, user_id, user_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+postColumns,
		p.Title, p.Slug, p.Image, p.Body, p.CategoryID, p.AuthorID, p.AuthorName,
	))
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, model.ErrInvalidReference
		}
		return nil, fmt.Errorf("insert post: %w", err)
	}
	return created, nil
}

func (r *postgresPostRepository) Update(ctx context.Context, p *model.Post) (*model.Post, error) {
	updated, err := scanPost(r.db.QueryRow(ctx, `
		UPDATE posts
		SET title = $2, slug = $3, img = $4, body = $5, category_id = $6, user_id = $7, user_name = $8
		WHERE id = $1
		RETURNING `+postColumns,
		p.ID, p.Title, p.Slug, p.Image, p.Body, p.CategoryID, p.AuthorID, p.AuthorName,
	))
	if err != nil {
		switch {
		case database.IsNoRows(err):
			return nil, model.ErrPostNotFound
		case database.IsForeignKeyViolation(err):
			return nil, model.ErrInvalidReference
		}
		return nil, fmt.Errorf("update post %d: %w", p.ID, err)
	}
	return updated, nil
}

// Delete cascades to the post's comments.
func (r *postgresPostRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}
	return nil
}
