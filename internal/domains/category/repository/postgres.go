package repository

import (
	"context"
	"fmt"

	"blog-backend/internal/domains/category/model"
	"blog-backend/pkg/database"
)

type postgresCategoryRepository struct {
	db database.Querier
}

func NewPostgresRepository(db database.Querier) RepositoryInterface {
	return &postgresCategoryRepository{db: db}
}

func (r *postgresCategoryRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := make([]model.Category, 0)
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	return categories, nil
}

func (r *postgresCategoryRepository) FindByID(ctx context.Context, id int) (*model.Category, error) {
	var c model.Category
	err := r.db.QueryRow(ctx, `SELECT id, name FROM categories WHERE id = $1`, id).Scan(&c.ID, &c.Name)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, model.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category %d: %w", id, err)
	}
	return &c, nil
}

func (r *postgresCategoryRepository) Create(ctx context.Context, name string) (*model.Category, error) {
	var c model.Category
	err := r.db.QueryRow(ctx,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id, name`,
		name,
	).Scan(&c.ID, &c.Name)
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return &c, nil
}

func (r *postgresCategoryRepository) Update(ctx context.Context, id int, name *string) (*model.Category, error) {
	var c model.Category
	err := r.db.QueryRow(ctx, `
		UPDATE categories
		SET name = COALESCE($2, name)
		WHERE id = $1
		RETURNING id, name`,
		id, name,
	).Scan(&c.ID, &c.Name)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, model.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("update category %d: %w", id, err)
	}
	return &c, nil
}

// Delete cascades to the category's posts and their comments.
func (r *postgresCategoryRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCategoryNotFound
	}
	return nil
}
