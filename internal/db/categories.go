package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"suratlocal/internal/models"
)

const categoryColumns = `id, name, name_hi, slug, icon, description, description_hi, created_at, updated_at`

func scanCategory(row pgx.Row) (*models.Category, error) {
	var c models.Category
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.NameHi,
		&c.Slug,
		&c.Icon,
		&c.Description,
		&c.DescriptionHi,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetAllCategories returns all categories with their listing counts.
func (d *DB) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	query := `
		SELECT c.id, c.name, c.name_hi, c.slug, c.icon, c.description, c.description_hi,
			c.created_at, c.updated_at, COUNT(l.id)
		FROM categories c
		LEFT JOIN listings l ON l.category_id = c.id
		GROUP BY c.id
		ORDER BY c.name ASC
	`

	rows, err := d.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.NameHi,
			&c.Slug,
			&c.Icon,
			&c.Description,
			&c.DescriptionHi,
			&c.CreatedAt,
			&c.UpdatedAt,
			&c.ListingCount,
		); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetCategoryBySlug retrieves a category by its slug.
func (d *DB) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE slug = $1`
	return scanCategory(d.Pool.QueryRow(ctx, query, slug))
}

// GetCategoryByID retrieves a category by its UUID.
func (d *DB) GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	return scanCategory(d.Pool.QueryRow(ctx, query, id))
}

// CreateCategory inserts a new category.
func (d *DB) CreateCategory(ctx context.Context, c *models.Category) error {
	query := `
		INSERT INTO categories (name, name_hi, slug, icon, description, description_hi)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := d.Pool.QueryRow(ctx, query,
		c.Name, c.NameHi, c.Slug, c.Icon, c.Description, c.DescriptionHi,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateSlug
		}
		return err
	}
	return nil
}

// UpdateCategory updates an existing category.
func (d *DB) UpdateCategory(ctx context.Context, c *models.Category) error {
	result, err := d.Pool.Exec(ctx, `
		UPDATE categories
		SET name = $1, name_hi = $2, slug = $3, icon = $4, description = $5,
			description_hi = $6, updated_at = NOW()
		WHERE id = $7
	`, c.Name, c.NameHi, c.Slug, c.Icon, c.Description, c.DescriptionHi, c.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateSlug
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// DeleteCategory deletes a category. Fails with ErrCategoryInUse while
// listings or submissions still reference it.
func (d *DB) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	result, err := d.Pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrCategoryInUse
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// CountCategories returns the total number of categories.
func (d *DB) CountCategories(ctx context.Context) (int64, error) {
	var count int64
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count)
	return count, err
}
