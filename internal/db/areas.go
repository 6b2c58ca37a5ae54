package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"suratlocal/internal/models"
)

const areaColumns = `id, name, name_hi, slug, description, description_hi, image_url, created_at, updated_at`

func scanArea(row pgx.Row) (*models.Area, error) {
	var a models.Area
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.NameHi,
		&a.Slug,
		&a.Description,
		&a.DescriptionHi,
		&a.ImageURL,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAreaNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAllAreas returns all areas with their listing counts, ordered by name.
func (d *DB) GetAllAreas(ctx context.Context) ([]models.Area, error) {
	query := `
		SELECT a.id, a.name, a.name_hi, a.slug, a.description, a.description_hi, a.image_url,
			a.created_at, a.updated_at, COUNT(l.id)
		FROM areas a
		LEFT JOIN listings l ON l.area_id = a.id
		GROUP BY a.id
		ORDER BY a.name ASC
	`

	rows, err := d.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var areas []models.Area
	for rows.Next() {
		var a models.Area
		if err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.NameHi,
			&a.Slug,
			&a.Description,
			&a.DescriptionHi,
			&a.ImageURL,
			&a.CreatedAt,
			&a.UpdatedAt,
			&a.ListingCount,
		); err != nil {
			return nil, err
		}
		areas = append(areas, a)
	}
	return areas, rows.Err()
}

// GetAreaBySlug retrieves an area by its slug.
func (d *DB) GetAreaBySlug(ctx context.Context, slug string) (*models.Area, error) {
	query := `SELECT ` + areaColumns + ` FROM areas WHERE slug = $1`
	return scanArea(d.Pool.QueryRow(ctx, query, slug))
}

// GetAreaByID retrieves an area by its UUID.
func (d *DB) GetAreaByID(ctx context.Context, id uuid.UUID) (*models.Area, error) {
	query := `SELECT ` + areaColumns + ` FROM areas WHERE id = $1`
	return scanArea(d.Pool.QueryRow(ctx, query, id))
}

// CreateArea inserts a new area.
func (d *DB) CreateArea(ctx context.Context, a *models.Area) error {
	query := `
		INSERT INTO areas (name, name_hi, slug, description, description_hi, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := d.Pool.QueryRow(ctx, query,
		a.Name, a.NameHi, a.Slug, a.Description, a.DescriptionHi, a.ImageURL,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateSlug
		}
		return err
	}
	return nil
}

// UpdateArea updates an existing area.
func (d *DB) UpdateArea(ctx context.Context, a *models.Area) error {
	result, err := d.Pool.Exec(ctx, `
		UPDATE areas
		SET name = $1, name_hi = $2, slug = $3, description = $4, description_hi = $5,
			image_url = $6, updated_at = NOW()
		WHERE id = $7
	`, a.Name, a.NameHi, a.Slug, a.Description, a.DescriptionHi, a.ImageURL, a.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateSlug
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrAreaNotFound
	}
	return nil
}

// DeleteArea deletes an area. Fails with ErrAreaInUse while listings or
// submissions still reference it.
func (d *DB) DeleteArea(ctx context.Context, id uuid.UUID) error {
	result, err := d.Pool.Exec(ctx, `DELETE FROM areas WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrAreaInUse
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrAreaNotFound
	}
	return nil
}

// CountAreas returns the total number of areas.
func (d *DB) CountAreas(ctx context.Context) (int64, error) {
	var count int64
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM areas`).Scan(&count)
	return count, err
}
