package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"suratlocal/internal/models"
)

// AddFavorite marks a listing as favorited by a user. Adding twice is a no-op.
func (d *DB) AddFavorite(ctx context.Context, userID, listingID uuid.UUID) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO favorites (user_id, listing_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, listing_id) DO NOTHING
	`, userID, listingID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrListingNotFound
		}
		return err
	}
	return nil
}

// RemoveFavorite unmarks a favorited listing. Removing twice is a no-op.
func (d *DB) RemoveFavorite(ctx context.Context, userID, listingID uuid.UUID) error {
	_, err := d.Pool.Exec(ctx, `
		DELETE FROM favorites WHERE user_id = $1 AND listing_id = $2
	`, userID, listingID)
	return err
}

// IsFavorited reports whether a user has favorited a listing.
func (d *DB) IsFavorited(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	var exists bool
	err := d.Pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND listing_id = $2)
	`, userID, listingID).Scan(&exists)
	return exists, err
}

// GetFavoriteListings returns the listings a user has favorited, most
// recently favorited first.
func (d *DB) GetFavoriteListings(ctx context.Context, userID uuid.UUID) ([]models.Listing, error) {
	query := `
		SELECT l.id, l.name, l.name_hi, l.slug, l.description, l.description_hi,
			l.address, l.address_hi, l.phone, l.email, l.website, l.hours, l.hours_hi,
			l.image_url, l.latitude, l.longitude, l.is_verified, l.is_featured,
			l.website_status, l.website_checked_at,
			l.area_id, l.category_id, l.created_at, l.updated_at,
			a.name, a.name_hi, a.slug, c.name, c.slug,
			COALESCE(AVG(r.rating), 0), COUNT(r.id)
		FROM favorites f
		JOIN listings l ON l.id = f.listing_id
		JOIN areas a ON a.id = l.area_id
		JOIN categories c ON c.id = l.category_id
		LEFT JOIN reviews r ON r.listing_id = l.id
		WHERE f.user_id = $1
		GROUP BY l.id, a.name, a.name_hi, a.slug, c.name, c.slug, f.created_at
		ORDER BY f.created_at DESC
	`

	rows, err := d.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return scanListingRows(rows)
}
