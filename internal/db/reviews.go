package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"suratlocal/internal/models"
)

// CreateReview inserts a new review. Each user may review a listing once.
func (d *DB) CreateReview(ctx context.Context, r *models.Review) error {
	query := `
		INSERT INTO reviews (listing_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := d.Pool.QueryRow(ctx, query,
		r.ListingID, r.UserID, r.Rating, r.Comment,
	).Scan(&r.ID, &r.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return ErrDuplicateReview
			case "23503":
				return ErrListingNotFound
			}
		}
		return err
	}
	return nil
}

// GetReviewsByListing returns a listing's reviews with author info, newest first.
func (d *DB) GetReviewsByListing(ctx context.Context, listingID uuid.UUID) ([]models.Review, error) {
	query := `
		SELECT r.id, r.listing_id, r.user_id, r.rating, r.comment, r.created_at,
			COALESCE(p.full_name, ''), COALESCE(p.avatar_url, '')
		FROM reviews r
		JOIN profiles p ON p.id = r.user_id
		WHERE r.listing_id = $1
		ORDER BY r.created_at DESC
	`

	rows, err := d.Pool.Query(ctx, query, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var r models.Review
		if err := rows.Scan(
			&r.ID, &r.ListingID, &r.UserID, &r.Rating, &r.Comment, &r.CreatedAt,
			&r.AuthorName, &r.AuthorAvatar,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}

// GetReviewsByUser returns a user's reviews with listing info, newest first.
func (d *DB) GetReviewsByUser(ctx context.Context, userID uuid.UUID) ([]models.Review, error) {
	query := `
		SELECT r.id, r.listing_id, r.user_id, r.rating, r.comment, r.created_at,
			l.name, l.slug
		FROM reviews r
		JOIN listings l ON l.id = r.listing_id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC
	`

	rows, err := d.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var r models.Review
		if err := rows.Scan(
			&r.ID, &r.ListingID, &r.UserID, &r.Rating, &r.Comment, &r.CreatedAt,
			&r.ListingName, &r.ListingSlug,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}

// DeleteReview removes a review owned by the given user.
func (d *DB) DeleteReview(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result, err := d.Pool.Exec(ctx, `
		DELETE FROM reviews WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrReviewNotFound
	}
	return nil
}
