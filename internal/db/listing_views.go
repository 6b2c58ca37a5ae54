package db

import (
	"context"

	"suratlocal/internal/models"
)

// IncrementListingView upserts a view counter for a listing slug.
func (d *DB) IncrementListingView(ctx context.Context, slug, outcome string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO listing_views (slug, outcome, count)
		VALUES ($1, $2, 1)
		ON CONFLICT (slug, outcome) DO UPDATE SET count = listing_views.count + 1
	`, slug, outcome)
	return err
}

// GetAllListingViews returns all view counters, used by the metrics collector.
func (d *DB) GetAllListingViews(ctx context.Context) ([]models.ListingView, error) {
	rows, err := d.Pool.Query(ctx, `SELECT slug, outcome, count FROM listing_views`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []models.ListingView
	for rows.Next() {
		var v models.ListingView
		if err := rows.Scan(&v.Slug, &v.Outcome, &v.Count); err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}
