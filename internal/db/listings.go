package db

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"suratlocal/internal/models"
)

// listingColumns is the standard column list for bare listing queries.
const listingColumns = `id, name, name_hi, slug, description, description_hi, address, address_hi,
	phone, email, website, hours, hours_hi, image_url, latitude, longitude,
	is_verified, is_featured, website_status, website_checked_at,
	area_id, category_id, created_at, updated_at`

// listingSelect joins area/category names and review aggregates for display.
const listingSelect = `
	SELECT l.id, l.name, l.name_hi, l.slug, l.description, l.description_hi,
		l.address, l.address_hi, l.phone, l.email, l.website, l.hours, l.hours_hi,
		l.image_url, l.latitude, l.longitude, l.is_verified, l.is_featured,
		l.website_status, l.website_checked_at,
		l.area_id, l.category_id, l.created_at, l.updated_at,
		a.name, a.name_hi, a.slug, c.name, c.slug,
		COALESCE(AVG(r.rating), 0), COUNT(r.id)
	FROM listings l
	JOIN areas a ON a.id = l.area_id
	JOIN categories c ON c.id = l.category_id
	LEFT JOIN reviews r ON r.listing_id = l.id
`

const listingGroupBy = ` GROUP BY l.id, a.name, a.name_hi, a.slug, c.name, c.slug`

func scanListing(row pgx.Row) (*models.Listing, error) {
	var l models.Listing
	err := row.Scan(
		&l.ID, &l.Name, &l.NameHi, &l.Slug, &l.Description, &l.DescriptionHi,
		&l.Address, &l.AddressHi, &l.Phone, &l.Email, &l.Website, &l.Hours, &l.HoursHi,
		&l.ImageURL, &l.Latitude, &l.Longitude, &l.IsVerified, &l.IsFeatured,
		&l.WebsiteStatus, &l.WebsiteCheckedAt,
		&l.AreaID, &l.CategoryID, &l.CreatedAt, &l.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrListingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func scanListingRows(rows pgx.Rows) ([]models.Listing, error) {
	defer rows.Close()

	var listings []models.Listing
	for rows.Next() {
		var l models.Listing
		if err := rows.Scan(
			&l.ID, &l.Name, &l.NameHi, &l.Slug, &l.Description, &l.DescriptionHi,
			&l.Address, &l.AddressHi, &l.Phone, &l.Email, &l.Website, &l.Hours, &l.HoursHi,
			&l.ImageURL, &l.Latitude, &l.Longitude, &l.IsVerified, &l.IsFeatured,
			&l.WebsiteStatus, &l.WebsiteCheckedAt,
			&l.AreaID, &l.CategoryID, &l.CreatedAt, &l.UpdatedAt,
			&l.AreaName, &l.AreaNameHi, &l.AreaSlug, &l.CategoryName, &l.CategorySlug,
			&l.AvgRating, &l.ReviewCount,
		); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// GetListingByID retrieves a listing by its UUID without joins.
func (d *DB) GetListingByID(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`
	return scanListing(d.Pool.QueryRow(ctx, query, id))
}

// GetListingBySlug retrieves a listing by slug with area/category names and
// review aggregates for the detail page.
func (d *DB) GetListingBySlug(ctx context.Context, slug string) (*models.Listing, error) {
	query := listingSelect + ` WHERE l.slug = $1` + listingGroupBy

	var l models.Listing
	err := d.Pool.QueryRow(ctx, query, slug).Scan(
		&l.ID, &l.Name, &l.NameHi, &l.Slug, &l.Description, &l.DescriptionHi,
		&l.Address, &l.AddressHi, &l.Phone, &l.Email, &l.Website, &l.Hours, &l.HoursHi,
		&l.ImageURL, &l.Latitude, &l.Longitude, &l.IsVerified, &l.IsFeatured,
		&l.WebsiteStatus, &l.WebsiteCheckedAt,
		&l.AreaID, &l.CategoryID, &l.CreatedAt, &l.UpdatedAt,
		&l.AreaName, &l.AreaNameHi, &l.AreaSlug, &l.CategoryName, &l.CategorySlug,
		&l.AvgRating, &l.ReviewCount,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrListingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// GetFeaturedListings returns featured listings for the home page.
func (d *DB) GetFeaturedListings(ctx context.Context, limit int) ([]models.Listing, error) {
	query := listingSelect + ` WHERE l.is_featured` + listingGroupBy + `
		ORDER BY l.created_at DESC LIMIT $1`

	rows, err := d.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return scanListingRows(rows)
}

// SearchListings searches listings by name/description/address, optionally
// filtered by area and category.
func (d *DB) SearchListings(ctx context.Context, search string, areaID, categoryID *uuid.UUID, limit int) ([]models.Listing, error) {
	query := listingSelect + `
		WHERE ($1 = '' OR l.name ILIKE '%' || $1 || '%'
			OR l.name_hi ILIKE '%' || $1 || '%'
			OR l.description ILIKE '%' || $1 || '%'
			OR l.address ILIKE '%' || $1 || '%')
		AND ($2::uuid IS NULL OR l.area_id = $2)
		AND ($3::uuid IS NULL OR l.category_id = $3)` + listingGroupBy + `
		ORDER BY l.is_featured DESC, l.name ASC
		LIMIT $4`

	rows, err := d.Pool.Query(ctx, query, search, areaID, categoryID, limit)
	if err != nil {
		return nil, err
	}
	return scanListingRows(rows)
}

// GetAllListings returns every listing with display metadata, newest first.
func (d *DB) GetAllListings(ctx context.Context) ([]models.Listing, error) {
	query := listingSelect + listingGroupBy + ` ORDER BY l.created_at DESC`

	rows, err := d.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanListingRows(rows)
}

// CreateListing inserts a new listing.
func (d *DB) CreateListing(ctx context.Context, l *models.Listing) error {
	query := `
		INSERT INTO listings (name, name_hi, slug, description, description_hi,
			address, address_hi, phone, email, website, hours, hours_hi, image_url,
			latitude, longitude, is_verified, is_featured, area_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id, website_status, created_at, updated_at
	`
	err := d.Pool.QueryRow(ctx, query,
		l.Name, l.NameHi, l.Slug, l.Description, l.DescriptionHi,
		l.Address, l.AddressHi, l.Phone, l.Email, l.Website, l.Hours, l.HoursHi, l.ImageURL,
		l.Latitude, l.Longitude, l.IsVerified, l.IsFeatured, l.AreaID, l.CategoryID,
	).Scan(&l.ID, &l.WebsiteStatus, &l.CreatedAt, &l.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return ErrDuplicateSlug
			case "23503":
				return ErrInvalidReference
			}
		}
		return err
	}
	return nil
}

// UpdateListing updates every editable column of a listing (admin form).
func (d *DB) UpdateListing(ctx context.Context, l *models.Listing) error {
	result, err := d.Pool.Exec(ctx, `
		UPDATE listings
		SET name = $1, name_hi = $2, slug = $3, description = $4, description_hi = $5,
			address = $6, address_hi = $7, phone = $8, email = $9, website = $10,
			hours = $11, hours_hi = $12, image_url = $13, latitude = $14, longitude = $15,
			is_verified = $16, is_featured = $17, area_id = $18, category_id = $19,
			updated_at = NOW()
		WHERE id = $20
	`, l.Name, l.NameHi, l.Slug, l.Description, l.DescriptionHi,
		l.Address, l.AddressHi, l.Phone, l.Email, l.Website,
		l.Hours, l.HoursHi, l.ImageURL, l.Latitude, l.Longitude,
		l.IsVerified, l.IsFeatured, l.AreaID, l.CategoryID, l.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return ErrDuplicateSlug
			case "23503":
				return ErrInvalidReference
			}
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrListingNotFound
	}
	return nil
}

// DeleteListing deletes a listing. Images, reviews and favorites cascade.
func (d *DB) DeleteListing(ctx context.Context, id uuid.UUID) error {
	result, err := d.Pool.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrListingNotFound
	}
	return nil
}

// CountListings returns the total number of listings.
func (d *DB) CountListings(ctx context.Context) (int64, error) {
	var count int64
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM listings`).Scan(&count)
	return count, err
}

// GetListingImages returns a listing's images in display order.
func (d *DB) GetListingImages(ctx context.Context, listingID uuid.UUID) ([]models.ListingImage, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT id, listing_id, image_url, caption, caption_hi, display_order, is_primary, created_at
		FROM listing_images
		WHERE listing_id = $1
		ORDER BY is_primary DESC, display_order ASC
	`, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []models.ListingImage
	for rows.Next() {
		var img models.ListingImage
		if err := rows.Scan(
			&img.ID, &img.ListingID, &img.ImageURL, &img.Caption, &img.CaptionHi,
			&img.DisplayOrder, &img.IsPrimary, &img.CreatedAt,
		); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// GetListingsNeedingWebsiteCheck returns listings with a website whose last
// check is older than maxAge (or never checked).
func (d *DB) GetListingsNeedingWebsiteCheck(ctx context.Context, maxAge time.Duration, limit int) ([]models.Listing, error) {
	cutoff := time.Now().Add(-maxAge)
	query := `SELECT ` + listingColumns + `
		FROM listings
		WHERE website <> '' AND (website_checked_at IS NULL OR website_checked_at < $1)
		ORDER BY website_checked_at ASC NULLS FIRST
		LIMIT $2`

	rows, err := d.Pool.Query(ctx, query, cutoff, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []models.Listing
	for rows.Next() {
		var l models.Listing
		if err := rows.Scan(
			&l.ID, &l.Name, &l.NameHi, &l.Slug, &l.Description, &l.DescriptionHi,
			&l.Address, &l.AddressHi, &l.Phone, &l.Email, &l.Website, &l.Hours, &l.HoursHi,
			&l.ImageURL, &l.Latitude, &l.Longitude, &l.IsVerified, &l.IsFeatured,
			&l.WebsiteStatus, &l.WebsiteCheckedAt,
			&l.AreaID, &l.CategoryID, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// UpdateListingWebsiteStatus records the result of a website check.
func (d *DB) UpdateListingWebsiteStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := d.Pool.Exec(ctx, `
		UPDATE listings SET website_status = $1, website_checked_at = NOW() WHERE id = $2
	`, status, id)
	return err
}
