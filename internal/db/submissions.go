package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"suratlocal/internal/models"
	"suratlocal/internal/validation"
)

// CreateSubmission inserts a new pending submission. Area and category
// references are checked by the database; a foreign-key violation surfaces
// as ErrInvalidReference. Multiple submissions for the same business are
// allowed by design.
func (d *DB) CreateSubmission(ctx context.Context, s *models.Submission) error {
	data, err := json.Marshal(s.Data)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO user_submissions (user_id, area_id, category_id, name, description, address, phone, data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, status, created_at
	`
	err = d.Pool.QueryRow(ctx, query,
		s.UserID, s.AreaID, s.CategoryID, s.Name, s.Description, s.Address, s.Phone, data,
	).Scan(&s.ID, &s.Status, &s.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrInvalidReference
		}
		return err
	}
	return nil
}

// GetSubmissionByID retrieves a submission with submitter info.
func (d *DB) GetSubmissionByID(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	query := `
		SELECT s.id, s.user_id, s.area_id, s.category_id, s.name, s.description,
			s.address, s.phone, s.data, s.status, s.reviewed_by, s.reviewed_at, s.created_at,
			COALESCE(p.full_name, ''), COALESCE(p.email, '')
		FROM user_submissions s
		JOIN profiles p ON p.id = s.user_id
		WHERE s.id = $1
	`
	var s models.Submission
	var data []byte
	err := d.Pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.UserID, &s.AreaID, &s.CategoryID, &s.Name, &s.Description,
		&s.Address, &s.Phone, &data, &s.Status, &s.ReviewedBy, &s.ReviewedAt, &s.CreatedAt,
		&s.SubmitterName, &s.SubmitterEmail,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &s.Data); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetPendingSubmissions returns all pending submissions newest-first, joined
// with submitter identity and area/category names for the review queue.
func (d *DB) GetPendingSubmissions(ctx context.Context) ([]models.Submission, error) {
	query := `
		SELECT s.id, s.user_id, s.area_id, s.category_id, s.name, s.description,
			s.address, s.phone, s.data, s.status, s.reviewed_by, s.reviewed_at, s.created_at,
			COALESCE(p.full_name, ''), COALESCE(p.email, ''), a.name, c.name
		FROM user_submissions s
		JOIN profiles p ON p.id = s.user_id
		JOIN areas a ON a.id = s.area_id
		JOIN categories c ON c.id = s.category_id
		WHERE s.status = $1
		ORDER BY s.created_at DESC
	`

	rows, err := d.Pool.Query(ctx, query, models.StatusPending)
	if err != nil {
		return nil, err
	}
	return scanSubmissions(rows)
}

// GetSubmissionsByUser returns a user's own submissions, newest first.
func (d *DB) GetSubmissionsByUser(ctx context.Context, userID uuid.UUID) ([]models.Submission, error) {
	query := `
		SELECT s.id, s.user_id, s.area_id, s.category_id, s.name, s.description,
			s.address, s.phone, s.data, s.status, s.reviewed_by, s.reviewed_at, s.created_at,
			'', '', a.name, c.name
		FROM user_submissions s
		JOIN areas a ON a.id = s.area_id
		JOIN categories c ON c.id = s.category_id
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC
	`

	rows, err := d.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return scanSubmissions(rows)
}

func scanSubmissions(rows pgx.Rows) ([]models.Submission, error) {
	defer rows.Close()

	var submissions []models.Submission
	for rows.Next() {
		var s models.Submission
		var data []byte
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.AreaID, &s.CategoryID, &s.Name, &s.Description,
			&s.Address, &s.Phone, &data, &s.Status, &s.ReviewedBy, &s.ReviewedAt, &s.CreatedAt,
			&s.SubmitterName, &s.SubmitterEmail, &s.AreaName, &s.CategoryName,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &s.Data); err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}

// ApproveSubmission approves a pending submission and materializes it as a
// new listing, inside one transaction. The re-read under FOR UPDATE plus the
// status predicate make the first of two racing approvals win; the loser
// gets ErrSubmissionNotFound and no second listing is ever created.
func (d *DB) ApproveSubmission(ctx context.Context, id uuid.UUID, reviewerID uuid.UUID) (*models.Listing, error) {
	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var s models.Submission
	var data []byte
	err = tx.QueryRow(ctx, `
		SELECT id, user_id, area_id, category_id, name, description, address, phone, data
		FROM user_submissions
		WHERE id = $1 AND status = $2
		FOR UPDATE
	`, id, models.StatusPending).Scan(
		&s.ID, &s.UserID, &s.AreaID, &s.CategoryID, &s.Name, &s.Description, &s.Address, &s.Phone, &data,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &s.Data); err != nil {
		return nil, err
	}

	// Slugs are unique, not content-stable: the millisecond suffix keeps
	// repeated submissions of the same name from colliding.
	slug := fmt.Sprintf("%s-%s", validation.Slugify(s.Name), strconv.FormatInt(time.Now().UnixMilli(), 10))

	listing := &models.Listing{
		Name:          s.Name,
		NameHi:        s.Data.NameHi,
		Slug:          slug,
		Description:   s.Description,
		DescriptionHi: s.Data.DescriptionHi,
		Address:       s.Address,
		AddressHi:     s.Data.AddressHi,
		Phone:         s.Phone,
		Email:         s.Data.Email,
		Website:       s.Data.Website,
		Hours:         s.Data.Hours,
		HoursHi:       s.Data.HoursHi,
		AreaID:        s.AreaID,
		CategoryID:    s.CategoryID,
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO listings (name, name_hi, slug, description, description_hi,
			address, address_hi, phone, email, website, hours, hours_hi, area_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, is_verified, is_featured, website_status, created_at, updated_at
	`, listing.Name, listing.NameHi, listing.Slug, listing.Description, listing.DescriptionHi,
		listing.Address, listing.AddressHi, listing.Phone, listing.Email, listing.Website,
		listing.Hours, listing.HoursHi, listing.AreaID, listing.CategoryID,
	).Scan(&listing.ID, &listing.IsVerified, &listing.IsFeatured, &listing.WebsiteStatus,
		&listing.CreatedAt, &listing.UpdatedAt)
	if err != nil {
		return nil, err
	}

	for i, img := range s.Data.Images {
		if img.URL == "" {
			continue
		}
		if listing.ImageURL == "" && (img.IsPrimary || i == 0) {
			listing.ImageURL = img.URL
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO listing_images (listing_id, image_url, caption, caption_hi, display_order, is_primary)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, listing.ID, img.URL, img.Caption, img.CaptionHi, i, img.IsPrimary)
		if err != nil {
			return nil, err
		}
	}
	if listing.ImageURL != "" {
		if _, err := tx.Exec(ctx, `UPDATE listings SET image_url = $1 WHERE id = $2`, listing.ImageURL, listing.ID); err != nil {
			return nil, err
		}
	}

	result, err := tx.Exec(ctx, `
		UPDATE user_submissions
		SET status = $1, reviewed_by = $2, reviewed_at = NOW()
		WHERE id = $3 AND status = $4
	`, models.StatusApproved, reviewerID, id, models.StatusPending)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, ErrSubmissionNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return listing, nil
}

// RejectSubmission rejects a pending submission. No listing is touched.
func (d *DB) RejectSubmission(ctx context.Context, id uuid.UUID, reviewerID uuid.UUID) error {
	result, err := d.Pool.Exec(ctx, `
		UPDATE user_submissions
		SET status = $1, reviewed_by = $2, reviewed_at = NOW()
		WHERE id = $3 AND status = $4
	`, models.StatusRejected, reviewerID, id, models.StatusPending)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrSubmissionNotFound
	}
	return nil
}

// CountPendingSubmissions returns how many submissions await review.
func (d *DB) CountPendingSubmissions(ctx context.Context) (int64, error) {
	var count int64
	err := d.Pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM user_submissions WHERE status = $1
	`, models.StatusPending).Scan(&count)
	return count, err
}
