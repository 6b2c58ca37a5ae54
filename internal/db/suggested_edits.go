package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"suratlocal/internal/models"
)

// ErrEmptyChanges is returned when a suggested edit contains no editable
// field after filtering.
var ErrEmptyChanges = errors.New("no editable fields in suggested changes")

// CreateSuggestedEdit inserts a new pending edit. Keys outside the editable
// field set are dropped silently before persistence; an edit that is empty
// after filtering is refused. A missing target listing surfaces as
// ErrListingNotFound via the foreign key.
func (d *DB) CreateSuggestedEdit(ctx context.Context, e *models.SuggestedEdit) error {
	filtered := make(map[string]string, len(e.Changes))
	for k, v := range e.Changes {
		if models.EditableFields[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return ErrEmptyChanges
	}
	e.Changes = filtered

	changes, err := json.Marshal(filtered)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO suggested_edits (listing_id, user_id, changes, reason)
		VALUES ($1, $2, $3, $4)
		RETURNING id, status, created_at
	`
	err = d.Pool.QueryRow(ctx, query,
		e.ListingID, e.UserID, changes, e.Reason,
	).Scan(&e.ID, &e.Status, &e.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrListingNotFound
		}
		return err
	}
	return nil
}

// GetSuggestedEditByID retrieves an edit with listing and proposer info.
func (d *DB) GetSuggestedEditByID(ctx context.Context, id uuid.UUID) (*models.SuggestedEdit, error) {
	query := `
		SELECT e.id, e.listing_id, e.user_id, e.changes, e.reason, e.status,
			e.reviewed_by, e.reviewed_at, e.created_at,
			l.name, l.slug, COALESCE(p.full_name, ''), COALESCE(p.email, '')
		FROM suggested_edits e
		JOIN listings l ON l.id = e.listing_id
		JOIN profiles p ON p.id = e.user_id
		WHERE e.id = $1
	`
	var e models.SuggestedEdit
	var changes []byte
	err := d.Pool.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.ListingID, &e.UserID, &changes, &e.Reason, &e.Status,
		&e.ReviewedBy, &e.ReviewedAt, &e.CreatedAt,
		&e.ListingName, &e.ListingSlug, &e.ProposerName, &e.ProposerEmail,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEditNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(changes, &e.Changes); err != nil {
		return nil, err
	}
	return &e, nil
}

// GetPendingSuggestedEdits returns all pending edits newest-first, joined
// with proposer identity and target listing name/slug.
func (d *DB) GetPendingSuggestedEdits(ctx context.Context) ([]models.SuggestedEdit, error) {
	query := `
		SELECT e.id, e.listing_id, e.user_id, e.changes, e.reason, e.status,
			e.reviewed_by, e.reviewed_at, e.created_at,
			l.name, l.slug, COALESCE(p.full_name, ''), COALESCE(p.email, '')
		FROM suggested_edits e
		JOIN listings l ON l.id = e.listing_id
		JOIN profiles p ON p.id = e.user_id
		WHERE e.status = $1
		ORDER BY e.created_at DESC
	`

	rows, err := d.Pool.Query(ctx, query, models.StatusPending)
	if err != nil {
		return nil, err
	}
	return scanSuggestedEdits(rows)
}

// GetSuggestedEditsByUser returns a user's own edits, newest first.
func (d *DB) GetSuggestedEditsByUser(ctx context.Context, userID uuid.UUID) ([]models.SuggestedEdit, error) {
	query := `
		SELECT e.id, e.listing_id, e.user_id, e.changes, e.reason, e.status,
			e.reviewed_by, e.reviewed_at, e.created_at,
			l.name, l.slug, '', ''
		FROM suggested_edits e
		JOIN listings l ON l.id = e.listing_id
		WHERE e.user_id = $1
		ORDER BY e.created_at DESC
	`

	rows, err := d.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return scanSuggestedEdits(rows)
}

func scanSuggestedEdits(rows pgx.Rows) ([]models.SuggestedEdit, error) {
	defer rows.Close()

	var edits []models.SuggestedEdit
	for rows.Next() {
		var e models.SuggestedEdit
		var changes []byte
		if err := rows.Scan(
			&e.ID, &e.ListingID, &e.UserID, &changes, &e.Reason, &e.Status,
			&e.ReviewedBy, &e.ReviewedAt, &e.CreatedAt,
			&e.ListingName, &e.ListingSlug, &e.ProposerName, &e.ProposerEmail,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(changes, &e.Changes); err != nil {
			return nil, err
		}
		edits = append(edits, e)
	}
	return edits, rows.Err()
}

// ApproveSuggestedEdit approves a pending edit and applies its changes as a
// partial update to the target listing, inside one transaction. Fields
// absent from the change map are left untouched. Racing approvals resolve
// the same way as submissions: one winner, ErrEditNotFound for the rest.
func (d *DB) ApproveSuggestedEdit(ctx context.Context, id uuid.UUID, reviewerID uuid.UUID) error {
	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var listingID uuid.UUID
	var raw []byte
	err = tx.QueryRow(ctx, `
		SELECT listing_id, changes FROM suggested_edits
		WHERE id = $1 AND status = $2
		FOR UPDATE
	`, id, models.StatusPending).Scan(&listingID, &raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrEditNotFound
	}
	if err != nil {
		return err
	}

	var changes map[string]string
	if err := json.Unmarshal(raw, &changes); err != nil {
		return err
	}

	sets := make([]string, 0, len(changes)+1)
	args := make([]any, 0, len(changes)+1)
	for _, field := range models.EditableFieldOrder {
		value, ok := changes[field]
		if !ok {
			continue
		}
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", field, len(args)))
	}
	if len(sets) > 0 {
		sets = append(sets, "updated_at = NOW()")
		args = append(args, listingID)
		query := "UPDATE listings SET " + strings.Join(sets, ", ") +
			fmt.Sprintf(" WHERE id = $%d", len(args))
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return err
		}
	}

	result, err := tx.Exec(ctx, `
		UPDATE suggested_edits
		SET status = $1, reviewed_by = $2, reviewed_at = NOW()
		WHERE id = $3 AND status = $4
	`, models.StatusApproved, reviewerID, id, models.StatusPending)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrEditNotFound
	}

	return tx.Commit(ctx)
}

// RejectSuggestedEdit rejects a pending edit. The listing is not touched.
func (d *DB) RejectSuggestedEdit(ctx context.Context, id uuid.UUID, reviewerID uuid.UUID) error {
	result, err := d.Pool.Exec(ctx, `
		UPDATE suggested_edits
		SET status = $1, reviewed_by = $2, reviewed_at = NOW()
		WHERE id = $3 AND status = $4
	`, models.StatusRejected, reviewerID, id, models.StatusPending)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrEditNotFound
	}
	return nil
}

// CountPendingSuggestedEdits returns how many edits await review.
func (d *DB) CountPendingSuggestedEdits(ctx context.Context) (int64, error) {
	var count int64
	err := d.Pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM suggested_edits WHERE status = $1
	`, models.StatusPending).Scan(&count)
	return count, err
}
