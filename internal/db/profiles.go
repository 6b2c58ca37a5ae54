package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"suratlocal/internal/models"
)

const profileColumns = `id, sub, email, full_name, avatar_url, role, created_at, updated_at`

func scanProfile(row pgx.Row) (*models.Profile, error) {
	var p models.Profile
	err := row.Scan(
		&p.ID,
		&p.Sub,
		&p.Email,
		&p.FullName,
		&p.AvatarURL,
		&p.Role,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpsertProfile creates or updates a profile based on its OIDC subject.
// The role is never touched on update so an admin stays an admin across
// logins.
func (d *DB) UpsertProfile(ctx context.Context, p *models.Profile) error {
	query := `
		INSERT INTO profiles (sub, email, full_name, avatar_url, role)
		VALUES ($1, $2, $3, $4, COALESCE(NULLIF($5, ''), 'user'))
		ON CONFLICT (sub) DO UPDATE SET
			email = EXCLUDED.email,
			full_name = EXCLUDED.full_name,
			avatar_url = EXCLUDED.avatar_url,
			updated_at = NOW()
		RETURNING id, role, created_at, updated_at
	`

	return d.Pool.QueryRow(ctx, query,
		p.Sub,
		p.Email,
		p.FullName,
		p.AvatarURL,
		p.Role,
	).Scan(&p.ID, &p.Role, &p.CreatedAt, &p.UpdatedAt)
}

// GetProfileBySub retrieves a profile by its OIDC subject identifier.
func (d *DB) GetProfileBySub(ctx context.Context, sub string) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE sub = $1`
	return scanProfile(d.Pool.QueryRow(ctx, query, sub))
}

// GetProfileByID retrieves a profile by its UUID.
func (d *DB) GetProfileByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return scanProfile(d.Pool.QueryRow(ctx, query, id))
}

// GetAllProfiles returns all profiles, newest first.
func (d *DB) GetAllProfiles(ctx context.Context) ([]models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at DESC`

	rows, err := d.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(
			&p.ID,
			&p.Sub,
			&p.Email,
			&p.FullName,
			&p.AvatarURL,
			&p.Role,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// UpdateProfileRole updates a profile's role.
func (d *DB) UpdateProfileRole(ctx context.Context, id uuid.UUID, role string) error {
	result, err := d.Pool.Exec(ctx, `
		UPDATE profiles SET role = $1, updated_at = NOW() WHERE id = $2
	`, role, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// UpdateProfileName updates a profile's display name.
func (d *DB) UpdateProfileName(ctx context.Context, id uuid.UUID, fullName string) error {
	result, err := d.Pool.Exec(ctx, `
		UPDATE profiles SET full_name = $1, updated_at = NOW() WHERE id = $2
	`, fullName, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// GetAdminEmails returns the email addresses of all admins, used for
// moderation notifications.
func (d *DB) GetAdminEmails(ctx context.Context) ([]string, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT email FROM profiles WHERE role = $1 AND email <> ''
	`, models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}

// CountProfiles returns the total number of profiles.
func (d *DB) CountProfiles(ctx context.Context) (int64, error) {
	var count int64
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count)
	return count, err
}
