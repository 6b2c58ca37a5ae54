package db

import (
	"context"

	"suratlocal/internal/config"
)

// SeedFromConfig inserts areas and categories declared in the YAML config.
// Existing rows are left untouched so the config can be re-applied safely on
// every startup.
func (d *DB) SeedFromConfig(ctx context.Context, cfg *config.YAMLConfig) error {
	if cfg == nil {
		return nil
	}

	for _, a := range cfg.Areas {
		_, err := d.Pool.Exec(ctx, `
			INSERT INTO areas (name, name_hi, slug, description, description_hi)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (slug) DO NOTHING
		`, a.Name, a.NameHi, a.Slug, a.Description, a.DescriptionHi)
		if err != nil {
			return err
		}
	}

	for _, c := range cfg.Categories {
		_, err := d.Pool.Exec(ctx, `
			INSERT INTO categories (name, name_hi, slug, icon)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (slug) DO NOTHING
		`, c.Name, c.NameHi, c.Slug, c.Icon)
		if err != nil {
			return err
		}
	}

	return nil
}
