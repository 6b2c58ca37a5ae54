package models

import (
	"time"

	"github.com/google/uuid"
)

// Category represents a business category (restaurants, shops, ...).
type Category struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	NameHi        string    `json:"name_hi"`
	Slug          string    `json:"slug"`
	Icon          string    `json:"icon"`
	Description   string    `json:"description"`
	DescriptionHi string    `json:"description_hi"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Populated via JOIN for display
	ListingCount int64 `json:"listing_count,omitempty"`
}

// LocalizedName returns the category name in the requested language.
func (c *Category) LocalizedName(lang string) string {
	if lang == LangHindi && c.NameHi != "" {
		return c.NameHi
	}
	return c.Name
}

// LocalizedDescription returns the description in the requested language.
func (c *Category) LocalizedDescription(lang string) string {
	if lang == LangHindi && c.DescriptionHi != "" {
		return c.DescriptionHi
	}
	return c.Description
}
