package models

import (
	"time"

	"github.com/google/uuid"
)

// Area represents a neighbourhood of the city that listings belong to.
type Area struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	NameHi        string    `json:"name_hi"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	DescriptionHi string    `json:"description_hi"`
	ImageURL      string    `json:"image_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Populated via JOIN for display
	ListingCount int64 `json:"listing_count,omitempty"`
}

// LocalizedName returns the Hindi name when lang is "hi" and a Hindi
// translation exists, otherwise the English name.
func (a *Area) LocalizedName(lang string) string {
	if lang == LangHindi && a.NameHi != "" {
		return a.NameHi
	}
	return a.Name
}

// LocalizedDescription returns the description in the requested language.
func (a *Area) LocalizedDescription(lang string) string {
	if lang == LangHindi && a.DescriptionHi != "" {
		return a.DescriptionHi
	}
	return a.Description
}
