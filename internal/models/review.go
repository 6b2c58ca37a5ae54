package models

import (
	"time"

	"github.com/google/uuid"
)

// Review represents a user rating and comment for a listing.
type Review struct {
	ID        uuid.UUID `json:"id"`
	ListingID uuid.UUID `json:"listing_id"`
	UserID    uuid.UUID `json:"user_id"`
	Rating    int       `json:"rating"` // 1-5
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`

	// Populated via JOIN for display
	AuthorName   string `json:"author_name,omitempty"`
	AuthorAvatar string `json:"author_avatar,omitempty"`
	ListingName  string `json:"listing_name,omitempty"`
	ListingSlug  string `json:"listing_slug,omitempty"`
}

// Favorite marks a listing as saved by a user.
type Favorite struct {
	UserID    uuid.UUID `json:"user_id"`
	ListingID uuid.UUID `json:"listing_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ListingView is an aggregated page-view counter row, exported to Prometheus.
type ListingView struct {
	Slug    string `json:"slug"`
	Outcome string `json:"outcome"` // found, not_found
	Count   int64  `json:"count"`
}
