package models

import (
	"time"

	"github.com/google/uuid"
)

// SuggestedEdit represents a user-proposed partial modification to an
// existing listing. Changes holds field name to proposed value, restricted to
// EditableFields; fields absent from the map are left untouched on approval.
type SuggestedEdit struct {
	ID         uuid.UUID         `json:"id"`
	ListingID  uuid.UUID         `json:"listing_id"`
	UserID     uuid.UUID         `json:"user_id"`
	Changes    map[string]string `json:"changes"`
	Reason     string            `json:"reason"`
	Status     string            `json:"status"` // pending, approved, rejected
	ReviewedBy *uuid.UUID        `json:"reviewed_by"`
	ReviewedAt *time.Time        `json:"reviewed_at"`
	CreatedAt  time.Time         `json:"created_at"`

	// Populated via JOIN for display
	ListingName   string `json:"listing_name,omitempty"`
	ListingSlug   string `json:"listing_slug,omitempty"`
	ProposerName  string `json:"proposer_name,omitempty"`
	ProposerEmail string `json:"proposer_email,omitempty"`
}

// IsPending returns true if the edit still awaits a decision.
func (e *SuggestedEdit) IsPending() bool {
	return e.Status == StatusPending
}
