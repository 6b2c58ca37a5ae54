package models

import (
	"time"

	"github.com/google/uuid"
)

// Moderation status constants shared by submissions and suggested edits.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// SubmissionImage is an image proposed alongside a submission.
type SubmissionImage struct {
	URL       string `json:"url"`
	Caption   string `json:"caption,omitempty"`
	CaptionHi string `json:"caption_hi,omitempty"`
	IsPrimary bool   `json:"is_primary,omitempty"`
}

// SubmissionData holds the optional fields of a submission. The submit form
// may post a superset of fields; only these named ones are carried through to
// the listing on approval.
type SubmissionData struct {
	NameHi        string            `json:"name_hi,omitempty"`
	DescriptionHi string            `json:"description_hi,omitempty"`
	AddressHi     string            `json:"address_hi,omitempty"`
	Email         string            `json:"email,omitempty"`
	Website       string            `json:"website,omitempty"`
	Hours         string            `json:"hours,omitempty"`
	HoursHi       string            `json:"hours_hi,omitempty"`
	Images        []SubmissionImage `json:"images,omitempty"`
}

// Submission represents a user-proposed new listing awaiting admin decision.
// Once the status leaves pending it is terminal; the row is never mutated
// again and never deleted by the moderation workflow.
type Submission struct {
	ID          uuid.UUID      `json:"id"`
	UserID      uuid.UUID      `json:"user_id"`
	AreaID      uuid.UUID      `json:"area_id"`
	CategoryID  uuid.UUID      `json:"category_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Address     string         `json:"address"`
	Phone       string         `json:"phone"`
	Data        SubmissionData `json:"data"`
	Status      string         `json:"status"` // pending, approved, rejected
	ReviewedBy  *uuid.UUID     `json:"reviewed_by"`
	ReviewedAt  *time.Time     `json:"reviewed_at"`
	CreatedAt   time.Time      `json:"created_at"`

	// Populated via JOIN for display
	SubmitterName  string `json:"submitter_name,omitempty"`
	SubmitterEmail string `json:"submitter_email,omitempty"`
	AreaName       string `json:"area_name,omitempty"`
	CategoryName   string `json:"category_name,omitempty"`
}

// IsPending returns true if the submission still awaits a decision.
func (s *Submission) IsPending() bool {
	return s.Status == StatusPending
}
