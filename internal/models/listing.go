package models

import (
	"time"

	"github.com/google/uuid"
)

// Language codes used for bilingual fields.
const (
	LangEnglish = "en"
	LangHindi   = "hi"
)

// Website health status constants
const (
	WebsiteUnknown     = "unknown"
	WebsiteReachable   = "reachable"
	WebsiteUnreachable = "unreachable"
)

// Listing represents a directory entry for one business.
type Listing struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	NameHi        string    `json:"name_hi"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	DescriptionHi string    `json:"description_hi"`
	Address       string    `json:"address"`
	AddressHi     string    `json:"address_hi"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Website       string    `json:"website"`
	Hours         string    `json:"hours"`
	HoursHi       string    `json:"hours_hi"`
	ImageURL      string    `json:"image_url"`
	Latitude      *float64  `json:"latitude"`
	Longitude     *float64  `json:"longitude"`
	IsVerified    bool      `json:"is_verified"`
	IsFeatured    bool      `json:"is_featured"`
	AreaID        uuid.UUID `json:"area_id"`
	CategoryID    uuid.UUID `json:"category_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	WebsiteStatus    string     `json:"website_status"`
	WebsiteCheckedAt *time.Time `json:"website_checked_at"`

	// Populated via JOIN for display
	AreaName     string  `json:"area_name,omitempty"`
	AreaNameHi   string  `json:"area_name_hi,omitempty"`
	AreaSlug     string  `json:"area_slug,omitempty"`
	CategoryName string  `json:"category_name,omitempty"`
	CategorySlug string  `json:"category_slug,omitempty"`
	AvgRating    float64 `json:"avg_rating,omitempty"`
	ReviewCount  int64   `json:"review_count,omitempty"`
}

// EditableFieldOrder lists the listing fields a suggested edit may change,
// in the order partial updates are applied. The names double as column names.
var EditableFieldOrder = []string{"name", "address", "phone", "email", "website", "hours", "description"}

// EditableFields is the set form of EditableFieldOrder. Keys outside this
// set are dropped before an edit is persisted.
var EditableFields = func() map[string]bool {
	m := make(map[string]bool, len(EditableFieldOrder))
	for _, f := range EditableFieldOrder {
		m[f] = true
	}
	return m
}()

// LocalizedName returns the listing name in the requested language.
func (l *Listing) LocalizedName(lang string) string {
	if lang == LangHindi && l.NameHi != "" {
		return l.NameHi
	}
	return l.Name
}

// LocalizedAddress returns the address in the requested language.
func (l *Listing) LocalizedAddress(lang string) string {
	if lang == LangHindi && l.AddressHi != "" {
		return l.AddressHi
	}
	return l.Address
}

// LocalizedDescription returns the description in the requested language.
func (l *Listing) LocalizedDescription(lang string) string {
	if lang == LangHindi && l.DescriptionHi != "" {
		return l.DescriptionHi
	}
	return l.Description
}

// LocalizedHours returns the opening hours in the requested language.
func (l *Listing) LocalizedHours(lang string) string {
	if lang == LangHindi && l.HoursHi != "" {
		return l.HoursHi
	}
	return l.Hours
}

// ListingImage represents an image attached to a listing.
type ListingImage struct {
	ID           uuid.UUID `json:"id"`
	ListingID    uuid.UUID `json:"listing_id"`
	ImageURL     string    `json:"image_url"`
	Caption      string    `json:"caption"`
	CaptionHi    string    `json:"caption_hi"`
	DisplayOrder int       `json:"display_order"`
	IsPrimary    bool      `json:"is_primary"`
	CreatedAt    time.Time `json:"created_at"`
}
