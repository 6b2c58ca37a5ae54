package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"suratlocal/internal/config"
	"suratlocal/internal/db"
	"suratlocal/internal/models"
)

// SuggestedEditHandler handles community edit suggestions for listings.
type SuggestedEditHandler struct {
	db  *db.DB
	cfg *config.Config
}

// NewSuggestedEditHandler creates a new suggested edit handler.
func NewSuggestedEditHandler(database *db.DB, cfg *config.Config) *SuggestedEditHandler {
	return &SuggestedEditHandler{db: database, cfg: cfg}
}

// New renders the suggest-an-edit form prefilled with the listing's current
// values.
func (h *SuggestedEditHandler) New(c fiber.Ctx) error {
	listing, err := h.db.GetListingBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, db.ErrListingNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "listing not found")
		}
		return err
	}

	return c.Render("suggest_edit", MergeSite(c, fiber.Map{
		"Listing": listing,
	}, h.cfg))
}

// Create accepts a suggested edit. Only fields that differ from the current
// listing values are kept so the review queue shows actual changes.
func (h *SuggestedEditHandler) Create(c fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	listing, err := h.db.GetListingBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, db.ErrListingNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "listing not found")
		}
		return err
	}

	changes := changedFields(listing, func(field string) string {
		return strings.TrimSpace(c.FormValue(field))
	})

	edit := &models.SuggestedEdit{
		ListingID: listing.ID,
		UserID:    user.ID,
		Changes:   changes,
		Reason:    strings.TrimSpace(c.FormValue("reason")),
	}

	if err := h.db.CreateSuggestedEdit(c.Context(), edit); err != nil {
		switch {
		case errors.Is(err, db.ErrEmptyChanges):
			return htmxError(c, "Nothing to suggest: no field differs from the current listing")
		case errors.Is(err, db.ErrListingNotFound):
			return htmxError(c, "This listing no longer exists")
		default:
			return err
		}
	}

	return c.Render("partials/edit_success", fiber.Map{
		"ListingName": listing.Name,
	}, "")
}

// changedFields compares submitted values against a listing's current values
// and keeps only non-empty fields that actually differ.
func changedFields(listing *models.Listing, get func(field string) string) map[string]string {
	current := map[string]string{
		"name":        listing.Name,
		"address":     listing.Address,
		"phone":       listing.Phone,
		"email":       listing.Email,
		"website":     listing.Website,
		"hours":       listing.Hours,
		"description": listing.Description,
	}

	changes := make(map[string]string)
	for _, field := range models.EditableFieldOrder {
		value := get(field)
		if value != "" && value != current[field] {
			changes[field] = value
		}
	}
	return changes
}
