package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"suratlocal/internal/config"
	"suratlocal/internal/db"
)

// FavoriteHandler handles saving and unsaving listings.
type FavoriteHandler struct {
	db  *db.DB
	cfg *config.Config
}

// NewFavoriteHandler creates a new favorite handler.
func NewFavoriteHandler(database *db.DB, cfg *config.Config) *FavoriteHandler {
	return &FavoriteHandler{db: database, cfg: cfg}
}

// Toggle flips the favorite state of a listing for the current user and
// returns the refreshed button partial.
func (h *FavoriteHandler) Toggle(c fiber.Ctx) error {
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

	favorited, err := h.db.IsFavorited(c.Context(), user.ID, listing.ID)
	if err != nil {
		return err
	}

	if favorited {
		err = h.db.RemoveFavorite(c.Context(), user.ID, listing.ID)
	} else {
		err = h.db.AddFavorite(c.Context(), user.ID, listing.ID)
	}
	if err != nil {
		if errors.Is(err, db.ErrListingNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "listing not found")
		}
		return err
	}

	lang := currentLang(c)
	return c.Render("partials/favorite_button", fiber.Map{
		"Listing":     listing,
		"IsFavorited": !favorited,
		"Lang":        lang,
	}, "")
}
