package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"suratlocal/internal/config"
	"suratlocal/internal/db"
	"suratlocal/internal/models"
	"suratlocal/internal/validation"
)

// ReviewHandler handles listing reviews.
type ReviewHandler struct {
	db  *db.DB
	cfg *config.Config
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(database *db.DB, cfg *config.Config) *ReviewHandler {
	return &ReviewHandler{db: database, cfg: cfg}
}

// Create posts a review on a listing.
func (h *ReviewHandler) Create(c fiber.Ctx) error {
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

	rating, err := strconv.Atoi(c.FormValue("rating"))
	if err != nil || !validation.ValidateRating(rating) {
		return htmxError(c, "Rating must be between 1 and 5")
	}

	review := &models.Review{
		ListingID: listing.ID,
		UserID:    user.ID,
		Rating:    rating,
		Comment:   strings.TrimSpace(c.FormValue("comment")),
	}

	if err := h.db.CreateReview(c.Context(), review); err != nil {
		switch {
		case errors.Is(err, db.ErrDuplicateReview):
			return htmxError(c, "You have already reviewed this listing")
		case errors.Is(err, db.ErrListingNotFound):
			return htmxError(c, "This listing no longer exists")
		default:
			return err
		}
	}

	review.AuthorName = user.DisplayName()
	review.AuthorAvatar = user.AvatarURL

	return c.Render("partials/review", fiber.Map{
		"Review": review,
	}, "")
}

// Delete removes the current user's own review.
func (h *ReviewHandler) Delete(c fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	reviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid review id")
	}

	if err := h.db.DeleteReview(c.Context(), reviewID, user.ID); err != nil {
		if errors.Is(err, db.ErrReviewNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "review not found")
		}
		return err
	}

	return c.SendString("")
}
