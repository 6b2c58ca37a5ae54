package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"suratlocal/internal/config"
	"suratlocal/internal/db"
	"suratlocal/internal/models"
)

// ModerationHandler handles review of pending submissions and suggested
// edits. All routes sit behind the admin middleware.
type ModerationHandler struct {
	db  *db.DB
	cfg *config.Config
}

// NewModerationHandler creates a new moderation handler.
func NewModerationHandler(database *db.DB, cfg *config.Config) *ModerationHandler {
	return &ModerationHandler{db: database, cfg: cfg}
}

// Index renders the moderation queue: pending submissions and pending
// suggested edits, newest first.
func (h *ModerationHandler) Index(c fiber.Ctx) error {
	submissions, err := h.db.GetPendingSubmissions(c.Context())
	if err != nil {
		return err
	}

	edits, err := h.db.GetPendingSuggestedEdits(c.Context())
	if err != nil {
		return err
	}

	return c.Render("admin/moderation", MergeSite(c, fiber.Map{
		"Submissions": submissions,
		"Edits":       edits,
	}, h.cfg))
}

// ApproveSubmission approves a pending submission, creating the listing.
func (h *ModerationHandler) ApproveSubmission(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.Profile)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid submission id")
	}

	// Load before deciding so the notification still has submitter details
	submission, err := h.db.GetSubmissionByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrSubmissionNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "submission not found")
		}
		return err
	}

	listing, err := h.db.ApproveSubmission(c.Context(), id, user.ID)
	if err != nil {
		if errors.Is(err, db.ErrSubmissionNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "submission not found or already processed")
		}
		return err
	}

	if Notifier != nil {
		Notifier.NotifySubmissionApproved(c.Context(), submission, listing)
	}

	return c.Render("partials/moderation_success", fiber.Map{
		"Action": "approved",
		"Name":   submission.Name,
		"Slug":   listing.Slug,
	}, "")
}

// RejectSubmission rejects a pending submission.
func (h *ModerationHandler) RejectSubmission(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.Profile)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid submission id")
	}

	submission, err := h.db.GetSubmissionByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrSubmissionNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "submission not found")
		}
		return err
	}

	if err := h.db.RejectSubmission(c.Context(), id, user.ID); err != nil {
		if errors.Is(err, db.ErrSubmissionNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "submission not found or already processed")
		}
		return err
	}

	if Notifier != nil {
		Notifier.NotifySubmissionRejected(c.Context(), submission)
	}

	return c.Render("partials/moderation_success", fiber.Map{
		"Action": "rejected",
		"Name":   submission.Name,
	}, "")
}

// ApproveEdit approves a suggested edit, applying its changes to the listing.
func (h *ModerationHandler) ApproveEdit(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.Profile)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid edit id")
	}

	edit, err := h.db.GetSuggestedEditByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrEditNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "edit not found")
		}
		return err
	}

	if err := h.db.ApproveSuggestedEdit(c.Context(), id, user.ID); err != nil {
		if errors.Is(err, db.ErrEditNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "edit not found or already processed")
		}
		return err
	}

	if Notifier != nil {
		Notifier.NotifyEditApproved(c.Context(), edit)
	}

	return c.Render("partials/moderation_success", fiber.Map{
		"Action": "approved",
		"Name":   edit.ListingName,
		"Slug":   edit.ListingSlug,
	}, "")
}

// RejectEdit rejects a suggested edit without touching the listing.
func (h *ModerationHandler) RejectEdit(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.Profile)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid edit id")
	}

	edit, err := h.db.GetSuggestedEditByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrEditNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "edit not found")
		}
		return err
	}

	if err := h.db.RejectSuggestedEdit(c.Context(), id, user.ID); err != nil {
		if errors.Is(err, db.ErrEditNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "edit not found or already processed")
		}
		return err
	}

	if Notifier != nil {
		Notifier.NotifyEditRejected(c.Context(), edit)
	}

	return c.Render("partials/moderation_success", fiber.Map{
		"Action": "rejected",
		"Name":   edit.ListingName,
	}, "")
}
