package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"suratlocal/internal/config"
	"suratlocal/internal/db"
	"suratlocal/internal/models"
	"suratlocal/internal/validation"
)

// SubmissionHandler handles user listing submissions.
type SubmissionHandler struct {
	db  *db.DB
	cfg *config.Config
}

// NewSubmissionHandler creates a new submission handler.
func NewSubmissionHandler(database *db.DB, cfg *config.Config) *SubmissionHandler {
	return &SubmissionHandler{db: database, cfg: cfg}
}

// New renders the submission form.
func (h *SubmissionHandler) New(c fiber.Ctx) error {
	areas, err := h.db.GetAllAreas(c.Context())
	if err != nil {
		return err
	}
	categories, err := h.db.GetAllCategories(c.Context())
	if err != nil {
		return err
	}

	return c.Render("submit", MergeSite(c, fiber.Map{
		"Areas":      areas,
		"Categories": categories,
	}, h.cfg))
}

// Create accepts a new submission and queues it for review.
func (h *SubmissionHandler) Create(c fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	name := strings.TrimSpace(c.FormValue("name"))
	if ok, msg := validation.ValidateName(name); !ok {
		return htmxError(c, msg)
	}

	address := strings.TrimSpace(c.FormValue("address"))
	if address == "" {
		return htmxError(c, "Address is required")
	}

	areaID, err := uuid.Parse(c.FormValue("area_id"))
	if err != nil {
		return htmxError(c, "Please choose an area")
	}
	categoryID, err := uuid.Parse(c.FormValue("category_id"))
	if err != nil {
		return htmxError(c, "Please choose a category")
	}

	email := strings.TrimSpace(c.FormValue("email"))
	if ok, msg := validation.ValidateEmail(email); !ok {
		return htmxError(c, msg)
	}

	website := strings.TrimSpace(c.FormValue("website"))
	if website != "" {
		if ok, msg := validation.ValidateURL(website); !ok {
			return htmxError(c, msg)
		}
	}

	submission := &models.Submission{
		UserID:      user.ID,
		AreaID:      areaID,
		CategoryID:  categoryID,
		Name:        name,
		Description: strings.TrimSpace(c.FormValue("description")),
		Address:     address,
		Phone:       strings.TrimSpace(c.FormValue("phone")),
		Data: models.SubmissionData{
			NameHi:        strings.TrimSpace(c.FormValue("name_hi")),
			DescriptionHi: strings.TrimSpace(c.FormValue("description_hi")),
			AddressHi:     strings.TrimSpace(c.FormValue("address_hi")),
			Email:         email,
			Website:       website,
			Hours:         strings.TrimSpace(c.FormValue("hours")),
			HoursHi:       strings.TrimSpace(c.FormValue("hours_hi")),
		},
	}

	if imageURL := strings.TrimSpace(c.FormValue("image_url")); imageURL != "" {
		if ok, msg := validation.ValidateURL(imageURL); !ok {
			return htmxError(c, msg)
		}
		submission.Data.Images = []models.SubmissionImage{
			{URL: imageURL, IsPrimary: true},
		}
	}

	if err := h.db.CreateSubmission(c.Context(), submission); err != nil {
		if errors.Is(err, db.ErrInvalidReference) {
			return htmxError(c, "The chosen area or category no longer exists")
		}
		return err
	}

	submission.SubmitterName = user.DisplayName()
	submission.SubmitterEmail = user.Email
	if Notifier != nil {
		Notifier.NotifySubmissionReceived(c.Context(), submission)
	}

	return c.Render("partials/submission_success", fiber.Map{
		"Name": submission.Name,
	}, "")
}
