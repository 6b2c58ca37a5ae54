package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"suratlocal/internal/config"
	"suratlocal/internal/db"
	"suratlocal/internal/models"
)

// UserHandler handles admin-side user management.
type UserHandler struct {
	db  *db.DB
	cfg *config.Config
}

// NewUserHandler creates a new user handler.
func NewUserHandler(database *db.DB, cfg *config.Config) *UserHandler {
	return &UserHandler{db: database, cfg: cfg}
}

// Index renders the user management page.
func (h *UserHandler) Index(c fiber.Ctx) error {
	profiles, err := h.db.GetAllProfiles(c.Context())
	if err != nil {
		return err
	}

	return c.Render("admin/users", MergeSite(c, fiber.Map{
		"Profiles": profiles,
	}, h.cfg))
}

// UpdateRole changes a user's role. Admins cannot change their own role so a
// site is never left without an admin by accident.
func (h *UserHandler) UpdateRole(c fiber.Ctx) error {
	admin, ok := c.Locals("user").(*models.Profile)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	if id == admin.ID {
		return htmxError(c, "You cannot change your own role")
	}

	role := c.FormValue("role")
	switch role {
	case models.RoleUser, models.RoleBusiness, models.RoleAdmin:
	default:
		return htmxError(c, "Unknown role")
	}

	if err := h.db.UpdateProfileRole(c.Context(), id, role); err != nil {
		if errors.Is(err, db.ErrProfileNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return err
	}

	profile, err := h.db.GetProfileByID(c.Context(), id)
	if err != nil {
		return err
	}

	return c.Render("partials/user_row", fiber.Map{
		"Profile": profile,
	}, "")
}
