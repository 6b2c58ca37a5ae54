package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"suratlocal/internal/config"
	"suratlocal/internal/db"
)

// DashboardHandler serves the signed-in user's own pages.
type DashboardHandler struct {
	db  *db.DB
	cfg *config.Config
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(database *db.DB, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{db: database, cfg: cfg}
}

// Index renders the dashboard: the user's submissions, suggested edits,
// reviews, and favorites.
func (h *DashboardHandler) Index(c fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	submissions, err := h.db.GetSubmissionsByUser(c.Context(), user.ID)
	if err != nil {
		return err
	}

	edits, err := h.db.GetSuggestedEditsByUser(c.Context(), user.ID)
	if err != nil {
		return err
	}

	reviews, err := h.db.GetReviewsByUser(c.Context(), user.ID)
	if err != nil {
		return err
	}

	favorites, err := h.db.GetFavoriteListings(c.Context(), user.ID)
	if err != nil {
		return err
	}

	return c.Render("dashboard", MergeSite(c, fiber.Map{
		"Submissions": submissions,
		"Edits":       edits,
		"Reviews":     reviews,
		"Favorites":   favorites,
	}, h.cfg))
}

// UpdateProfile updates the user's display name.
func (h *DashboardHandler) UpdateProfile(c fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	fullName := strings.TrimSpace(c.FormValue("full_name"))
	if fullName == "" {
		return htmxError(c, "Name cannot be empty")
	}
	if len(fullName) > 200 {
		return htmxError(c, "Name must be 200 characters or fewer")
	}

	if err := h.db.UpdateProfileName(c.Context(), user.ID, fullName); err != nil {
		return err
	}

	return c.Render("partials/profile_saved", fiber.Map{
		"FullName": fullName,
	}, "")
}
