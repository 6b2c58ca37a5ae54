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

// AdminHandler serves the admin dashboard and direct CRUD over listings,
// areas, and categories.
type AdminHandler struct {
	db  *db.DB
	cfg *config.Config
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(database *db.DB, cfg *config.Config) *AdminHandler {
	return &AdminHandler{db: database, cfg: cfg}
}

// Index renders the admin dashboard with site counts.
func (h *AdminHandler) Index(c fiber.Ctx) error {
	ctx := c.Context()

	listingCount, err := h.db.CountListings(ctx)
	if err != nil {
		return err
	}
	areaCount, err := h.db.CountAreas(ctx)
	if err != nil {
		return err
	}
	categoryCount, err := h.db.CountCategories(ctx)
	if err != nil {
		return err
	}
	profileCount, err := h.db.CountProfiles(ctx)
	if err != nil {
		return err
	}
	pendingSubmissions, err := h.db.CountPendingSubmissions(ctx)
	if err != nil {
		return err
	}
	pendingEdits, err := h.db.CountPendingSuggestedEdits(ctx)
	if err != nil {
		return err
	}

	return c.Render("admin/index", MergeSite(c, fiber.Map{
		"ListingCount":       listingCount,
		"AreaCount":          areaCount,
		"CategoryCount":      categoryCount,
		"ProfileCount":       profileCount,
		"PendingSubmissions": pendingSubmissions,
		"PendingEdits":       pendingEdits,
	}, h.cfg))
}

// Listings renders the listing management table.
func (h *AdminHandler) Listings(c fiber.Ctx) error {
	listings, err := h.db.GetAllListings(c.Context())
	if err != nil {
		return err
	}

	areas, err := h.db.GetAllAreas(c.Context())
	if err != nil {
		return err
	}
	categories, err := h.db.GetAllCategories(c.Context())
	if err != nil {
		return err
	}

	return c.Render("admin/listings", MergeSite(c, fiber.Map{
		"Listings":   listings,
		"Areas":      areas,
		"Categories": categories,
	}, h.cfg))
}

// UpdateListing applies an admin edit directly, without the review queue.
func (h *AdminHandler) UpdateListing(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid listing id")
	}

	listing, err := h.db.GetListingByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrListingNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "listing not found")
		}
		return err
	}

	name := strings.TrimSpace(c.FormValue("name"))
	if ok, msg := validation.ValidateName(name); !ok {
		return htmxError(c, msg)
	}

	listing.Name = name
	listing.NameHi = strings.TrimSpace(c.FormValue("name_hi"))
	listing.Description = strings.TrimSpace(c.FormValue("description"))
	listing.DescriptionHi = strings.TrimSpace(c.FormValue("description_hi"))
	listing.Address = strings.TrimSpace(c.FormValue("address"))
	listing.AddressHi = strings.TrimSpace(c.FormValue("address_hi"))
	listing.Phone = strings.TrimSpace(c.FormValue("phone"))
	listing.Email = strings.TrimSpace(c.FormValue("email"))
	listing.Website = strings.TrimSpace(c.FormValue("website"))
	listing.Hours = strings.TrimSpace(c.FormValue("hours"))
	listing.HoursHi = strings.TrimSpace(c.FormValue("hours_hi"))
	listing.IsVerified = c.FormValue("is_verified") == "on"
	listing.IsFeatured = c.FormValue("is_featured") == "on"

	if v := c.FormValue("area_id"); v != "" {
		areaID, err := uuid.Parse(v)
		if err != nil {
			return htmxError(c, "Invalid area")
		}
		listing.AreaID = areaID
	}
	if v := c.FormValue("category_id"); v != "" {
		categoryID, err := uuid.Parse(v)
		if err != nil {
			return htmxError(c, "Invalid category")
		}
		listing.CategoryID = categoryID
	}

	if err := h.db.UpdateListing(c.Context(), listing); err != nil {
		switch {
		case errors.Is(err, db.ErrListingNotFound):
			return fiber.NewError(fiber.StatusNotFound, "listing not found")
		case errors.Is(err, db.ErrInvalidReference):
			return htmxError(c, "The chosen area or category no longer exists")
		default:
			return err
		}
	}

	return c.Render("partials/admin_saved", fiber.Map{
		"Name": listing.Name,
	}, "")
}

// DeleteListing removes a listing and its dependent rows.
func (h *AdminHandler) DeleteListing(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid listing id")
	}

	if err := h.db.DeleteListing(c.Context(), id); err != nil {
		if errors.Is(err, db.ErrListingNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "listing not found")
		}
		return err
	}

	return c.SendString("")
}

// Areas renders the area management page.
func (h *AdminHandler) Areas(c fiber.Ctx) error {
	areas, err := h.db.GetAllAreas(c.Context())
	if err != nil {
		return err
	}

	return c.Render("admin/areas", MergeSite(c, fiber.Map{
		"Areas": areas,
	}, h.cfg))
}

// CreateArea adds a new area.
func (h *AdminHandler) CreateArea(c fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	if ok, msg := validation.ValidateName(name); !ok {
		return htmxError(c, msg)
	}

	slug := strings.TrimSpace(c.FormValue("slug"))
	if slug == "" {
		slug = validation.Slugify(name)
	}
	if !validation.ValidateSlug(slug) {
		return htmxError(c, "Slug may only contain lowercase letters, digits, and hyphens")
	}

	area := &models.Area{
		Name:          name,
		NameHi:        strings.TrimSpace(c.FormValue("name_hi")),
		Slug:          slug,
		Description:   strings.TrimSpace(c.FormValue("description")),
		DescriptionHi: strings.TrimSpace(c.FormValue("description_hi")),
	}

	if err := h.db.CreateArea(c.Context(), area); err != nil {
		if errors.Is(err, db.ErrDuplicateSlug) {
			return htmxError(c, "An area with this slug already exists")
		}
		return err
	}

	return c.Render("partials/admin_saved", fiber.Map{
		"Name": area.Name,
	}, "")
}

// UpdateArea edits an existing area. The slug stays fixed so published URLs
// keep working.
func (h *AdminHandler) UpdateArea(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid area id")
	}

	area, err := h.db.GetAreaByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrAreaNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "area not found")
		}
		return err
	}

	name := strings.TrimSpace(c.FormValue("name"))
	if ok, msg := validation.ValidateName(name); !ok {
		return htmxError(c, msg)
	}

	area.Name = name
	area.NameHi = strings.TrimSpace(c.FormValue("name_hi"))
	area.Description = strings.TrimSpace(c.FormValue("description"))
	area.DescriptionHi = strings.TrimSpace(c.FormValue("description_hi"))

	if err := h.db.UpdateArea(c.Context(), area); err != nil {
		if errors.Is(err, db.ErrAreaNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "area not found")
		}
		return err
	}

	return c.Render("partials/admin_saved", fiber.Map{
		"Name": area.Name,
	}, "")
}

// DeleteArea removes an area with no listings.
func (h *AdminHandler) DeleteArea(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid area id")
	}

	if err := h.db.DeleteArea(c.Context(), id); err != nil {
		switch {
		case errors.Is(err, db.ErrAreaNotFound):
			return fiber.NewError(fiber.StatusNotFound, "area not found")
		case errors.Is(err, db.ErrAreaInUse):
			return htmxError(c, "Cannot delete an area that still has listings")
		default:
			return err
		}
	}

	return c.SendString("")
}

// Categories renders the category management page.
func (h *AdminHandler) Categories(c fiber.Ctx) error {
	categories, err := h.db.GetAllCategories(c.Context())
	if err != nil {
		return err
	}

	return c.Render("admin/categories", MergeSite(c, fiber.Map{
		"Categories": categories,
	}, h.cfg))
}

// CreateCategory adds a new category.
func (h *AdminHandler) CreateCategory(c fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	if ok, msg := validation.ValidateName(name); !ok {
		return htmxError(c, msg)
	}

	slug := strings.TrimSpace(c.FormValue("slug"))
	if slug == "" {
		slug = validation.Slugify(name)
	}
	if !validation.ValidateSlug(slug) {
		return htmxError(c, "Slug may only contain lowercase letters, digits, and hyphens")
	}

	category := &models.Category{
		Name:   name,
		NameHi: strings.TrimSpace(c.FormValue("name_hi")),
		Slug:   slug,
		Icon:   strings.TrimSpace(c.FormValue("icon")),
	}

	if err := h.db.CreateCategory(c.Context(), category); err != nil {
		if errors.Is(err, db.ErrDuplicateSlug) {
			return htmxError(c, "A category with this slug already exists")
		}
		return err
	}

	return c.Render("partials/admin_saved", fiber.Map{
		"Name": category.Name,
	}, "")
}

// UpdateCategory edits an existing category. The slug stays fixed so
// published URLs keep working.
func (h *AdminHandler) UpdateCategory(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid category id")
	}

	category, err := h.db.GetCategoryByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrCategoryNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "category not found")
		}
		return err
	}

	name := strings.TrimSpace(c.FormValue("name"))
	if ok, msg := validation.ValidateName(name); !ok {
		return htmxError(c, msg)
	}

	category.Name = name
	category.NameHi = strings.TrimSpace(c.FormValue("name_hi"))
	category.Icon = strings.TrimSpace(c.FormValue("icon"))

	if err := h.db.UpdateCategory(c.Context(), category); err != nil {
		if errors.Is(err, db.ErrCategoryNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "category not found")
		}
		return err
	}

	return c.Render("partials/admin_saved", fiber.Map{
		"Name": category.Name,
	}, "")
}

// DeleteCategory removes a category with no listings.
func (h *AdminHandler) DeleteCategory(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid category id")
	}

	if err := h.db.DeleteCategory(c.Context(), id); err != nil {
		switch {
		case errors.Is(err, db.ErrCategoryNotFound):
			return fiber.NewError(fiber.StatusNotFound, "category not found")
		case errors.Is(err, db.ErrCategoryInUse):
			return htmxError(c, "Cannot delete a category that still has listings")
		default:
			return err
		}
	}

	return c.SendString("")
}
