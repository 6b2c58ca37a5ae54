package handlers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"suratlocal/internal/config"
	"suratlocal/internal/db"
	"suratlocal/internal/i18n"
	"suratlocal/internal/metrics"
)

// PublicHandler serves the browse pages: home, areas, categories, listing
// detail, and search.
type PublicHandler struct {
	db  *db.DB
	cfg *config.Config
}

// NewPublicHandler creates a new public handler.
func NewPublicHandler(database *db.DB, cfg *config.Config) *PublicHandler {
	return &PublicHandler{db: database, cfg: cfg}
}

// Home renders the landing page.
func (h *PublicHandler) Home(c fiber.Ctx) error {
	areas, err := h.db.GetAllAreas(c.Context())
	if err != nil {
		return err
	}

	categories, err := h.db.GetAllCategories(c.Context())
	if err != nil {
		return err
	}

	featured, err := h.db.GetFeaturedListings(c.Context(), 6)
	if err != nil {
		return err
	}

	listingCount, err := h.db.CountListings(c.Context())
	if err != nil {
		return err
	}

	return c.Render("index", MergeSite(c, fiber.Map{
		"Areas":         areas,
		"Categories":    categories,
		"Featured":      featured,
		"ListingCount":  listingCount,
		"AreaCount":     len(areas),
		"CategoryCount": len(categories),
	}, h.cfg))
}

// Areas renders the area index page.
func (h *PublicHandler) Areas(c fiber.Ctx) error {
	areas, err := h.db.GetAllAreas(c.Context())
	if err != nil {
		return err
	}

	return c.Render("areas", MergeSite(c, fiber.Map{
		"Areas": areas,
	}, h.cfg))
}

// Area renders one area with its listings.
func (h *PublicHandler) Area(c fiber.Ctx) error {
	area, err := h.db.GetAreaBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, db.ErrAreaNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "area not found")
		}
		return err
	}

	listings, err := h.db.SearchListings(c.Context(), "", &area.ID, nil, 100)
	if err != nil {
		return err
	}

	return c.Render("area", MergeSite(c, fiber.Map{
		"Area":     area,
		"Listings": listings,
	}, h.cfg))
}

// Categories renders the category index page.
func (h *PublicHandler) Categories(c fiber.Ctx) error {
	categories, err := h.db.GetAllCategories(c.Context())
	if err != nil {
		return err
	}

	return c.Render("categories", MergeSite(c, fiber.Map{
		"Categories": categories,
	}, h.cfg))
}

// Category renders one category with its listings.
func (h *PublicHandler) Category(c fiber.Ctx) error {
	category, err := h.db.GetCategoryBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, db.ErrCategoryNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "category not found")
		}
		return err
	}

	listings, err := h.db.SearchListings(c.Context(), "", nil, &category.ID, 100)
	if err != nil {
		return err
	}

	return c.Render("category", MergeSite(c, fiber.Map{
		"Category": category,
		"Listings": listings,
	}, h.cfg))
}

// Listing renders a listing detail page and records the view.
func (h *PublicHandler) Listing(c fiber.Ctx) error {
	slug := c.Params("slug")

	listing, err := h.db.GetListingBySlug(c.Context(), slug)
	if err != nil {
		if errors.Is(err, db.ErrListingNotFound) {
			metrics.RecordListingView(slug, metrics.OutcomeNotFound)
			return fiber.NewError(fiber.StatusNotFound, "listing not found")
		}
		return err
	}
	metrics.RecordListingView(slug, metrics.OutcomeFound)

	images, err := h.db.GetListingImages(c.Context(), listing.ID)
	if err != nil {
		return err
	}

	reviews, err := h.db.GetReviewsByListing(c.Context(), listing.ID)
	if err != nil {
		return err
	}

	isFavorited := false
	if user := currentUser(c); user != nil {
		isFavorited, err = h.db.IsFavorited(c.Context(), user.ID, listing.ID)
		if err != nil {
			return err
		}
	}

	return c.Render("listing", MergeSite(c, fiber.Map{
		"Listing":     listing,
		"Images":      images,
		"Reviews":     reviews,
		"IsFavorited": isFavorited,
	}, h.cfg))
}

// Search renders search results. Area and category filters are optional
// query params carrying UUIDs.
func (h *PublicHandler) Search(c fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))

	var areaID, categoryID *uuid.UUID
	if v := c.Query("area"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			areaID = &id
		}
	}
	if v := c.Query("category"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			categoryID = &id
		}
	}

	listings, err := h.db.SearchListings(c.Context(), query, areaID, categoryID, 50)
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

	return c.Render("search", MergeSite(c, fiber.Map{
		"Query":      query,
		"Listings":   listings,
		"Areas":      areas,
		"Categories": categories,
	}, h.cfg))
}

// SetLang stores the language choice in a cookie and bounces back.
func (h *PublicHandler) SetLang(c fiber.Ctx) error {
	lang := c.Params("lang")
	if !i18n.ValidLang(lang) {
		return fiber.NewError(fiber.StatusBadRequest, "unsupported language")
	}

	c.Cookie(&fiber.Cookie{
		Name:    "lang",
		Value:   lang,
		Path:    "/",
		Expires: time.Now().Add(365 * 24 * time.Hour),
	})

	referer := c.Get("Referer")
	if referer == "" {
		referer = "/"
	}
	return c.Redirect().To(referer)
}

// Sitemap serves a plain XML sitemap of the public pages.
func (h *PublicHandler) Sitemap(c fiber.Ctx) error {
	areas, err := h.db.GetAllAreas(c.Context())
	if err != nil {
		return err
	}
	categories, err := h.db.GetAllCategories(c.Context())
	if err != nil {
		return err
	}
	listings, err := h.db.GetAllListings(c.Context())
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	writeURL := func(path string) {
		b.WriteString(fmt.Sprintf("  <url><loc>%s%s</loc></url>\n", h.cfg.BaseURL, path))
	}
	writeURL("/")
	writeURL("/areas")
	writeURL("/categories")
	for _, a := range areas {
		writeURL("/areas/" + a.Slug)
	}
	for _, cat := range categories {
		writeURL("/categories/" + cat.Slug)
	}
	for _, l := range listings {
		writeURL("/listings/" + l.Slug)
	}
	b.WriteString("</urlset>\n")

	c.Set("Content-Type", "application/xml; charset=utf-8")
	return c.SendString(b.String())
}
