package handlers

import (
	"github.com/gofiber/fiber/v3"

	"suratlocal/internal/config"
	"suratlocal/internal/models"
)

// MergeSite adds site branding, language, and the current user to a fiber.Map
// for template rendering. Every full-page render goes through this.
func MergeSite(c fiber.Ctx, data fiber.Map, cfg *config.Config) fiber.Map {
	lang := currentLang(c)

	title := cfg.SiteTitle
	tagline := cfg.SiteTagline
	if lang == models.LangHindi {
		if cfg.SiteTitleHi != "" {
			title = cfg.SiteTitleHi
		}
		if cfg.SiteTaglineHi != "" {
			tagline = cfg.SiteTaglineHi
		}
	}

	data["SiteTitle"] = title
	data["SiteTagline"] = tagline
	data["SiteFooter"] = cfg.SiteFooter
	data["SiteLogoURL"] = cfg.SiteLogoURL
	data["Lang"] = lang

	if _, ok := data["User"]; !ok {
		if user := currentUser(c); user != nil {
			data["User"] = user
		}
	}

	return data
}
