package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database
	DatabaseURL string

	// OIDC
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string

	// Session
	SessionSecret string // Used for signing cookies (min 32 chars)
	RedisURL      string // Optional session store; in-memory when empty

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// SMTP (decision notification emails; disabled when host is empty)
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPFromName string
	SMTPTLS      string // "none", "starttls", or "tls"

	// Email notification toggles
	EmailNotifyAdminsOnSubmit bool
	EmailNotifyUserOnDecision bool

	// Website checker
	WebsiteCheckEnabled  bool
	WebsiteCheckInterval string // Go duration string, e.g. "1h"

	// Site Branding
	SiteTitle     string // env: SITE_TITLE, default: "Surat Local"
	SiteTitleHi   string // env: SITE_TITLE_HI, default: "सूरत लोकल"
	SiteTagline   string // env: SITE_TAGLINE
	SiteTaglineHi string // env: SITE_TAGLINE_HI
	SiteFooter    string // env: SITE_FOOTER
	SiteLogoURL   string // env: SITE_LOGO_URL, default: "" (no logo, text only)
	DefaultLang   string // env: DEFAULT_LANG, "en" or "hi"
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:              getEnv("ENV", "development"),
		ServerAddr:       getEnv("SERVER_ADDR", ":3000"),
		BaseURL:          getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL:      getEnv("DATABASE_URL", "postgres://localhost:5432/suratlocal?sslmode=disable"),
		OIDCIssuer:       getEnv("OIDC_ISSUER", ""),
		OIDCClientID:     getEnv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret: getEnv("OIDC_CLIENT_SECRET", ""),
		OIDCRedirectURL:  getEnv("OIDC_REDIRECT_URL", "http://localhost:3000/auth/callback"),
		SessionSecret:    getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		RedisURL:         getEnv("REDIS_URL", ""),
		CORSOrigins:      getEnv("CORS_ORIGINS", ""),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@suratlocal.in"),
		SMTPFromName: getEnv("SMTP_FROM_NAME", ""),
		SMTPTLS:      getEnv("SMTP_TLS", "starttls"),

		EmailNotifyAdminsOnSubmit: getEnv("EMAIL_NOTIFY_ADMINS_ON_SUBMIT", "true") == "true",
		EmailNotifyUserOnDecision: getEnv("EMAIL_NOTIFY_USER_ON_DECISION", "true") == "true",

		WebsiteCheckEnabled:  getEnv("WEBSITE_CHECK_ENABLED", "") != "",
		WebsiteCheckInterval: getEnv("WEBSITE_CHECK_INTERVAL", "1h"),

		SiteTitle:     getEnv("SITE_TITLE", "Surat Local"),
		SiteTitleHi:   getEnv("SITE_TITLE_HI", "सूरत लोकल"),
		SiteTagline:   getEnv("SITE_TAGLINE", "Discover local businesses in Surat"),
		SiteTaglineHi: getEnv("SITE_TAGLINE_HI", "सूरत के स्थानीय व्यवसाय खोजें"),
		SiteFooter:    getEnv("SITE_FOOTER", "Surat Local - Your neighbourhood business directory"),
		SiteLogoURL:   getEnv("SITE_LOGO_URL", ""),
		DefaultLang:   getEnv("DEFAULT_LANG", "en"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsEmailEnabled returns true if SMTP is configured.
func (c *Config) IsEmailEnabled() bool {
	return c.SMTPHost != ""
}
