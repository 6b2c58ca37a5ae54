package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"suratlocal/internal/db"
	"suratlocal/internal/i18n"
	"suratlocal/internal/models"
)

// AuthMiddleware handles user authentication via sessions.
type AuthMiddleware struct {
	store *session.Store
	db    *db.DB
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(store *session.Store, db *db.DB) *AuthMiddleware {
	return &AuthMiddleware{store: store, db: db}
}

// RequireAuth ensures the user is authenticated, redirecting to /login if not.
// The profile is loaded from the database on every request so role changes
// take effect immediately.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return c.Redirect().To("/login")
	}

	userSub := sess.Get("user_sub")
	if userSub == nil {
		return c.Redirect().To("/login")
	}

	user, err := m.db.GetProfileBySub(c.Context(), userSub.(string))
	if err != nil {
		sess.Destroy()
		return c.Redirect().To("/login")
	}

	c.Locals("user", user)
	return c.Next()
}

// OptionalAuth loads the user if authenticated, but doesn't require authentication.
func (m *AuthMiddleware) OptionalAuth(c fiber.Ctx) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return c.Next()
	}

	userSub := sess.Get("user_sub")
	if userSub == nil {
		return c.Next()
	}

	user, err := m.db.GetProfileBySub(c.Context(), userSub.(string))
	if err == nil {
		c.Locals("user", user)
	}

	return c.Next()
}

// RequireAdmin ensures the user is authenticated and has the admin role.
// Runs after RequireAuth. A request whose session has no matching profile row
// is never treated as admin.
func (m *AuthMiddleware) RequireAdmin(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.Profile)
	if !ok || user == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}
	if !user.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, "Admin access required")
	}
	return c.Next()
}

// Language resolves the display language from the "lang" cookie, falling back
// to the given default, and stores it in locals for handlers and templates.
func Language(defaultLang string) fiber.Handler {
	if !i18n.ValidLang(defaultLang) {
		defaultLang = models.LangEnglish
	}
	return func(c fiber.Ctx) error {
		lang := c.Cookies("lang")
		if !i18n.ValidLang(lang) {
			lang = defaultLang
		}
		c.Locals("lang", lang)
		return c.Next()
	}
}
