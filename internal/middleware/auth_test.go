package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"suratlocal/internal/models"
)

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name       string
		user       *models.Profile
		wantStatus int
	}{
		{"no user", nil, fiber.StatusUnauthorized},
		{"regular user", &models.Profile{Role: models.RoleUser}, fiber.StatusForbidden},
		{"business user", &models.Profile{Role: models.RoleBusiness}, fiber.StatusForbidden},
		{"admin user", &models.Profile{Role: models.RoleAdmin}, fiber.StatusOK},
	}

	m := &AuthMiddleware{}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/admin",
				func(c fiber.Ctx) error {
					if tt.user != nil {
						c.Locals("user", tt.user)
					}
					return c.Next()
				},
				m.RequireAdmin,
				func(c fiber.Ctx) error {
					return c.SendStatus(fiber.StatusOK)
				},
			)

			resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestLanguage(t *testing.T) {
	tests := []struct {
		name        string
		cookie      string
		defaultLang string
		want        string
	}{
		{"no cookie uses default", "", "en", "en"},
		{"hindi cookie", "hi", "en", "hi"},
		{"english cookie", "en", "hi", "en"},
		{"garbage cookie falls back", "de", "en", "en"},
		{"invalid default falls back to english", "", "xx", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", Language(tt.defaultLang), func(c fiber.Ctx) error {
				return c.SendString(c.Locals("lang").(string))
			})

			req := httptest.NewRequest("GET", "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "lang", Value: tt.cookie})
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			body, _ := io.ReadAll(resp.Body)
			if got := string(body); got != tt.want {
				t.Errorf("lang = %q, want %q", got, tt.want)
			}
		})
	}
}
