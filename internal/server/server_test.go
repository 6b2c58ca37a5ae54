package server

import (
	"encoding/base64"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/encryptcookie"
	"github.com/gofiber/fiber/v3/middleware/session"
)

func TestDeriveEncryptionKey(t *testing.T) {
	key := deriveEncryptionKey("some-secret")

	raw, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		t.Fatalf("key is not valid base64: %v", err)
	}
	if len(raw) != 32 {
		t.Errorf("decoded key length = %d, want 32", len(raw))
	}

	if deriveEncryptionKey("some-secret") != key {
		t.Error("key derivation is not deterministic")
	}
	if deriveEncryptionKey("other-secret") == key {
		t.Error("different secrets produced the same key")
	}
}

// TestEncryptCookieSessionRoundTrip verifies that the encryptcookie +
// session middleware stack survives a client replaying encrypted session
// cookies across multiple requests.
func TestEncryptCookieSessionRoundTrip(t *testing.T) {
	secret := "test-secret-that-is-long-enough-for-production"
	encryptionKey := deriveEncryptionKey(secret)

	app := fiber.New()

	// Mirror the production middleware order exactly:
	// 1. encryptcookie  2. session  3. route handler
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: encryptionKey,
	}))

	sessionMiddleware, _ := session.NewWithStore(session.Config{
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	app.Use(sessionMiddleware)

	app.Post("/session-set", func(c fiber.Ctx) error {
		sess := session.FromContext(c)
		if sess == nil {
			return c.Status(500).SendString("no session")
		}
		sess.Set("user", "asha")
		return c.SendString("ok")
	})
	app.Get("/session-get", func(c fiber.Ctx) error {
		sess := session.FromContext(c)
		if sess == nil {
			return c.Status(500).SendString("no session")
		}
		val, _ := sess.Get("user").(string)
		return c.SendString(val)
	})

	// Establish a session
	req, _ := http.NewRequest("POST", "/session-set", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("set request failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("set request status = %d, want 200", resp.StatusCode)
	}
	cookies := resp.Cookies()
	if len(cookies) == 0 {
		t.Fatal("no session cookie returned")
	}

	// Replay the encrypted cookie
	req, _ = http.NewRequest("GET", "/session-get", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("get request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "asha" {
		t.Errorf("session value = %q, want %q", string(body), "asha")
	}
}
