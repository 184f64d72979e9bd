package actor

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, secret, sub string, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sub,
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func newApp(cfg Config) *fiber.App {
	app := fiber.New()
	app.Use(New(cfg))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString(FromCtx(c)) })
	return app
}

func TestNew_Header(t *testing.T) {
	app := newApp(Config{})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(HeaderName, "user-7")
	resp, err := app.Test(req)
	require.NoError(t, err)

	body := make([]byte, 16)
	n, _ := resp.Body.Read(body)
	assert.Equal(t, "user-7", string(body[:n]))
}

func TestNew_Token(t *testing.T) {
	app := newApp(Config{Secret: "s3cret"})

	tests := []struct {
		name   string
		header string
		status int
		actor  string
	}{
		{"Valid", "Bearer " + signed(t, "s3cret", "user-9", time.Now().Add(time.Hour)), fiber.StatusOK, "user-9"},
		{"Expired", "Bearer " + signed(t, "s3cret", "user-9", time.Now().Add(-time.Hour)), fiber.StatusUnauthorized, ""},
		{"Wrong Secret", "Bearer " + signed(t, "other", "user-9", time.Now().Add(time.Hour)), fiber.StatusUnauthorized, ""},
		{"Malformed", "Token abc", fiber.StatusUnauthorized, ""},
		{"Anonymous", "", fiber.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			if tt.status == fiber.StatusOK {
				body := make([]byte, 16)
				n, _ := resp.Body.Read(body)
				assert.Equal(t, tt.actor, string(body[:n]))
			}
		})
	}
}
