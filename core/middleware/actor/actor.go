package actor

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// HeaderName carries the actor id when no token secret is configured.
const HeaderName = "X-Actor-ID"

// Config configures actor resolution.
type Config struct {
	// Secret verifies HS256 bearer tokens. When empty, HeaderName is trusted instead.
	Secret string
}

// New returns a middleware that resolves the acting user and stores it in Locals("actor_id").
// Requests without an actor pass through; handlers that need one reject them.
// A bearer token that fails verification is rejected outright.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.Secret == "" {
			if id := strings.TrimSpace(c.Get(HeaderName)); id != "" {
				c.Locals("actor_id", id)
			}
			return c.Next()
		}

		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Next()
		}
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return unauthorized(c, "malformed authorization header")
		}

		id, err := Subject(raw, cfg.Secret)
		if err != nil {
			return unauthorized(c, err.Error())
		}
		c.Locals("actor_id", id)
		return c.Next()
	}
}

// FromCtx returns the actor resolved for the request, or "".
func FromCtx(c *fiber.Ctx) string {
	id, _ := c.Locals("actor_id").(string)
	return id
}

// Subject verifies an HS256 token and returns its subject claim.
func Subject(token, secret string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return sub, nil
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msg})
}
