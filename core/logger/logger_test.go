package logger

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"Production JSON", Config{Level: "info", Format: "json"}},
		{"Development Console", Config{Level: "debug", Format: "console"}},
		{"Unknown Level Falls Back", Config{Level: "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(&tt.cfg)
			assert.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestWithRequest(t *testing.T) {
	l, err := New(&Config{Level: "info"})
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals("ray_id", "ray-1")
		c.Locals("actor_id", "user-1")
		assert.NotSame(t, l, WithRequest(l, c))
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/bare", func(c *fiber.Ctx) error {
		assert.Same(t, l, WithRequest(l, c))
		return c.SendStatus(fiber.StatusNoContent)
	})

	for _, path := range []string{"/", "/bare"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	}
}
