package auth_test

import (
	"net/http/httptest"
	"testing"

	"layersync/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		path   string
		header map[string]string
		status int
	}{
		{name: "Disabled", apiKey: "", path: "/layers", status: fiber.StatusOK},
		{name: "Missing key", apiKey: "secret", path: "/layers", status: fiber.StatusUnauthorized},
		{name: "Wrong key", apiKey: "secret", path: "/layers", header: map[string]string{auth.Header: "nope"}, status: fiber.StatusUnauthorized},
		{name: "Header key", apiKey: "secret", path: "/layers", header: map[string]string{auth.Header: "secret"}, status: fiber.StatusOK},
		{name: "Bearer key", apiKey: "secret", path: "/layers", header: map[string]string{"Authorization": "Bearer secret"}, status: fiber.StatusOK},
		{name: "Skipped path", apiKey: "secret", path: "/swagger/index.html", status: fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(auth.New(auth.Config{ApiKey: tt.apiKey, Skip: []string{"/swagger"}}))
			app.Get("/*", func(c *fiber.Ctx) error {
				return c.SendStatus(fiber.StatusOK)
			})

			req := httptest.NewRequest("GET", tt.path, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
