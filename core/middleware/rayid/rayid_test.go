package rayid_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"layersync/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(rayid.Get(c))
	})
	return app
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "Generated", incoming: "", keep: false},
		{name: "Client UUID kept", incoming: "0b8f3c52-3d1f-4a53-9f4e-8a7d0c1b2e3f", keep: true},
		{name: "Invalid replaced", incoming: "not-a-uuid", keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.incoming != "" {
				req.Header.Set(rayid.Header, tt.incoming)
			}

			resp, err := newApp().Test(req)
			require.NoError(t, err)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			rid := resp.Header.Get(rayid.Header)
			assert.Equal(t, rid, string(body))
			_, err = uuid.Parse(rid)
			assert.NoError(t, err)
			if tt.keep {
				assert.Equal(t, tt.incoming, rid)
			} else {
				assert.NotEqual(t, tt.incoming, rid)
			}
		})
	}
}
