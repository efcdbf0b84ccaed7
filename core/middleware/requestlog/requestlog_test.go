package requestlog_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"layersync/core/middleware/rayid"
	"layersync/core/middleware/requestlog"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_ClientRayID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := fiber.New()
	app.Use(rayid.New(), requestlog.New(zap.New(core)))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	ids := []string{
		"0b8f3c52-3d1f-4a53-9f4e-8a7d0c1b2e3f",
		"9d2e4a61-7c0b-4f8e-a1d3-5b6c7e8f9a0b",
	}
	for _, id := range ids {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(rayid.Header, id)
		_, err := app.Test(req)
		require.NoError(t, err)
	}

	entries := logs.All()
	require.Len(t, entries, len(ids))
	for i, id := range ids {
		assert.Equal(t, id, entries[i].ContextMap()["ray_id"])
	}
}

func TestNew(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := fiber.New()
	app.Use(rayid.New(), requestlog.New(zap.New(core)))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	app.Get("/fail", func(c *fiber.Ctx) error { return errors.New("boom") })

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	rid := resp.Header.Get(rayid.Header)

	_, err = app.Test(httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, "Request handled", entries[0].Message)
	assert.Equal(t, rid, entries[0].ContextMap()["ray_id"])
	assert.EqualValues(t, fiber.StatusNoContent, entries[0].ContextMap()["status"])
	assert.Equal(t, "/ok", entries[0].ContextMap()["path"], "earlier entries keep their own path")
	assert.Equal(t, "GET", entries[0].ContextMap()["method"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
	assert.Equal(t, "/fail", entries[1].ContextMap()["path"])
}
