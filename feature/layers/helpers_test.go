package layers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"layersync/core/database"
	"layersync/core/layer"
	"layersync/core/storage"
	"layersync/core/storage/mocks"
	"layersync/feature/layers"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Beauty tree indexes: 0 root, 1 Set, 2 Lights, 3 Set/Props.
const sample = `{
  "version": 1,
  "objects": [
    {"name": "Cube", "type": "mesh", "modes": ["edit"]},
    {"name": "Sphere", "type": "mesh", "modes": ["edit"]},
    {"name": "Tree", "type": "mesh", "library": "props.blend"},
    {"name": "Lamp", "type": "light"},
    {"name": "Camera", "type": "camera"}
  ],
  "collections": [
    {"name": "Set", "children": ["Props"], "objects": ["Cube", "Sphere"]},
    {"name": "Props", "objects": ["Tree"]},
    {"name": "Lights", "objects": ["Lamp"]}
  ],
  "scenes": [
    {
      "name": "Shot",
      "children": ["Set", "Lights"],
      "objects": ["Camera"],
      "view_layers": [
        {
          "name": "Beauty",
          "active_base": "Cube",
          "bases": [{"object": "Cube", "selected": true, "local_view_bits": 65535}]
        },
        {"name": "Shadows"}
      ]
    }
  ],
  "viewports": [
    {"name": "Left", "local_collections_bit": 1, "use_local_collections": true},
    {"name": "Plain"}
  ]
}`

const sampleKey = "scenes/shot.json"

type env struct {
	client  *mocks.Client
	engine  *layer.Engine
	service *layers.Service
	app     *fiber.App
}

// newEnv creates a service backed by a mocked bucket holding the sample
// document. The document is not loaded.
func newEnv(t *testing.T, store *layers.Store) *env {
	t.Helper()
	client := new(mocks.Client)
	engine := layer.NewEngine(zap.NewNop())
	docs := storage.NewDocuments(client, storage.Config{Bucket: "layers", Prefix: "scenes/"})
	svc := layers.NewService(engine, docs, store, zap.NewNop(), "shot")

	app := fiber.New()
	require.NoError(t, layers.NewFeature(svc).Load(app))
	return &env{client: client, engine: engine, service: svc, app: app}
}

// expectDocument serves src for the next read of the sample key.
func (e *env) expectDocument(src string) {
	e.client.ServeObject("layers", sampleKey, src)
}

// loaded returns an env with the sample document loaded.
func loaded(t *testing.T, store *layers.Store) *env {
	t.Helper()
	e := newEnv(t, store)
	e.expectDocument(sample)
	_, err := e.service.Load(t.Context(), "")
	require.NoError(t, err)
	return e
}

func (e *env) do(t *testing.T, method, path, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(data, &v), string(data))
	return v
}

func memoryStore(t *testing.T) *layers.Store {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	store, err := layers.NewStore(db, true)
	require.NoError(t, err)
	return store
}
