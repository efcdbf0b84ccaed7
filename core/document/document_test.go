package document_test

import (
	"bytes"
	"strings"
	"testing"

	"layersync/core/document"
	"layersync/core/layer"
	"layersync/core/scene"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sample = `{
  "version": 1,
  "id": "6f1c1e8e-8d0e-4b7a-9a55-0d7c2f7b9e10",
  "objects": [
    {"name": "Cube", "type": "mesh", "modes": ["edit"], "selected": true},
    {"name": "Camera", "type": "camera"},
    {"name": "Lamp", "type": "light", "hide_render": true},
    {"name": "Tree", "type": "mesh", "library": "props.blend"}
  ],
  "collections": [
    {"name": "Set", "children": ["Props"], "objects": ["Cube"]},
    {"name": "Props", "hide_select": true, "objects": ["Tree"]},
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
          "active": "Set/Props",
          "active_base": "Cube",
          "nodes": [
            {"path": "", "local_bits": 65535},
            {"path": "Set", "local_bits": 65535},
            {"path": "Set/Props", "flags": ["holdout"], "local_bits": 65535},
            {"path": "Lights", "flags": ["excluded"], "local_bits": 65535},
            {"path": "Gone", "flags": ["hidden"], "local_bits": 0}
          ],
          "bases": [
            {"object": "Cube", "selected": true, "local_view_bits": 65535},
            {"object": "Camera", "hidden": true, "local_view_bits": 65535}
          ]
        },
        {"name": "Shadows"}
      ]
    }
  ],
  "viewports": [
    {"name": "Left", "local_collections_bit": 1, "use_local_collections": true, "exclude_types": ["camera"]}
  ]
}`

func build(t *testing.T, src string) *layer.Database {
	t.Helper()
	doc, err := document.Decode(strings.NewReader(src))
	require.NoError(t, err)
	db, err := doc.Build(layer.NewEngine(zap.NewNop()))
	require.NoError(t, err)
	return db
}

func TestBuild(t *testing.T) {
	db := build(t, sample)

	s := db.Scene("Shot")
	require.NotNil(t, s)
	beauty := s.ViewLayer("Beauty")
	require.NotNil(t, beauty)

	t.Run("Graph", func(t *testing.T) {
		cube := db.Graph.FindObject("Cube")
		require.NotNil(t, cube)
		assert.Equal(t, scene.ObjectMesh, cube.Type)
		assert.Equal(t, scene.ModeEdit, cube.Mode)
		assert.True(t, db.Graph.FindObject("Tree").IsLinked())
		assert.NotZero(t, db.Graph.FindObject("Lamp").Visibility&scene.ObjectHideRender)
		assert.NotZero(t, db.Graph.FindCollection("Props").Flag&scene.CollectionHideSelect)
	})
	t.Run("Node state", func(t *testing.T) {
		assert.Equal(t, layer.NodeHoldout, beauty.NodeByPath("Set/Props").Flag)
		assert.True(t, beauty.NodeByPath("Lights").Excluded())
		assert.Nil(t, beauty.NodeByPath("Gone"))
		assert.Same(t, beauty.NodeByPath("Set/Props"), beauty.ActiveNode())
	})
	t.Run("Bases", func(t *testing.T) {
		assert.Nil(t, beauty.FindBase(db.Graph.FindObject("Lamp")), "excluded collection")

		cube := beauty.FindBase(db.Graph.FindObject("Cube"))
		require.NotNil(t, cube)
		assert.True(t, cube.Has(layer.BaseSelected))
		assert.Same(t, cube, beauty.ActiveBase())

		camera := beauty.FindBase(db.Graph.FindObject("Camera"))
		require.NotNil(t, camera)
		assert.True(t, camera.Has(layer.BaseHidden))
		assert.False(t, layer.BaseIsVisible(nil, camera))

		tree := beauty.FindBase(db.Graph.FindObject("Tree"))
		require.NotNil(t, tree)
		assert.True(t, tree.Has(layer.BaseHoldout))
		assert.False(t, tree.Has(layer.BaseSelectable))
	})
	t.Run("Second view layer has defaults", func(t *testing.T) {
		shadows := s.ViewLayer("Shadows")
		assert.NotNil(t, shadows.FindBase(db.Graph.FindObject("Lamp")))
		assert.Same(t, shadows.Root(), shadows.ActiveNode())
	})
	t.Run("Viewports", func(t *testing.T) {
		require.Len(t, db.Viewports, 1)
		vp := db.Viewports[0]
		assert.Equal(t, uint32(1<<scene.ObjectCamera), vp.ExcludeTypes)
		assert.True(t, vp.UseLocalCollections)
	})
}

func TestRoundTrip(t *testing.T) {
	db := build(t, sample)
	first := document.FromDatabase(db)

	var buf bytes.Buffer
	require.NoError(t, first.Encode(&buf))
	_, err := uuid.Parse(first.ID)
	require.NoError(t, err)

	decoded, err := document.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, first.ID, decoded.ID)

	rebuilt, err := decoded.Build(layer.NewEngine(nil))
	require.NoError(t, err)

	second := document.FromDatabase(rebuilt)
	second.ID = first.ID
	assert.Equal(t, first, second)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		is   error
	}{
		{name: "Malformed", src: `{"version":`},
		{name: "Unknown field", src: `{"version": 1, "layers": []}`},
		{name: "Wrong version", src: `{"version": 2}`, is: document.ErrUnsupportedVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := document.Decode(strings.NewReader(tt.src))
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  document.Document
		msg  string
	}{
		{
			name: "Duplicate object",
			doc:  document.Document{Objects: []document.ObjectDoc{{Name: "A", Type: "mesh"}, {Name: "A", Type: "mesh"}}},
			msg:  "duplicate object",
		},
		{
			name: "Unknown type",
			doc:  document.Document{Objects: []document.ObjectDoc{{Name: "A", Type: "teapot"}}},
			msg:  "teapot",
		},
		{
			name: "Unknown child",
			doc:  document.Document{Collections: []document.CollectionDoc{{Name: "A", Children: []string{"B"}}}},
			msg:  "unknown child",
		},
		{
			name: "Cycle",
			doc: document.Document{Collections: []document.CollectionDoc{
				{Name: "A", Children: []string{"B"}},
				{Name: "B", Children: []string{"A"}},
			}},
			msg: "cannot link",
		},
		{
			name: "Unknown object",
			doc:  document.Document{Scenes: []document.SceneDoc{{Name: "S", Objects: []string{"Ghost"}}}},
			msg:  "unknown object",
		},
		{
			name: "Duplicate view layer",
			doc: document.Document{Scenes: []document.SceneDoc{{
				Name:       "S",
				ViewLayers: []document.ViewLayerDoc{{Name: "V"}, {Name: "V"}},
			}}},
			msg: "duplicate view layer",
		},
		{
			name: "Unknown node flag",
			doc: document.Document{Scenes: []document.SceneDoc{{
				Name:       "S",
				ViewLayers: []document.ViewLayerDoc{{Name: "V", Nodes: []document.NodeDoc{{Flags: []string{"glowing"}}}}},
			}}},
			msg: "glowing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.doc.Build(layer.NewEngine(nil))
			require.Error(t, err)
			assert.ErrorIs(t, err, document.ErrInvalid)
			assert.ErrorContains(t, err, tt.msg)
		})
	}

	t.Run("Suppressed", func(t *testing.T) {
		engine := layer.NewEngine(nil)
		engine.ResyncForbid()
		_, err := (&document.Document{}).Build(engine)
		assert.ErrorIs(t, err, document.ErrSuppressed)
	})
}

func TestNodeFlagNames(t *testing.T) {
	names := document.NodeFlagNames(layer.NodeExcluded | layer.NodeIndirectOnly)
	assert.Equal(t, []string{"excluded", "indirect_only"}, names)

	flag, err := document.ParseNodeFlag("hidden")
	require.NoError(t, err)
	assert.Equal(t, layer.NodeHidden, flag)
}
