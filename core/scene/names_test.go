package scene_test

import (
	"testing"

	"layersync/core/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectType_Names(t *testing.T) {
	for typ := scene.ObjectEmpty; typ <= scene.ObjectGreasePencil; typ++ {
		parsed, err := scene.ParseObjectType(typ.String())
		require.NoError(t, err, typ.String())
		assert.Equal(t, typ, parsed)
	}

	assert.Equal(t, "ObjectType(42)", scene.ObjectType(42).String())
	_, err := scene.ParseObjectType("teapot")
	assert.Error(t, err)
}

func TestObjectMode_Names(t *testing.T) {
	tests := []struct {
		name  string
		mode  scene.ObjectMode
		names []string
	}{
		{"Object", scene.ModeObject, nil},
		{"Edit", scene.ModeEdit, []string{"edit"}},
		{"Combined", scene.ModeSculpt | scene.ModePose, []string{"sculpt", "pose"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.names, tt.mode.Names())
			parsed, err := scene.ParseObjectMode(tt.names)
			require.NoError(t, err)
			assert.Equal(t, tt.mode, parsed)
		})
	}

	_, err := scene.ParseObjectMode([]string{"edit", "juggle"})
	assert.ErrorContains(t, err, "juggle")
}
