package scene_test

import (
	"testing"

	"layersync/core/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_Link(t *testing.T) {
	g := scene.NewGraph()
	master := g.NewMasterCollection("Scene Collection")
	a := g.NewCollection("A")
	b := g.NewCollection("B")

	require.True(t, master.Link(a))
	require.True(t, a.Link(b))

	t.Run("Duplicate", func(t *testing.T) {
		assert.False(t, master.Link(a))
	})
	t.Run("Cycle", func(t *testing.T) {
		assert.False(t, b.Link(a))
		assert.False(t, b.Link(b))
	})
	t.Run("Master as child", func(t *testing.T) {
		assert.False(t, a.Link(master))
	})
	t.Run("Multiple parents", func(t *testing.T) {
		assert.True(t, master.Link(b))
		assert.ElementsMatch(t, []*scene.Collection{a, master}, b.Parents)
	})
}

func TestCollection_Unlink(t *testing.T) {
	g := scene.NewGraph()
	master := g.NewMasterCollection("Scene Collection")
	a := g.NewCollection("A")
	master.Link(a)

	assert.True(t, master.Unlink(a))
	assert.False(t, master.Unlink(a))
	assert.Empty(t, master.Children)
	assert.Empty(t, a.Parents)
}

func TestGraph_RemoveCollection(t *testing.T) {
	g := scene.NewGraph()
	master := g.NewMasterCollection("Scene Collection")
	a := g.NewCollection("A")
	b := g.NewCollection("B")
	master.Link(a)
	a.Link(b)

	assert.False(t, g.RemoveCollection(master))
	assert.True(t, g.RemoveCollection(a))
	assert.True(t, a.Deleted())
	assert.Empty(t, master.Children)
	assert.Empty(t, b.Parents)
	assert.Nil(t, g.FindCollection("A"))
	assert.False(t, master.Link(a))
}

func TestGraph_RemapObject(t *testing.T) {
	g := scene.NewGraph()
	a := g.NewCollection("A")
	b := g.NewCollection("B")
	o1 := g.NewObject("O1", scene.ObjectMesh)
	o2 := g.NewObject("O2", scene.ObjectMesh)
	a.AddObject(o1)
	b.AddObject(o1)
	b.AddObject(o2)

	g.RemapObject(o1, o2)

	assert.Equal(t, []*scene.Object{o2}, a.Objects)
	assert.Equal(t, []*scene.Object{o2}, b.Objects)
	assert.Nil(t, g.FindObject("O1"))
}

func TestGraph_RemoveObject(t *testing.T) {
	g := scene.NewGraph()
	a := g.NewCollection("A")
	ob := g.NewObject("Cube", scene.ObjectMesh)
	a.AddObject(ob)
	assert.False(t, a.AddObject(ob))

	assert.True(t, g.RemoveObject(ob))
	assert.Empty(t, a.Objects)
	assert.False(t, g.RemoveObject(ob))
}
