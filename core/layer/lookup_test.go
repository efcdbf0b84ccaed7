package layer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewLayer_Lookup(t *testing.T) {
	f := newFixture(t)
	a := f.collection("A", f.master)
	f.collection("A1", a)
	b := f.collection("B", f.master)
	b.Link(a)
	f.sync()

	// root, A, B, A/A1, B/A, B/A/A1
	assert.Equal(t, 6, f.vl.Count())

	t.Run("Index order", func(t *testing.T) {
		want := []string{"", "A", "B", "A/A1", "B/A", "B/A/A1"}
		for i, path := range want {
			n := f.vl.NodeFromIndex(i)
			if assert.NotNil(t, n, path) {
				assert.Equal(t, path, n.Path())
				assert.Equal(t, i, f.vl.IndexOf(n))
			}
		}
		assert.Nil(t, f.vl.NodeFromIndex(len(want)))
		assert.Nil(t, f.vl.NodeFromIndex(-1))
		assert.Equal(t, -1, f.vl.IndexOf(newLayerNode(a)))

		indexes := f.vl.Indexes()
		assert.Len(t, indexes, len(want))
		for n, i := range indexes {
			assert.Same(t, f.vl.NodeFromIndex(i), n)
		}
	})
	t.Run("Path", func(t *testing.T) {
		assert.Same(t, f.vl.Root(), f.vl.NodeByPath(""))
		assert.Equal(t, "B/A/A1", f.node(t, "B/A/A1").Path())
		assert.Nil(t, f.vl.NodeByPath("B/Missing"))
	})
	t.Run("By collection", func(t *testing.T) {
		assert.Same(t, f.node(t, "A"), f.vl.FirstFromCollection(a))
		assert.True(t, f.vl.HasCollection(b))
		assert.False(t, f.vl.HasCollection(f.graph.NewCollection("Unlinked")))
	})
	t.Run("Contains", func(t *testing.T) {
		assert.True(t, f.node(t, "B").Contains(f.node(t, "B/A/A1")))
		assert.False(t, f.node(t, "A").Contains(f.node(t, "B/A/A1")))
	})
}

func TestViewLayer_LookupEmpty(t *testing.T) {
	vl := NewViewLayer("Empty")

	assert.Zero(t, vl.Count())
	assert.Nil(t, vl.NodeFromIndex(0))
	assert.Equal(t, -1, vl.IndexOf(nil))
	assert.Nil(t, vl.NodeByPath("A"))
	assert.Nil(t, vl.FirstFromCollection(nil))
}
