package layer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestResyncArena_Build(t *testing.T) {
	f := newFixture(t)
	a := f.collection("A", f.master)
	a1 := f.collection("A1", a)
	b := f.collection("B", f.master)
	f.sync()

	a.Unlink(a1)
	f.graph.RemoveCollection(b)

	arena := &resyncArena{}
	root := arena.build(noParent, f.vl.Root())
	require.Equal(t, 0, root)
	require.Len(t, arena.nodes, 4)

	byName := map[string]resyncNode{}
	for _, n := range arena.nodes {
		byName[n.layer.Name()] = n
	}

	tests := []struct {
		name                                string
		usable, asChild, asParent, wantUsed bool
	}{
		{name: f.master.Name, usable: true, asChild: true, asParent: true, wantUsed: true},
		{name: "A", usable: true, asChild: true, asParent: false, wantUsed: true},
		{name: "A1", usable: true, asChild: false, asParent: true, wantUsed: false},
		{name: "B", usable: false, asChild: false, asParent: false, wantUsed: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := byName[tt.name]
			require.True(t, ok)
			assert.Equal(t, tt.usable, n.usable, "usable")
			assert.Equal(t, tt.asChild, n.validAsChild, "validAsChild")
			assert.Equal(t, tt.asParent, n.validAsParent, "validAsParent")
			assert.Equal(t, tt.wantUsed, n.used, "used")
		})
	}
}

func TestResyncArena_FindPrefersCloserRelatives(t *testing.T) {
	f := newFixture(t)
	p := f.collection("P", f.master)
	q := f.collection("Q", f.master)
	pc := f.collection("C", p)
	qc := f.collection("C", q)
	shared := f.collection("Shared", pc)
	qc.Link(shared)
	f.sync()

	// Shared leaves both copies; a new parent under Q should take the copy
	// that used to live under Q/C rather than the one under P/C.
	pc.Unlink(shared)
	qc.Unlink(shared)
	target := f.collection("Target", q)
	target.Link(shared)

	wantNode := f.node(t, "Q/C/Shared")
	otherNode := f.node(t, "P/C/Shared")

	arena := &resyncArena{}
	arena.build(noParent, f.vl.Root())

	var qIdx int
	for i, n := range arena.nodes {
		if n.layer == f.node(t, "Q") {
			qIdx = i
		}
	}
	targetIdx := arena.adopt(qIdx, newLayerNode(target))

	found := arena.find(targetIdx, shared)
	require.NotEqual(t, -1, found)
	assert.Same(t, wantNode, arena.nodes[found].layer)
	assert.NotSame(t, otherNode, arena.nodes[found].layer)
}

func TestResyncArena_FindSkipsClaimedNodes(t *testing.T) {
	f := newFixture(t)
	p := f.collection("P", f.master)
	c := f.collection("C", p)
	q := f.collection("Q", f.master)
	f.sync()

	q.Link(c)
	arena := &resyncArena{}
	arena.build(noParent, f.vl.Root())

	qIdx := -1
	for i, n := range arena.nodes {
		if n.layer == f.node(t, "Q") {
			qIdx = i
		}
	}
	require.NotEqual(t, -1, qIdx)
	assert.Equal(t, -1, arena.find(qIdx, c), "a consistent link elsewhere is never stolen")
}

func TestResyncArena_FindClimbsPastOnlyChildren(t *testing.T) {
	f := newFixture(t)
	p := f.collection("P", f.master)
	q := f.collection("Q", p)
	a := f.collection("A", f.master)
	f.sync()

	nodeA := f.node(t, "A")
	nodeA.Flag |= NodeHoldout

	// P and Q have no siblings, so the search has to climb two levels
	// before it reaches A.
	f.master.Unlink(a)
	q.Link(a)
	f.sync()

	moved := f.node(t, "P/Q/A")
	assert.Same(t, nodeA, moved)
	assert.Equal(t, NodeHoldout, moved.Flag)
	assert.Same(t, f.node(t, "P/Q"), moved.Parent())
	assert.Equal(t, []string{"P"}, childNames(f.vl.Root()))
}

func TestResyncArena_FreeUnused(t *testing.T) {
	f := newFixture(t)
	a := f.collection("A", f.master)
	f.collection("A1", a)
	f.sync()

	nodeA, nodeA1 := f.node(t, "A"), f.node(t, "A/A1")
	f.graph.RemoveCollection(a)

	arena := &resyncArena{}
	root := arena.build(noParent, f.vl.Root())
	arena.freeUnused(f.vl, root, zap.NewNop())

	assert.Nil(t, nodeA.Collection)
	assert.Nil(t, nodeA.Children)
	assert.Nil(t, nodeA1.Collection)
	assert.Nil(t, nodeA1.Parent())
	assert.NotNil(t, f.vl.Root().Collection)
}
