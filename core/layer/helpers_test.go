package layer

import (
	"testing"

	"layersync/core/scene"

	"go.uber.org/zap"
)

// fixture is a database with one scene and one view layer.
type fixture struct {
	db     *Database
	graph  *scene.Graph
	scene  *Scene
	master *scene.Collection
	vl     *ViewLayer
	engine *Engine
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	db := NewDatabase()
	s := db.NewScene("Scene")
	vl := s.AddViewLayer("ViewLayer")
	return &fixture{
		db:     db,
		graph:  db.Graph,
		scene:  s,
		master: s.Master,
		vl:     vl,
		engine: NewEngine(zap.NewNop(), opts...),
	}
}

func (f *fixture) collection(name string, parent *scene.Collection) *scene.Collection {
	c := f.graph.NewCollection(name)
	parent.Link(c)
	return c
}

func (f *fixture) object(name string, in ...*scene.Collection) *scene.Object {
	ob := f.graph.NewObject(name, scene.ObjectMesh)
	for _, c := range in {
		c.AddObject(ob)
	}
	return ob
}

func (f *fixture) sync() {
	f.engine.Sync(f.scene, f.vl)
}

// node returns the node at a collection path, failing the test when missing.
func (f *fixture) node(t *testing.T, path string) *LayerNode {
	t.Helper()
	n := f.vl.NodeByPath(path)
	if n == nil {
		t.Fatalf("no layer node at %q", path)
	}
	return n
}

func childNames(n *LayerNode) []string {
	names := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		names = append(names, c.Name())
	}
	return names
}

func baseNames(vl *ViewLayer) []string {
	names := make([]string, 0, vl.bases.Len())
	for _, b := range vl.Bases() {
		names = append(names, b.Object.Name)
	}
	return names
}

func allNodes(vl *ViewLayer) []*LayerNode {
	var nodes []*LayerNode
	vl.Root().Walk(func(n *LayerNode) bool {
		nodes = append(nodes, n)
		return true
	})
	return nodes
}
