package layer

import (
	"strings"

	"layersync/core/scene"
)

// ViewLayer is an alternate view of a scene with its own visibility and
// selection state.
type ViewLayer struct {
	Name string

	root       *LayerNode
	bases      BaseCache
	active     *LayerNode
	activeBase *Base
}

// NewViewLayer creates a view layer with no tree yet. The first sync creates
// the root node for the scene's master collection.
func NewViewLayer(name string) *ViewLayer {
	return &ViewLayer{Name: name}
}

// Root returns the node mirroring the master collection.
func (vl *ViewLayer) Root() *LayerNode {
	return vl.root
}

// Cache returns the base cache.
func (vl *ViewLayer) Cache() *BaseCache {
	return &vl.bases
}

// Bases returns the bases in order. Callers must not modify the slice.
func (vl *ViewLayer) Bases() []*Base {
	return vl.bases.list
}

// FindBase returns the base of ob, or nil when ob is not part of the view layer.
func (vl *ViewLayer) FindBase(ob *scene.Object) *Base {
	return vl.ensureIndex(nil)[ob]
}

func (vl *ViewLayer) ensureIndex(onDuplicate func(*Base)) baseIndex {
	return vl.bases.ensure(func(b *Base) {
		if vl.activeBase == b {
			vl.activeBase = nil
		}
		if onDuplicate != nil {
			onDuplicate(b)
		}
	})
}

// ActiveNode returns the node new content is added to.
func (vl *ViewLayer) ActiveNode() *LayerNode {
	return vl.active
}

// Activate makes n the active node. Excluded nodes cannot be activated.
func (vl *ViewLayer) Activate(n *LayerNode) bool {
	if n == nil || n.Excluded() {
		return false
	}
	vl.active = n
	return true
}

// ActivateParent activates the nearest visible ancestor of n, or the root when
// every ancestor is hidden.
func (vl *ViewLayer) ActivateParent(n *LayerNode) *LayerNode {
	p := n.parent
	for p != nil && p.hidden() {
		p = p.parent
	}
	if p == nil {
		p = vl.root
	}
	vl.active = p
	return p
}

// hidden reports whether n or one of its ancestors is excluded or hidden, by
// the view layer or by the collection's viewport restriction.
func (n *LayerNode) hidden() bool {
	for c := n; c != nil; c = c.parent {
		if c.Flag&(NodeExcluded|NodeHidden) != 0 {
			return true
		}
		if c.Collection != nil && c.Collection.Flag&scene.CollectionHideViewport != 0 {
			return true
		}
	}
	return false
}

// ActiveBase returns the active base, if any.
func (vl *ViewLayer) ActiveBase() *Base {
	return vl.activeBase
}

// SetActiveBase makes b active without touching its selection. nil clears it.
func (vl *ViewLayer) SetActiveBase(b *Base) {
	vl.activeBase = b
}

// DeselectAll clears the selection of every base.
func (vl *ViewLayer) DeselectAll() {
	for _, b := range vl.bases.list {
		b.Flag &^= BaseSelected
	}
}

// SelectAndSetActive makes b active and selects it when it is selectable.
func (vl *ViewLayer) SelectAndSetActive(b *Base) {
	vl.activeBase = b
	if b.Flag&BaseSelectable != 0 {
		b.Flag |= BaseSelected
	}
}

// NodeByPath returns the node at the given collection path, the root for an
// empty path.
func (vl *ViewLayer) NodeByPath(path string) *LayerNode {
	n := vl.root
	if n == nil || path == "" {
		return n
	}
	for _, name := range strings.Split(path, PathSeparator) {
		var next *LayerNode
		for _, child := range n.Children {
			if child.Name() == name {
				next = child
				break
			}
		}
		if next == nil {
			return nil
		}
		n = next
	}
	return n
}

// Scene binds a master collection to the view layers mirroring it.
type Scene struct {
	Name       string
	Master     *scene.Collection
	ViewLayers []*ViewLayer
}

// AddViewLayer appends a new view layer. The caller syncs it.
func (s *Scene) AddViewLayer(name string) *ViewLayer {
	vl := NewViewLayer(name)
	s.ViewLayers = append(s.ViewLayers, vl)
	return vl
}

// ViewLayer returns the view layer with the given name.
func (s *Scene) ViewLayer(name string) *ViewLayer {
	for _, vl := range s.ViewLayers {
		if vl.Name == name {
			return vl
		}
	}
	return nil
}

// HasObject reports whether ob has a base in any view layer of s.
func (s *Scene) HasObject(ob *scene.Object) bool {
	for _, vl := range s.ViewLayers {
		if vl.FindBase(ob) != nil {
			return true
		}
	}
	return false
}

// Database holds the scene graph, all scenes and the viewports looking at them.
type Database struct {
	Graph     *scene.Graph
	Scenes    []*Scene
	Viewports []*Viewport
}

// NewDatabase creates an empty database.
func NewDatabase() *Database {
	return &Database{Graph: scene.NewGraph()}
}

// NewScene creates a scene with a fresh master collection and no view layers.
func (db *Database) NewScene(name string) *Scene {
	s := &Scene{Name: name, Master: db.Graph.NewMasterCollection(name)}
	db.Scenes = append(db.Scenes, s)
	return s
}

// Scene returns the scene with the given name.
func (db *Database) Scene(name string) *Scene {
	for _, s := range db.Scenes {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// AddViewport registers a viewport.
func (db *Database) AddViewport(vp *Viewport) {
	db.Viewports = append(db.Viewports, vp)
}
