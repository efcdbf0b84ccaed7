package document

import (
	"errors"
	"fmt"

	"layersync/core/layer"
	"layersync/core/scene"
)

// ErrSuppressed is returned by Build while the engine's resyncs are forbidden.
var ErrSuppressed = errors.New("resync is suppressed")

// builder resolves names while a document is turned into a database.
type builder struct {
	db          *layer.Database
	objects     map[string]*scene.Object
	collections map[string]*scene.Collection
}

// Build creates a database from doc, syncs every view layer, applies the
// stored node and base state and syncs again. State that refers to collection
// paths or objects that no longer exist is ignored.
func (doc *Document) Build(engine *layer.Engine) (*layer.Database, error) {
	if engine.Gate().Forbidden() {
		return nil, ErrSuppressed
	}

	b := &builder{
		db:          layer.NewDatabase(),
		objects:     make(map[string]*scene.Object, len(doc.Objects)),
		collections: make(map[string]*scene.Collection, len(doc.Collections)),
	}

	for _, od := range doc.Objects {
		if err := b.addObject(od); err != nil {
			return nil, err
		}
	}
	for _, cd := range doc.Collections {
		if err := b.addCollection(cd); err != nil {
			return nil, err
		}
	}
	for _, cd := range doc.Collections {
		if err := b.link(b.collections[cd.Name], cd.Children, cd.Objects); err != nil {
			return nil, err
		}
	}
	for _, sd := range doc.Scenes {
		if err := b.addScene(sd); err != nil {
			return nil, err
		}
	}
	for _, vd := range doc.Viewports {
		if err := b.addViewport(vd); err != nil {
			return nil, err
		}
	}

	engine.SyncAll(b.db)

	for i, sd := range doc.Scenes {
		s := b.db.Scenes[i]
		for j, vd := range sd.ViewLayers {
			if err := b.applyState(s.ViewLayers[j], vd); err != nil {
				return nil, fmt.Errorf("scene %s, view layer %s: %w", sd.Name, vd.Name, err)
			}
		}
	}

	engine.SyncAll(b.db)

	// Active nodes are restored last so the resync does not move them.
	for i, sd := range doc.Scenes {
		for j, vd := range sd.ViewLayers {
			vl := b.db.Scenes[i].ViewLayers[j]
			if n := vl.NodeByPath(vd.Active); vd.Active != "" && n != nil {
				vl.Activate(n)
			}
		}
	}
	return b.db, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

func (b *builder) addObject(od ObjectDoc) error {
	if od.Name == "" {
		return invalid("object without name")
	}
	if _, dup := b.objects[od.Name]; dup {
		return invalid("duplicate object %q", od.Name)
	}
	typ, err := scene.ParseObjectType(od.Type)
	if err != nil {
		return invalid("object %q: %v", od.Name, err)
	}
	mode, err := scene.ParseObjectMode(od.Modes)
	if err != nil {
		return invalid("object %q: %v", od.Name, err)
	}

	ob := b.db.Graph.NewObject(od.Name, typ)
	ob.Mode = mode
	ob.Library = od.Library
	ob.Selected = od.Selected
	if od.HideViewport {
		ob.Visibility |= scene.ObjectHideViewport
	}
	if od.HideRender {
		ob.Visibility |= scene.ObjectHideRender
	}
	if od.HideSelect {
		ob.Visibility |= scene.ObjectHideSelect
	}
	if od.Holdout {
		ob.Visibility |= scene.ObjectHoldout
	}
	b.objects[od.Name] = ob
	return nil
}

func (b *builder) addCollection(cd CollectionDoc) error {
	if cd.Name == "" {
		return invalid("collection without name")
	}
	if _, dup := b.collections[cd.Name]; dup {
		return invalid("duplicate collection %q", cd.Name)
	}
	c := b.db.Graph.NewCollection(cd.Name)
	if cd.HideSelect {
		c.Flag |= scene.CollectionHideSelect
	}
	if cd.HideViewport {
		c.Flag |= scene.CollectionHideViewport
	}
	if cd.HideRender {
		c.Flag |= scene.CollectionHideRender
	}
	b.collections[cd.Name] = c
	return nil
}

func (b *builder) link(parent *scene.Collection, children, objects []string) error {
	for _, name := range children {
		child, ok := b.collections[name]
		if !ok {
			return invalid("collection %q: unknown child %q", parent.Name, name)
		}
		if !parent.Link(child) {
			return invalid("collection %q: cannot link %q", parent.Name, name)
		}
	}
	for _, name := range objects {
		ob, ok := b.objects[name]
		if !ok {
			return invalid("collection %q: unknown object %q", parent.Name, name)
		}
		parent.AddObject(ob)
	}
	return nil
}

func (b *builder) addScene(sd SceneDoc) error {
	if sd.Name == "" {
		return invalid("scene without name")
	}
	if b.db.Scene(sd.Name) != nil {
		return invalid("duplicate scene %q", sd.Name)
	}
	s := b.db.NewScene(sd.Name)
	if err := b.link(s.Master, sd.Children, sd.Objects); err != nil {
		return err
	}
	for _, vd := range sd.ViewLayers {
		if s.ViewLayer(vd.Name) != nil {
			return invalid("scene %q: duplicate view layer %q", sd.Name, vd.Name)
		}
		s.AddViewLayer(vd.Name)
	}
	return nil
}

func (b *builder) addViewport(vd ViewportDoc) error {
	mask, err := typeMask(vd.ExcludeTypes)
	if err != nil {
		return invalid("viewport %q: %v", vd.Name, err)
	}
	b.db.AddViewport(&layer.Viewport{
		Name:                vd.Name,
		LocalCollectionsBit: vd.LocalCollectionsBit,
		UseLocalCollections: vd.UseLocalCollections,
		LocalViewBit:        vd.LocalViewBit,
		InLocalView:         vd.InLocalView,
		ExcludeTypes:        mask,
	})
	return nil
}

func (b *builder) applyState(vl *layer.ViewLayer, vd ViewLayerDoc) error {
	for _, nd := range vd.Nodes {
		flags, err := parseNodeFlags(nd.Flags)
		if err != nil {
			return invalid("node %q: %v", nd.Path, err)
		}
		n := vl.NodeByPath(nd.Path)
		if n == nil {
			continue
		}
		n.Flag = flags
		n.LocalCollectionsBits = nd.LocalBits
	}

	for _, bd := range vd.Bases {
		base := vl.FindBase(b.objects[bd.Object])
		if base == nil {
			continue
		}
		base.Flag &^= layer.BaseSelected | layer.BaseHidden
		if bd.Selected {
			base.Flag |= layer.BaseSelected
		}
		if bd.Hidden {
			base.Flag |= layer.BaseHidden
		}
		base.LocalViewBits = bd.LocalViewBits
	}

	if vd.ActiveBase != "" {
		vl.SetActiveBase(vl.FindBase(b.objects[vd.ActiveBase]))
	}
	return nil
}
