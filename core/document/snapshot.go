package document

import (
	"layersync/core/layer"
	"layersync/core/scene"
)

// FromDatabase captures db, including the persistent state of every view
// layer. Object and collection names are expected to be unique.
func FromDatabase(db *layer.Database) *Document {
	doc := &Document{Version: Version}

	for _, ob := range db.Graph.Objects {
		doc.Objects = append(doc.Objects, ObjectDoc{
			Name:         ob.Name,
			Type:         ob.Type.String(),
			Modes:        ob.Mode.Names(),
			HideViewport: ob.Visibility&scene.ObjectHideViewport != 0,
			HideRender:   ob.Visibility&scene.ObjectHideRender != 0,
			HideSelect:   ob.Visibility&scene.ObjectHideSelect != 0,
			Holdout:      ob.Visibility&scene.ObjectHoldout != 0,
			Library:      ob.Library,
			Selected:     ob.Selected,
		})
	}

	for _, c := range db.Graph.Collections {
		if c.IsMaster() || c.Deleted() {
			continue
		}
		doc.Collections = append(doc.Collections, CollectionDoc{
			Name:         c.Name,
			HideSelect:   c.Flag&scene.CollectionHideSelect != 0,
			HideViewport: c.Flag&scene.CollectionHideViewport != 0,
			HideRender:   c.Flag&scene.CollectionHideRender != 0,
			Children:     collectionNames(c.Children),
			Objects:      objectNames(c.Objects),
		})
	}

	for _, s := range db.Scenes {
		sd := SceneDoc{Name: s.Name, ViewLayers: []ViewLayerDoc{}}
		if s.Master != nil {
			sd.Children = collectionNames(s.Master.Children)
			sd.Objects = objectNames(s.Master.Objects)
		}
		for _, vl := range s.ViewLayers {
			sd.ViewLayers = append(sd.ViewLayers, viewLayerDoc(vl))
		}
		doc.Scenes = append(doc.Scenes, sd)
	}

	for _, vp := range db.Viewports {
		doc.Viewports = append(doc.Viewports, ViewportDoc{
			Name:                vp.Name,
			LocalCollectionsBit: vp.LocalCollectionsBit,
			UseLocalCollections: vp.UseLocalCollections,
			LocalViewBit:        vp.LocalViewBit,
			InLocalView:         vp.InLocalView,
			ExcludeTypes:        typeNames(vp.ExcludeTypes),
		})
	}
	return doc
}

func viewLayerDoc(vl *layer.ViewLayer) ViewLayerDoc {
	vd := ViewLayerDoc{Name: vl.Name}
	if n := vl.ActiveNode(); n != nil && n != vl.Root() {
		vd.Active = n.Path()
	}
	if b := vl.ActiveBase(); b != nil {
		vd.ActiveBase = b.Object.Name
	}

	if root := vl.Root(); root != nil {
		root.Walk(func(n *layer.LayerNode) bool {
			vd.Nodes = append(vd.Nodes, NodeDoc{
				Path:      n.Path(),
				Flags:     NodeFlagNames(n.Flag),
				LocalBits: n.LocalCollectionsBits,
			})
			return true
		})
	}

	for _, b := range vl.Bases() {
		vd.Bases = append(vd.Bases, BaseDoc{
			Object:        b.Object.Name,
			Selected:      b.Has(layer.BaseSelected),
			Hidden:        b.Has(layer.BaseHidden),
			LocalViewBits: b.LocalViewBits,
		})
	}
	return vd
}

func collectionNames(cs []*scene.Collection) []string {
	names := make([]string, 0, len(cs))
	for _, c := range cs {
		names = append(names, c.Name)
	}
	return names
}

func objectNames(obs []*scene.Object) []string {
	names := make([]string, 0, len(obs))
	for _, ob := range obs {
		names = append(names, ob.Name)
	}
	return names
}
