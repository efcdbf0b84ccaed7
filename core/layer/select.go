package layer

import "layersync/core/scene"

// ObjectsSelect selects, or deselects, the bases of every object below n.
// It reports whether any base changed.
func (vl *ViewLayer) ObjectsSelect(n *LayerNode, deselect bool) bool {
	if n.Collection.Flag&scene.CollectionHideSelect != 0 {
		return false
	}

	changed := false
	if !n.Excluded() {
		for _, ob := range n.Collection.Objects {
			b := vl.FindBase(ob)
			if b == nil {
				continue
			}
			if deselect {
				if b.Flag&BaseSelected != 0 {
					b.Flag &^= BaseSelected
					changed = true
				}
			} else if b.Flag&BaseSelectable != 0 && b.Flag&BaseSelected == 0 {
				b.Flag |= BaseSelected
				changed = true
			}
		}
	}

	for _, child := range n.Children {
		if vl.ObjectsSelect(child, deselect) {
			changed = true
		}
	}
	return changed
}

// HasSelectedObjects reports whether a visible, selected object lives below n.
func (vl *ViewLayer) HasSelectedObjects(n *LayerNode) bool {
	if n.Collection.Flag&scene.CollectionHideSelect != 0 {
		return false
	}

	if !n.Excluded() {
		for _, ob := range n.Collection.Objects {
			b := vl.FindBase(ob)
			if b != nil && b.Has(BaseSelected|BaseVisibleDepsgraph) {
				return true
			}
		}
	}

	for _, child := range n.Children {
		if vl.HasSelectedObjects(child) {
			return true
		}
	}
	return false
}
