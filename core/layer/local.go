package layer

// LocalSync recomputes the local collection visibility of viewport bit on every
// base of vl. It does not touch the tree structure or the base list and can be
// run any number of times.
func (e *Engine) LocalSync(vl *ViewLayer, bit uint16) {
	if e.gate.Forbidden() || vl.root == nil {
		return
	}

	for _, b := range vl.bases.list {
		b.LocalCollectionsBits &^= bit
	}
	localSyncNode(vl, vl.root, bit, true)
}

func localSyncNode(vl *ViewLayer, n *LayerNode, bit uint16, visible bool) {
	if n.LocalCollectionsBits&bit == 0 {
		visible = false
	}

	if visible {
		for _, ob := range n.Collection.Objects {
			if ob == nil {
				continue
			}
			if b := vl.FindBase(ob); b != nil {
				b.LocalCollectionsBits |= bit
			}
		}
	}

	for _, child := range n.Children {
		if !child.Excluded() {
			localSyncNode(vl, child, bit, visible)
		}
	}
}

// LocalSyncAll runs LocalSync for every view layer and every viewport that uses
// local collections.
func (e *Engine) LocalSyncAll(db *Database) {
	if e.gate.Forbidden() {
		return
	}
	for _, s := range db.Scenes {
		for _, vl := range s.ViewLayers {
			for _, vp := range db.Viewports {
				if vp.UseLocalCollections {
					e.LocalSync(vl, vp.LocalCollectionsBit)
				}
			}
		}
	}
}

// IsolateLocal shows n in the viewport identified by bit. Without extend every
// other node is hidden locally first; with extend an already visible n is
// hidden instead.
func (e *Engine) IsolateLocal(vl *ViewLayer, n *LayerNode, bit uint16, extend bool) {
	root := vl.root
	hideIt := extend && n.LocalCollectionsBits&bit != 0

	if !extend {
		for _, child := range root.Children {
			setLocalBits(child, bit, false)
		}
	}

	if hideIt {
		n.LocalCollectionsBits &^= bit
	} else {
		for p := n.parent; p != nil && p != root; p = p.parent {
			p.LocalCollectionsBits |= bit
		}
		setLocalBits(n, bit, true)
	}

	e.LocalSync(vl, bit)
}

func setLocalBits(n *LayerNode, bit uint16, value bool) {
	n.Walk(func(c *LayerNode) bool {
		if value {
			c.LocalCollectionsBits |= bit
		} else {
			c.LocalCollectionsBits &^= bit
		}
		return true
	})
}
