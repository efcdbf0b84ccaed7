package layer

// SetNodeVisible shows or hides n in the view layer. With hierarchy the whole
// subtree and the bases of its objects follow; otherwise only n's own flag
// changes. The caller resyncs afterwards.
func (vl *ViewLayer) SetNodeVisible(n *LayerNode, visible, hierarchy bool) {
	if !hierarchy {
		if visible {
			n.Flag &^= NodeHidden
		} else {
			n.Flag |= NodeHidden
		}
		return
	}

	if visible {
		clearFlagAll(n, NodeHidden)
	} else {
		setFlagAll(n, NodeHidden)
	}
	n.Walk(func(c *LayerNode) bool {
		if c.Excluded() {
			return true
		}
		for _, ob := range c.Collection.Objects {
			b := vl.FindBase(ob)
			if b == nil {
				continue
			}
			if visible {
				b.Flag &^= BaseHidden
			} else {
				b.Flag |= BaseHidden
			}
		}
		return true
	})
}

// IsolateGlobal makes n the only visible node of the view layer, keeping its
// ancestors visible. With extend, other nodes keep their state and an already
// visible n is hidden instead.
func (e *Engine) IsolateGlobal(s *Scene, vl *ViewLayer, n *LayerNode, extend bool) {
	root := vl.root
	hideIt := extend && n.VisibleInViewLayer()

	if !extend {
		for _, child := range root.Children {
			setFlagAll(child, NodeHidden)
		}
	}

	if hideIt {
		n.Flag |= NodeHidden
	} else {
		for p := n.parent; p != nil && p != root; p = p.parent {
			p.Flag &^= NodeHidden
		}
		clearFlagAll(n, NodeHidden)
		vl.Activate(n)
	}

	e.Sync(s, vl)
}

// BaseSetVisible hides every other base and shows b, or with extend toggles b
// only, then resyncs vl.
func (e *Engine) BaseSetVisible(s *Scene, vl *ViewLayer, b *Base, extend bool) {
	if extend {
		b.Flag ^= BaseHidden
	} else {
		for _, other := range vl.bases.list {
			other.Flag |= BaseHidden
		}
		b.Flag &^= BaseHidden
	}
	e.Sync(s, vl)
}
