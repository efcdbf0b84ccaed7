package layer

import (
	"layersync/core/scene"

	"go.uber.org/zap"
)

// syncPass carries the state of one Sync call.
type syncPass struct {
	engine   *Engine
	vl       *ViewLayer
	arena    *resyncArena
	index    baseIndex
	newBases []*Base
	moved    map[*Base]struct{}
}

// EnsureRoot makes sure vl has a single root node mirroring the scene's master
// collection. A tree rooted elsewhere (older data) is moved under a new root so
// the next sync can reuse its nodes.
func (e *Engine) EnsureRoot(s *Scene, vl *ViewLayer) {
	if s.Master == nil {
		return
	}
	if vl.root == nil {
		vl.root = newLayerNode(s.Master)
		return
	}
	if vl.root.Collection == s.Master {
		return
	}
	e.logger.Info("Wrapping view layer tree under master collection",
		zap.String("view_layer", vl.Name),
		zap.String("old_root", vl.root.Name()),
	)
	old := vl.root
	vl.root = newLayerNode(s.Master)
	vl.root.Children = []*LayerNode{old}
	old.parent = vl.root
}

// Sync rewrites vl's node tree and base cache to match the scene graph, reusing
// existing nodes, with their flags, and existing bases wherever possible.
//
// Sync never fails: a scene without master collection is left untouched, and
// dangling or duplicated data is repaired silently.
func (e *Engine) Sync(s *Scene, vl *ViewLayer) {
	if e.gate.Forbidden() {
		return
	}
	if s.Master == nil {
		return
	}

	e.EnsureRoot(s, vl)

	index := vl.ensureIndex(e.duplicateHandler(vl, false))

	// Collection derived flags are rebuilt from scratch.
	for _, b := range vl.bases.list {
		b.Flag &^= collectionBaseFlags
		b.fromCollection &^= collectionBaseFlags
	}

	arena := &resyncArena{nodes: make([]resyncNode, 0, 64)}
	root := arena.build(noParent, vl.root)

	pass := &syncPass{
		engine:   e,
		vl:       vl,
		arena:    arena,
		index:    index,
		newBases: make([]*Base, 0, len(vl.bases.list)),
		moved:    make(map[*Base]struct{}, len(vl.bases.list)),
	}

	vl.root.parent = nil
	vl.root.Runtime = 0
	pass.syncChildren(root, 0, 0, 0, allLocalBits)

	arena.freeUnused(vl, root, e.logger)

	// Bases not carried over belong to objects that are no longer reachable.
	for _, b := range vl.bases.list {
		if _, ok := pass.moved[b]; ok {
			continue
		}
		if vl.activeBase == b {
			vl.activeBase = nil
		}
		if b.Object != nil && index[b.Object] == b {
			delete(index, b.Object)
		}
	}
	clear(vl.bases.list)
	vl.bases.list = pass.newBases

	if e.strict {
		e.validate(vl, vl.root)
	}

	for _, b := range vl.bases.list {
		b.evalFlags()
	}

	if vl.active != nil && vl.active.hidden() {
		vl.ActivateParent(vl.active)
	} else if vl.active == nil {
		vl.active = vl.root
	}
}

// syncChildren builds the new child list of the node wrapped at idx, recursing
// into every child, then syncs the node's own objects. The node itself must
// already be valid for the current graph.
func (p *syncPass) syncChildren(idx int, parentFlag NodeFlag, collectionRestrict scene.CollectionFlag, layerRestrict NodeFlag, localBits uint16) {
	logger := p.engine.logger
	node := p.arena.nodes[idx].layer
	collection := p.arena.nodes[idx].collection

	children := make([]*LayerNode, 0, len(collection.Children))
	for _, childCollection := range collection.Children {
		childIdx := p.arena.find(idx, childCollection)

		if childIdx >= 0 {
			if p.arena.nodes[childIdx].used {
				logger.Debug("Found same layer node",
					zap.String("collection", childCollection.Name),
					zap.String("parent", collection.Name),
				)
			} else {
				logger.Debug("Reusing unused layer node",
					zap.String("collection", childCollection.Name),
					zap.String("parent", collection.Name),
				)
			}
			p.arena.nodes[childIdx].used = true
		} else {
			logger.Debug("Creating layer node",
				zap.String("collection", childCollection.Name),
				zap.String("parent", collection.Name),
			)
			child := newLayerNode(childCollection)
			child.Flag = parentFlag
			childIdx = p.arena.adopt(idx, child)
		}

		child := p.arena.nodes[childIdx].layer
		child.parent = node
		children = append(children, child)

		childLocalBits := localBits & child.LocalCollectionsBits

		// Restrictions are inherited; the master collection adds none.
		childCollectionRestrict := collectionRestrict
		childLayerRestrict := layerRestrict
		if !childCollection.IsMaster() {
			childCollectionRestrict |= childCollection.Flag
			childLayerRestrict |= child.Flag
		}

		child.Runtime = 0
		p.syncChildren(childIdx, child.Flag, childCollectionRestrict, childLayerRestrict, childLocalBits)

		// Exclusion is not inherited, and an excluded node has no runtime state.
		if child.Excluded() {
			child.Runtime = 0
			continue
		}

		// Viewport restriction and view layer visibility are kept apart: a node
		// hidden in the view layer can still be shown locally in a viewport.
		if childCollectionRestrict&scene.CollectionHideViewport != 0 {
			child.Runtime |= RuntimeHideViewport
		}
		if child.Runtime&RuntimeHideViewport == 0 && childLayerRestrict&NodeHidden == 0 {
			child.Runtime |= RuntimeVisibleViewLayer
		}
	}

	node.Children = children

	p.syncObjects(node, collectionRestrict, layerRestrict, localBits)
}

// syncObjects moves or creates the bases of the node's own objects into the new
// base list and accumulates the flags the node contributes to them.
func (p *syncPass) syncObjects(node *LayerNode, collectionRestrict scene.CollectionFlag, layerRestrict NodeFlag, localBits uint16) {
	if node.Excluded() {
		return
	}

	for _, ob := range node.Collection.Objects {
		if ob == nil {
			continue
		}

		b, ok := p.index[ob]
		if ok {
			if _, moved := p.moved[b]; !moved {
				p.moved[b] = struct{}{}
				p.newBases = append(p.newBases, b)
			}
		} else {
			b = newBase(ob)
			b.LocalCollectionsBits = localBits
			p.index[ob] = b
			p.moved[b] = struct{}{}
			p.newBases = append(p.newBases, b)
		}

		if collectionRestrict&scene.CollectionHideViewport == 0 {
			b.fromCollection |= BaseEnabledViewport | BaseVisibleDepsgraph
			if layerRestrict&NodeHidden == 0 {
				b.fromCollection |= BaseVisibleViewLayer
			}
			if collectionRestrict&scene.CollectionHideSelect == 0 {
				b.fromCollection |= BaseSelectable
			}
		}
		if collectionRestrict&scene.CollectionHideRender == 0 {
			b.fromCollection |= BaseEnabledRender
		}
		if node.Flag&NodeHoldout != 0 || ob.Visibility&scene.ObjectHoldout != 0 {
			b.fromCollection |= BaseHoldout
		}
		if node.Flag&NodeIndirectOnly != 0 {
			b.fromCollection |= BaseIndirectOnly
		}

		node.Runtime |= RuntimeHasObjects
	}
}

// validate reports objects of non-excluded nodes that have no base.
func (e *Engine) validate(vl *ViewLayer, n *LayerNode) bool {
	if !n.Excluded() {
		for _, ob := range n.Collection.Objects {
			if ob == nil {
				continue
			}
			if vl.bases.Find(ob) == nil {
				e.logger.Error("Object has no base in view layer",
					zap.String("view_layer", vl.Name),
					zap.String("object", ob.Name),
					zap.String("collection", n.Name()),
				)
				return false
			}
		}
	}
	for _, child := range n.Children {
		if !e.validate(vl, child) {
			return false
		}
	}
	return true
}
