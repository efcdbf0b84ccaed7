package layer

import (
	"layersync/core/scene"

	"go.uber.org/zap"
)

// resyncNode wraps one node of the old tree for the duration of a sync.
//
// parent and children describe the old hierarchy and are never rewired to
// follow the new one, so searches keep seeing where each node used to live.
type resyncNode struct {
	layer      *LayerNode
	collection *scene.Collection
	parent     int
	children   []int

	// usable: the collection still resolves.
	usable bool
	// validAsParent: at least one old child is still a child in the graph.
	validAsParent bool
	// validAsChild: the collection is still a child of the old parent's collection.
	validAsChild bool
	// used: the whole chain up to the root still matches the graph, or the node
	// was already claimed by this sync.
	used bool
}

const noParent = -1

// resyncArena holds every resyncNode of one sync call.
type resyncArena struct {
	nodes []resyncNode
	queue []int
}

// build wraps layer and its old subtree, computing validity top-down. It returns
// the index of the wrapper for layer.
func (a *resyncArena) build(parent int, layer *LayerNode) int {
	idx := len(a.nodes)
	a.nodes = append(a.nodes, resyncNode{layer: layer, parent: parent})

	n := &a.nodes[idx]
	n.usable = layer.usable()
	if n.usable {
		n.collection = layer.Collection
	}
	if parent == noParent {
		n.validAsChild = n.usable
		n.used = n.validAsChild
	} else {
		p := &a.nodes[parent]
		n.validAsChild = n.usable && p.usable && p.collection.HasChild(n.collection)
		n.used = n.validAsChild && p.used
	}

	if len(layer.Children) == 0 {
		n.validAsParent = n.usable
		return idx
	}

	children := make([]int, 0, len(layer.Children))
	validAsParent := false
	for _, child := range layer.Children {
		c := a.build(idx, child)
		children = append(children, c)
		if a.nodes[c].validAsChild {
			validAsParent = true
		}
	}
	// a.nodes may have grown; re-resolve before writing.
	n = &a.nodes[idx]
	n.children = children
	n.validAsParent = n.usable && validAsParent
	return idx
}

// adopt registers a freshly created node as a claimed child of parent so it is
// released together with the rest of the arena.
func (a *resyncArena) adopt(parent int, layer *LayerNode) int {
	idx := len(a.nodes)
	a.nodes = append(a.nodes, resyncNode{
		layer:         layer,
		collection:    layer.Collection,
		parent:        parent,
		usable:        true,
		validAsParent: true,
		validAsChild:  true,
		used:          true,
	})
	a.nodes[parent].children = append(a.nodes[parent].children, idx)
	return idx
}

// find returns the best old node to reuse for want as a child of parent, or -1.
//
// The search is breadth first from parent: its descendants first, then the
// other children of each ancestor in turn, so closer relatives win. A candidate
// is accepted when it is a direct old child of parent (the unchanged hierarchy
// case), or when it is neither claimed nor still a valid child of its own old
// parent. Taking a node that is a live link of another consistent branch would
// strand that branch, while its head will be found from its real parent anyway.
func (a *resyncArena) find(parent int, want *scene.Collection) int {
	queue := append(a.queue[:0], parent)
	root := parent

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		n := &a.nodes[cur]

		if n.collection == want && (n.parent == parent || (!n.used && !n.validAsChild)) {
			a.queue = queue
			return cur
		}

		queue = append(queue, n.children...)

		// Subtree exhausted: widen to the siblings one level up, climbing
		// further while a level adds nothing to the queue.
		for head == len(queue)-1 && a.nodes[root].parent != noParent {
			up := a.nodes[root].parent
			for _, sibling := range a.nodes[up].children {
				if sibling != root {
					queue = append(queue, sibling)
				}
			}
			root = up
		}
	}

	a.queue = queue
	return -1
}

// freeUnused releases every node that was not claimed, children first.
func (a *resyncArena) freeUnused(vl *ViewLayer, idx int, logger *zap.Logger) {
	for _, child := range a.nodes[idx].children {
		a.freeUnused(vl, child, logger)
	}

	n := &a.nodes[idx]
	if n.used {
		return
	}

	name := "<deleted collection>"
	if n.collection != nil {
		name = n.collection.Name
	}
	logger.Debug("Freeing unused layer node", zap.String("collection", name))

	// The active node falls back to its closest surviving old ancestor; the
	// caller moves it further up if that one is hidden.
	if n.layer == vl.active {
		vl.active = nil
		for p := n.parent; p != noParent; p = a.nodes[p].parent {
			if a.nodes[p].used {
				vl.active = a.nodes[p].layer
				break
			}
		}
	}
	n.layer.Collection = nil
	n.layer.Children = nil
	n.layer.parent = nil
	n.layer = nil
	n.collection = nil
	n.usable = false
}
