package layer

import (
	"strings"

	"layersync/core/scene"
)

// PathSeparator separates collection names in a node path.
const PathSeparator = "/"

// LayerNode is the per view layer shadow of one Collection at one position in
// the scene graph.
type LayerNode struct {
	// Collection is the mirrored collection. It is nil once the node was freed.
	Collection *scene.Collection
	// Children follow the collection's child order.
	Children []*LayerNode
	// Flag is the persistent state.
	Flag NodeFlag
	// Runtime is recomputed by every sync.
	Runtime RuntimeFlag
	// LocalCollectionsBits has one bit per viewport using local collections.
	LocalCollectionsBits uint16

	parent *LayerNode
}

func newLayerNode(c *scene.Collection) *LayerNode {
	return &LayerNode{Collection: c, LocalCollectionsBits: allLocalBits}
}

// Parent returns the node this one was synced under, nil for the root.
func (n *LayerNode) Parent() *LayerNode {
	return n.parent
}

// Name returns the collection name, or an empty string for a freed node.
func (n *LayerNode) Name() string {
	if n.Collection == nil {
		return ""
	}
	return n.Collection.Name
}

// Excluded reports whether the node is excluded from the view layer.
func (n *LayerNode) Excluded() bool {
	return n.Flag&NodeExcluded != 0
}

// VisibleInViewLayer reports the runtime visibility computed by the last sync.
func (n *LayerNode) VisibleInViewLayer() bool {
	return n.Runtime&RuntimeVisibleViewLayer != 0
}

// usable reports whether the mirrored collection still resolves.
func (n *LayerNode) usable() bool {
	return n.Collection != nil && !n.Collection.Deleted()
}

// Walk visits n and its descendants depth first, stopping when fn returns false.
func (n *LayerNode) Walk(fn func(*LayerNode) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Contains reports whether other is n or one of its descendants.
func (n *LayerNode) Contains(other *LayerNode) bool {
	found := false
	n.Walk(func(c *LayerNode) bool {
		found = c == other
		return !found
	})
	return found
}

// Path returns the collection names from below the root down to n.
func (n *LayerNode) Path() string {
	var names []string
	for c := n; c != nil && c.parent != nil; c = c.parent {
		names = append(names, c.Name())
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, PathSeparator)
}

// SetFlag sets or clears flag on n and all its descendants.
//
// Exclusion is special: excluding a subtree remembers which descendants were
// already excluded, and including it again only re-includes the others.
func SetFlag(n *LayerNode, flag NodeFlag, value bool) {
	setFlagRecursive(n, flag, value, false)
}

func setFlagRecursive(n *LayerNode, flag NodeFlag, value, restore bool) {
	if flag == NodeExcluded {
		if value {
			if restore && n.Flag&NodeExcluded != 0 {
				n.Flag |= NodePreviouslyExcluded
			} else {
				n.Flag &^= NodePreviouslyExcluded
			}
			n.Flag |= flag
		} else if n.Flag&NodePreviouslyExcluded == 0 {
			n.Flag &^= flag
		}
	} else if value {
		n.Flag |= flag
	} else {
		n.Flag &^= flag
	}

	for _, child := range n.Children {
		setFlagRecursive(child, flag, value, true)
	}
}

func setFlagAll(n *LayerNode, flag NodeFlag) {
	n.Walk(func(c *LayerNode) bool {
		c.Flag |= flag
		return true
	})
}

func clearFlagAll(n *LayerNode, flag NodeFlag) {
	n.Walk(func(c *LayerNode) bool {
		c.Flag &^= flag
		return true
	})
}
