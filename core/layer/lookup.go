package layer

import "layersync/core/scene"

// Count returns the number of nodes in the tree.
func (vl *ViewLayer) Count() int {
	if vl.root == nil {
		return 0
	}
	count := 0
	vl.root.Walk(func(*LayerNode) bool {
		count++
		return true
	})
	return count
}

// NodeFromIndex returns the node with the given index, or nil. Indexes number
// all siblings of a level first, then descend into each sibling in order.
func (vl *ViewLayer) NodeFromIndex(index int) *LayerNode {
	if vl.root == nil || index < 0 {
		return nil
	}
	i := 0
	return nodeFromIndex([]*LayerNode{vl.root}, index, &i)
}

func nodeFromIndex(list []*LayerNode, number int, i *int) *LayerNode {
	for _, n := range list {
		if *i == number {
			return n
		}
		*i++
	}
	for _, n := range list {
		if found := nodeFromIndex(n.Children, number, i); found != nil {
			return found
		}
	}
	return nil
}

// IndexOf returns the index of n, or -1.
func (vl *ViewLayer) IndexOf(n *LayerNode) int {
	if vl.root == nil {
		return -1
	}
	i := 0
	return indexOf([]*LayerNode{vl.root}, n, &i)
}

func indexOf(list []*LayerNode, target *LayerNode, i *int) int {
	for _, n := range list {
		if n == target {
			return *i
		}
		*i++
	}
	for _, n := range list {
		if found := indexOf(n.Children, target, i); found != -1 {
			return found
		}
	}
	return -1
}

// Indexes returns the index of every node, numbered as in NodeFromIndex.
func (vl *ViewLayer) Indexes() map[*LayerNode]int {
	indexes := make(map[*LayerNode]int)
	if vl.root == nil {
		return indexes
	}
	numberLevel([]*LayerNode{vl.root}, indexes)
	return indexes
}

func numberLevel(list []*LayerNode, indexes map[*LayerNode]int) {
	for _, n := range list {
		indexes[n] = len(indexes)
	}
	for _, n := range list {
		numberLevel(n.Children, indexes)
	}
}

// FirstFromCollection returns the first node, depth first, mirroring c.
func (vl *ViewLayer) FirstFromCollection(c *scene.Collection) *LayerNode {
	if vl.root == nil {
		return nil
	}
	var found *LayerNode
	vl.root.Walk(func(n *LayerNode) bool {
		if n.Collection == c {
			found = n
		}
		return found == nil
	})
	return found
}

// HasCollection reports whether some node mirrors c.
func (vl *ViewLayer) HasCollection(c *scene.Collection) bool {
	return vl.FirstFromCollection(c) != nil
}
