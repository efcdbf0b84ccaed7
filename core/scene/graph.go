package scene

import "slices"

// Graph is the registry owning every Collection and Object.
type Graph struct {
	Collections []*Collection
	Objects     []*Object
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// NewCollection registers a new, unlinked collection.
func (g *Graph) NewCollection(name string) *Collection {
	c := &Collection{Name: name}
	g.Collections = append(g.Collections, c)
	return c
}

// NewMasterCollection registers a new scene root collection.
func (g *Graph) NewMasterCollection(name string) *Collection {
	c := g.NewCollection(name)
	c.Flag |= CollectionMaster
	return c
}

// NewObject registers a new object that belongs to no collection yet.
func (g *Graph) NewObject(name string, typ ObjectType) *Object {
	ob := &Object{Name: name, Type: typ}
	g.Objects = append(g.Objects, ob)
	return ob
}

// FindCollection returns the first collection with the given name.
func (g *Graph) FindCollection(name string) *Collection {
	for _, c := range g.Collections {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// FindObject returns the first object with the given name.
func (g *Graph) FindObject(name string) *Object {
	for _, ob := range g.Objects {
		if ob.Name == name {
			return ob
		}
	}
	return nil
}

// RemoveCollection unlinks c from all its parents and children and marks it
// deleted. Master collections cannot be removed.
func (g *Graph) RemoveCollection(c *Collection) bool {
	i := slices.Index(g.Collections, c)
	if i < 0 || c.IsMaster() {
		return false
	}
	for _, p := range slices.Clone(c.Parents) {
		p.Unlink(c)
	}
	for _, child := range slices.Clone(c.Children) {
		c.Unlink(child)
	}
	c.Objects = nil
	c.deleted = true
	g.Collections = slices.Delete(g.Collections, i, i+1)
	return true
}

// RemoveObject drops ob from every collection and from the registry.
func (g *Graph) RemoveObject(ob *Object) bool {
	i := slices.Index(g.Objects, ob)
	if i < 0 {
		return false
	}
	for _, c := range g.Collections {
		c.RemoveObject(ob)
	}
	g.Objects = slices.Delete(g.Objects, i, i+1)
	return true
}

// RemapObject replaces every collection membership of from with to. A
// collection already holding to keeps a single entry. from is dropped from the
// registry.
func (g *Graph) RemapObject(from, to *Object) {
	if from == nil || to == nil || from == to {
		return
	}
	for _, c := range g.Collections {
		i := slices.Index(c.Objects, from)
		if i < 0 {
			continue
		}
		if c.HasObject(to) {
			c.Objects = slices.Delete(c.Objects, i, i+1)
		} else {
			c.Objects[i] = to
		}
	}
	if i := slices.Index(g.Objects, from); i >= 0 {
		g.Objects = slices.Delete(g.Objects, i, i+1)
	}
}
