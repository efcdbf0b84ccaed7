package scene

import "slices"

// CollectionFlag holds the restriction flags of a Collection.
type CollectionFlag uint8

const (
	// CollectionHideSelect makes member objects unselectable.
	CollectionHideSelect CollectionFlag = 1 << iota
	// CollectionHideViewport disables member objects in viewports.
	CollectionHideViewport
	// CollectionHideRender disables member objects in renders.
	CollectionHideRender
	// CollectionMaster marks the root collection of a scene.
	CollectionMaster
)

// ObjectType is the kind of data an Object carries.
type ObjectType uint8

const (
	ObjectEmpty ObjectType = iota
	ObjectMesh
	ObjectCurve
	ObjectCamera
	ObjectLight
	ObjectArmature
	ObjectGreasePencil
)

// ObjectMode is the interaction mode bitmask of an Object.
type ObjectMode uint16

const (
	ModeObject ObjectMode = 0
	ModeEdit   ObjectMode = 1 << (iota - 1)
	ModeSculpt
	ModeVertexPaint
	ModeWeightPaint
	ModeTexturePaint
	ModePose
)

// VisibilityFlag holds the object level restrictions.
type VisibilityFlag uint8

const (
	ObjectHideViewport VisibilityFlag = 1 << iota
	ObjectHideRender
	ObjectHideSelect
	ObjectHoldout
)

// Object is a member of one or more collections.
type Object struct {
	Name       string
	Type       ObjectType
	Mode       ObjectMode
	Visibility VisibilityFlag
	// Library is set for objects linked from another file. Linked objects are not editable.
	Library string
	// Selected is the selection state given to a freshly created base.
	Selected bool
}

// IsLinked reports whether the object comes from a library.
func (o *Object) IsLinked() bool {
	return o.Library != ""
}

// Collection is a node of the scene graph.
type Collection struct {
	Name     string
	Flag     CollectionFlag
	Children []*Collection
	Parents  []*Collection
	Objects  []*Object

	deleted bool
}

// IsMaster reports whether c is the root collection of a scene.
func (c *Collection) IsMaster() bool {
	return c.Flag&CollectionMaster != 0
}

// Deleted reports whether c was removed from its graph.
func (c *Collection) Deleted() bool {
	return c.deleted
}

// HasChild reports whether child is a direct child of c.
func (c *Collection) HasChild(child *Collection) bool {
	return slices.Contains(c.Children, child)
}

// HasObject reports whether ob is a direct member of c.
func (c *Collection) HasObject(ob *Object) bool {
	return slices.Contains(c.Objects, ob)
}

// IsAncestorOf reports whether c is reachable upwards from other.
func (c *Collection) IsAncestorOf(other *Collection) bool {
	for _, p := range other.Parents {
		if p == c || c.IsAncestorOf(p) {
			return true
		}
	}
	return false
}

// Link appends child at the end of c's children. It refuses duplicates, master
// collections and links that would create a cycle.
func (c *Collection) Link(child *Collection) bool {
	if child == nil || child == c || child.IsMaster() || child.deleted || c.deleted {
		return false
	}
	if c.HasChild(child) || child.IsAncestorOf(c) {
		return false
	}
	c.Children = append(c.Children, child)
	child.Parents = append(child.Parents, c)
	return true
}

// Unlink removes child from c's children.
func (c *Collection) Unlink(child *Collection) bool {
	i := slices.Index(c.Children, child)
	if i < 0 {
		return false
	}
	c.Children = slices.Delete(c.Children, i, i+1)
	if j := slices.Index(child.Parents, c); j >= 0 {
		child.Parents = slices.Delete(child.Parents, j, j+1)
	}
	return true
}

// AddObject adds ob to c unless it is already a member.
func (c *Collection) AddObject(ob *Object) bool {
	if ob == nil || c.HasObject(ob) {
		return false
	}
	c.Objects = append(c.Objects, ob)
	return true
}

// RemoveObject removes ob from c.
func (c *Collection) RemoveObject(ob *Object) bool {
	i := slices.Index(c.Objects, ob)
	if i < 0 {
		return false
	}
	c.Objects = slices.Delete(c.Objects, i, i+1)
	return true
}
