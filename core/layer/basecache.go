package layer

import (
	"sync"
	"sync/atomic"

	"layersync/core/scene"
)

// Base is the per view layer record of one reachable Object.
type Base struct {
	// Object is a weak reference; the base never owns it.
	Object *scene.Object
	Flag   BaseFlag
	// LocalViewBits has one bit per viewport local view containing the object.
	LocalViewBits uint16
	// LocalCollectionsBits has one bit per viewport showing the object through
	// local collections.
	LocalCollectionsBits uint16

	fromCollection BaseFlag
}

func newBase(ob *scene.Object) *Base {
	b := &Base{Object: ob, LocalViewBits: allLocalBits}
	if ob.Selected {
		b.Flag |= BaseSelected
	}
	return b
}

// Has reports whether all of flag is set.
func (b *Base) Has(flag BaseFlag) bool {
	return b.Flag&flag == flag
}

// evalFlags applies the accumulated collection flags, then the object's own
// restrictions.
func (b *Base) evalFlags() {
	b.Flag &^= collectionBaseFlags
	b.Flag |= b.fromCollection & collectionBaseFlags

	restrict := b.Object.Visibility
	if restrict&scene.ObjectHideViewport != 0 {
		b.Flag &^= BaseEnabledViewport
	}
	if restrict&scene.ObjectHideRender != 0 {
		b.Flag &^= BaseEnabledRender
	}
	if restrict&scene.ObjectHideSelect != 0 {
		b.Flag &^= BaseSelectable
	}

	// Tools always see viewport visibility, whatever the render setup does later.
	if b.Flag&BaseEnabledViewport == 0 || b.Flag&BaseHidden != 0 {
		b.Flag &^= BaseVisibleDepsgraph | BaseVisibleViewLayer | BaseSelectable
	}

	if b.Flag&BaseSelectable == 0 {
		b.Flag &^= BaseSelected
	}
}

type baseIndex map[*scene.Object]*Base

// BaseCache is the ordered list of bases of a view layer plus an index from
// object to base.
//
// The index is built lazily on first lookup. Building it is the only part that
// is safe against concurrent callers; everything else expects a single writer.
type BaseCache struct {
	list []*Base

	mu    sync.Mutex
	index atomic.Pointer[baseIndex]
}

// Len returns the number of bases.
func (c *BaseCache) Len() int {
	return len(c.list)
}

// List returns the bases in order. Callers must not modify the slice.
func (c *BaseCache) List() []*Base {
	return c.list
}

// Find returns the base of ob, building the index first if needed. Duplicate
// bases found while building are dropped.
func (c *BaseCache) Find(ob *scene.Object) *Base {
	return c.ensure(nil)[ob]
}

// Built reports whether the index exists.
func (c *BaseCache) Built() bool {
	return c.index.Load() != nil
}

func (c *BaseCache) invalidate() {
	c.index.Store(nil)
}

// ensure returns the index, building it when missing. Bases whose object is
// already indexed are removed from the list and passed to onDuplicate.
func (c *BaseCache) ensure(onDuplicate func(*Base)) baseIndex {
	if idx := c.index.Load(); idx != nil {
		return *idx
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if idx := c.index.Load(); idx != nil {
		return *idx
	}

	idx := make(baseIndex, len(c.list))
	kept := c.list[:0]
	for _, b := range c.list {
		if b.Object != nil {
			if _, dup := idx[b.Object]; dup {
				if onDuplicate != nil {
					onDuplicate(b)
				}
				continue
			}
			idx[b.Object] = b
		}
		kept = append(kept, b)
	}
	clear(c.list[len(kept):])
	c.list = kept

	// Publish only once complete.
	c.index.Store(&idx)
	return idx
}
