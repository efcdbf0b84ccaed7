package layer

// Viewport describes the per viewport settings that affect base visibility.
type Viewport struct {
	Name string
	// LocalCollectionsBit identifies the viewport in local collection masks.
	LocalCollectionsBit uint16
	UseLocalCollections bool
	// LocalViewBit identifies the viewport in local view masks.
	LocalViewBit uint16
	InLocalView  bool
	// ExcludeTypes is a mask of 1<<scene.ObjectType hidden in this viewport.
	ExcludeTypes uint32
}

// BaseIsVisible reports whether b is visible in vp. A nil viewport checks view
// layer visibility only.
func BaseIsVisible(vp *Viewport, b *Base) bool {
	if b.Flag&BaseVisibleDepsgraph == 0 {
		return false
	}
	if vp == nil {
		return b.Flag&BaseVisibleViewLayer != 0
	}
	if vp.InLocalView && vp.LocalViewBit&b.LocalViewBits == 0 {
		return false
	}
	if b.Object != nil && vp.ExcludeTypes&(1<<b.Object.Type) != 0 {
		return false
	}
	if vp.UseLocalCollections {
		return vp.LocalCollectionsBit&b.LocalCollectionsBits != 0
	}
	return b.Flag&BaseVisibleViewLayer != 0
}
