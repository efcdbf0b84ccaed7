package layer

import (
	"iter"

	"layersync/core/scene"
)

// The sequences below walk the base list lazily every time they are ranged
// over. Changing the list while ranging is not supported.

func basesWith(vl *ViewLayer, vp *Viewport, flag BaseFlag) iter.Seq[*Base] {
	return func(yield func(*Base) bool) {
		for _, b := range vl.bases.list {
			if BaseIsVisible(vp, b) && b.Has(flag) && !yield(b) {
				return
			}
		}
	}
}

func objectsOf(bases iter.Seq[*Base]) iter.Seq[*scene.Object] {
	return func(yield func(*scene.Object) bool) {
		for b := range bases {
			if !yield(b.Object) {
				return
			}
		}
	}
}

// VisibleBases yields the bases visible in vp.
func VisibleBases(vl *ViewLayer, vp *Viewport) iter.Seq[*Base] {
	return basesWith(vl, vp, 0)
}

// SelectedBases yields the visible, selected bases.
func SelectedBases(vl *ViewLayer, vp *Viewport) iter.Seq[*Base] {
	return basesWith(vl, vp, BaseVisibleDepsgraph|BaseSelected)
}

// VisibleObjects yields the objects of VisibleBases.
func VisibleObjects(vl *ViewLayer, vp *Viewport) iter.Seq[*scene.Object] {
	return objectsOf(VisibleBases(vl, vp))
}

// SelectedObjects yields the objects of SelectedBases.
func SelectedObjects(vl *ViewLayer, vp *Viewport) iter.Seq[*scene.Object] {
	return objectsOf(SelectedBases(vl, vp))
}

// SelectedEditableObjects yields the selected objects that are not linked from
// a library.
func SelectedEditableObjects(vl *ViewLayer, vp *Viewport) iter.Seq[*scene.Object] {
	return func(yield func(*scene.Object) bool) {
		for ob := range SelectedObjects(vl, vp) {
			if !ob.IsLinked() && !yield(ob) {
				return
			}
		}
	}
}

// BasesInMode yields the visible bases in mode whose object has the same type
// as the active base's, starting with the active base. Nothing is yielded
// without an active base.
func BasesInMode(vl *ViewLayer, vp *Viewport, mode scene.ObjectMode) iter.Seq[*Base] {
	return func(yield func(*Base) bool) {
		active := vl.activeBase
		if active == nil {
			return
		}
		basesInMode(vl, vp, mode, active.Object.Type)(yield)
	}
}

// BasesInModeOfType is BasesInMode restricted to objects of typ.
func BasesInModeOfType(vl *ViewLayer, vp *Viewport, mode scene.ObjectMode, typ scene.ObjectType) iter.Seq[*Base] {
	return func(yield func(*Base) bool) {
		if vl.activeBase == nil {
			return
		}
		basesInMode(vl, vp, mode, typ)(yield)
	}
}

func basesInMode(vl *ViewLayer, vp *Viewport, mode scene.ObjectMode, typ scene.ObjectType) iter.Seq[*Base] {
	inMode := func(b *Base) bool {
		return b.Object.Type == typ && b.Object.Mode&mode != 0 && BaseIsVisible(vp, b)
	}
	return func(yield func(*Base) bool) {
		active := vl.activeBase
		if inMode(active) && !yield(active) {
			return
		}
		for _, b := range vl.bases.list {
			if b != active && inMode(b) && !yield(b) {
				return
			}
		}
	}
}
