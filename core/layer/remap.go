package layer

import "layersync/core/scene"

// RemapObject replaces from with to in the scene graph and in every base, then
// rebuilds the base indexes and resyncs. When to already had a base in a view
// layer the remapped base is a duplicate, which the rebuild drops.
//
// Inside a Batch the resync is deferred to the end of the batch.
func (e *Engine) RemapObject(db *Database, from, to *scene.Object) {
	db.Graph.RemapObject(from, to)
	for _, s := range db.Scenes {
		for _, vl := range s.ViewLayers {
			for _, b := range vl.bases.list {
				if b.Object == from {
					b.Object = to
				}
			}
			// Keys may point at from; the index must not be used until rebuilt.
			vl.bases.invalidate()
		}
	}
	e.SyncRemap(db)
}
