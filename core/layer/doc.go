// Package layer keeps view layers synchronized with the scene graph.
//
// Every ViewLayer owns a tree of LayerNodes that mirrors the scene's collection
// hierarchy, plus a flat BaseCache with one Base per reachable object. The tree
// carries user state (exclusion, hiding, holdout, local visibility) that has to
// survive arbitrary edits of the scene graph, so a resync reuses existing nodes
// instead of rebuilding the tree.
//
// # Sync
//
// Engine.Sync works in two passes over two separate trees:
//
//  1. The old tree is wrapped in an arena of resync nodes that record, for each
//     old node, whether its collection still resolves, whether it is still a
//     child of its old parent's collection, and whether its whole chain up to
//     the root is still intact.
//  2. The new tree is built top-down in current graph order. For each child
//     collection the engine takes the old direct child when the hierarchy did
//     not change, or searches the old tree outward from the parent for the
//     closest unclaimed node mirroring that collection. Only when nothing fits
//     is a new node created, inheriting its parent's flags.
//
// Nodes left unclaimed are freed and bases of objects no longer reachable
// through a non-excluded node are dropped.
//
// # Base cache
//
// The object to base index is built lazily and is the only structure guarded
// against concurrent first use. After object pointers were remapped, SyncRemap
// rebuilds every index and drops duplicate bases.
//
// # Suppression
//
// The engine's Gate turns every entry point into a no-op while bulk edits run.
// Engine.Batch wraps the forbid / allow pair and the final resync.
//
// # Usage
//
//	db := layer.NewDatabase()
//	s := db.NewScene("Scene")
//	vl := s.AddViewLayer("ViewLayer")
//	engine := layer.NewEngine(logger)
//	engine.SyncAll(db)
//	base := vl.FindBase(ob)
package layer
