// Package scene models the shared scene graph that view layers mirror.
//
// The graph is a set of nested Collections. Each Collection has an ordered list
// of child Collections and a list of member Objects, plus restriction flags that
// are inherited by everything below it. A Collection may be linked under more than
// one parent, which is why view layers keep one shadow node per path rather than
// one per Collection.
//
// # Ownership
//
// The Graph registry owns every Collection and Object. View layers only hold
// references; removing a Collection marks it deleted so stale references stop
// resolving and are discarded on the next sync.
//
// # Editing
//
// Structural edits (Link, Unlink, AddObject, RemoveObject, RemoveCollection,
// RemapObject) never trigger a sync by themselves. Callers run the layer engine
// afterwards.
package scene
