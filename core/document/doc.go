// Package document reads and writes scene documents.
//
// A document is JSON describing the scene graph (objects, collections, scenes
// and their master collections, viewports) together with the persistent state
// of every view layer. Node state is keyed by collection path and base state
// by object name, so it survives across processes where pointers do not.
//
// # Loading
//
// Decode parses and validates the format version. Build turns a document into
// a layer.Database: it creates the graph, syncs every view layer, applies the
// stored state and syncs again so runtime flags and bases reflect it.
//
// # Saving
//
// FromDatabase captures a database and Encode writes it, assigning a UUID to
// documents that have none.
//
//	doc, err := document.Decode(r)
//	db, err := doc.Build(engine)
//	...
//	err = document.FromDatabase(db).Encode(w)
package document
