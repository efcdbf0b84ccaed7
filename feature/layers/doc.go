// Package layers exposes view layer resync over HTTP.
//
// The Service owns one loaded scene document at a time. It reads documents
// from object storage through storage.Documents, builds them with a
// layer.Engine and serializes every engine call behind a mutex, since the
// engine itself is single threaded. Concurrent loads of the same document are
// collapsed with singleflight.
//
// # Routes
//
// Handler registers the routes under /layers:
//
//	GET  /layers                                   scenes and view layers
//	POST /layers/load?document=name                load from the bucket
//	POST /layers/sync                              resync everything
//	POST /layers/remap                             rebuild base indexes, resync
//	POST /layers/save                              write document and state
//	GET  /layers/:scene/:layer/tree                layer tree
//	GET  /layers/:scene/:layer/bases?filter=...    bases
//	POST /layers/:scene/:layer/sync                resync one view layer
//	PUT  /layers/:scene/:layer/nodes/:index/flags  {flag, value}
//	POST /layers/:scene/:layer/nodes/:index/activate
//	POST /layers/:scene/:layer/nodes/:index/isolate
//	POST /layers/:scene/:layer/nodes/:index/select
//	POST /layers/:scene/:layer/bases/:object/show
//	POST /layers/:scene/:layer/local/:viewport     {index, extend}
//
// Node indexes follow layer.ViewLayer.NodeFromIndex: the root is 0 and every
// level is numbered before the one below it.
//
// # Persistence
//
// A Store keeps node flags and base selection per document in the
// node_states and base_states tables. Save replaces a document's rows in one
// transaction; Load restores them after building the document and resyncs.
package layers
