// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - rayid: assigns every request a UUID ray id, stored in the context and
//     echoed in the X-Ray-ID response header.
//   - requestlog: logs each request with its ray id, status and duration.
//   - auth: validates the API key on every route outside the skip list.
//
// The start command registers them globally in that order.
package middleware
