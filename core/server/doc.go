// Package server holds the HTTP server configuration.
//
// The start command builds the Fiber application from it; this package only
// defines the settings: listen host and port, the API key guarding every
// route, and whether the Swagger UI is served.
package server
