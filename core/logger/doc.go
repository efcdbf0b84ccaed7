// Package logger provides a structured logging facility based on Zap.
//
// It builds a development logger for the debug level and a production logger
// otherwise, and integrates with the Fiber web framework.
//
// # Context Awareness
//
// The rayid middleware stores a request id in the Fiber context. WithRayID
// attaches it to a logger so every entry of one request can be correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Sync failed", zap.Error(err))
package logger
