// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface and registers its routes when
// loaded. The start command registers features on a Manager and loads them
// onto the Fiber application.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager keeps features in registration order, refuses duplicate names
// and skips disabled features in LoadAll.
package loader
