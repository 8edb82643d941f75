// Package loader provides the feature loading system.
//
// Each feature implements Feature and is registered on a Manager in cmd/start.
// LoadAll mounts the routes of every enabled feature in registration order:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The catalog read API and the sync API are the two features of this service.
package loader
