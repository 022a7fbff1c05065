// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which reports whether it is
// enabled and registers its routes when loaded.
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
// The Manager struct holds the registry of available features:
//   - Register() adds a feature
//   - LoadAll() loads every enabled feature, in registration order
//
// Features such as 'lookup' and 'schema' are developed and tested in isolation
// and only meet in cmd/start.go.
package loader
