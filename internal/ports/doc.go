// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// The store, module, and registry ports are implemented by outbound adapters
// and the registry, and called by the application layer.
package ports
