package ports

import (
	"context"

	"github.com/jsamuelsen11/goalkeeper/internal/domain/coherence"
)

// DomainModule is the contract every pluggable domain module fulfills,
// regardless of where it runs. The core treats the module as an opaque
// validation capability: it never inspects the module's internal logic.
//
// The error return is strictly for infrastructure failures (the module
// raised, timed out, or answered garbage). An action the module considers
// invalid is expressed through Report.Valid=false with issues — that is a
// successful call.
type DomainModule interface {
	// Validate judges a proposed action payload against the module's own
	// rules. Implementations may perform blocking I/O and should respect
	// context cancellation; the core never holds a lock across this call.
	Validate(ctx context.Context, payload map[string]any) (coherence.Report, error)
}

// ModuleRegistry defines the port for the process-wide module table.
// Implemented by internal/registry; called by the application layer.
// Registrations are never persisted — the table is rebuilt from
// registration calls on every process start.
type ModuleRegistry interface {
	// Register adds a module under a unique name. Returns
	// domain.ErrDuplicateName if the name is taken; the existing
	// registration stays intact.
	Register(name, domain string, module DomainModule, crossDomainInterested bool) error

	// Unregister removes a registration by name. Returns domain.ErrNotFound
	// if the name is unknown.
	Unregister(name string) error

	// Resolve returns the registration serving a domain. When several
	// modules share a domain the earliest registration wins. Returns
	// domain.ErrUnknownDomain if none serves it.
	Resolve(domain string) (Registration, error)

	// ListInterested returns the cross-domain-interested registrations whose
	// domain differs from excludingDomain, in registration order.
	ListInterested(excludingDomain string) []Registration

	// List returns every registration in registration order.
	List() []Registration
}

// Registration pairs a module with its registry metadata.
type Registration struct {
	Name                  string
	Domain                string
	Module                DomainModule
	CrossDomainInterested bool
}
