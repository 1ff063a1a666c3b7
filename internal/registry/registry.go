// Package registry implements the process-wide domain module table.
//
// The registry is the only process-wide mutable state in the core. It is
// built explicitly (New) and discarded at process end, never persisted:
// every process start rebuilds it from registration calls. Tests create
// independent registries per case.
package registry

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jsamuelsen11/goalkeeper/internal/domain"
	"github.com/jsamuelsen11/goalkeeper/internal/ports"
)

// Compile-time interface check.
var _ ports.ModuleRegistry = (*Registry)(nil)

// Registry holds domain module registrations keyed by unique name.
// Safe for concurrent use: registration is serialized, lookups copy out
// under a read lock so no registry lock is ever held while a module's
// Validate is in flight.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]int
	entries []ports.Registration
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		byName: make(map[string]int),
	}
}

// Register adds a module under a unique name. Returns
// domain.ErrDuplicateName if the name is already taken; the existing
// registration is left untouched. Several modules may serve the same
// domain — Resolve prefers the earliest.
func (r *Registry) Register(name, dom string, module ports.DomainModule, crossDomainInterested bool) error {
	name = strings.TrimSpace(name)
	dom = strings.ToLower(strings.TrimSpace(dom))

	if name == "" || dom == "" || module == nil {
		return &domain.ValidationError{Fields: registrationFields(name, dom, module)}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("module %q: %w", name, domain.ErrDuplicateName)
	}

	r.byName[name] = len(r.entries)
	r.entries = append(r.entries, ports.Registration{
		Name:                  name,
		Domain:                dom,
		Module:                module,
		CrossDomainInterested: crossDomainInterested,
	})
	return nil
}

// Unregister removes a registration by name. Returns domain.ErrNotFound if
// the name is unknown. Remaining entries keep their registration order.
func (r *Registry) Unregister(name string) error {
	name = strings.TrimSpace(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	idx, exists := r.byName[name]
	if !exists {
		return fmt.Errorf("module %q: %w", name, domain.ErrNotFound)
	}

	r.entries = append(r.entries[:idx], r.entries[idx+1:]...)
	delete(r.byName, name)
	for i := idx; i < len(r.entries); i++ {
		r.byName[r.entries[i].Name] = i
	}
	return nil
}

// Resolve returns the registration serving a domain, preferring the earliest
// registered when several share it. Returns domain.ErrUnknownDomain when no
// module serves the domain.
func (r *Registry) Resolve(dom string) (ports.Registration, error) {
	dom = strings.ToLower(strings.TrimSpace(dom))

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.Domain == dom {
			return e, nil
		}
	}
	return ports.Registration{}, fmt.Errorf("%w: %q", domain.ErrUnknownDomain, dom)
}

// ListInterested returns the cross-domain-interested registrations whose
// domain differs from excludingDomain, in registration order. The returned
// slice is a copy; callers invoke modules without any registry lock held.
func (r *Registry) ListInterested(excludingDomain string) []ports.Registration {
	excludingDomain = strings.ToLower(strings.TrimSpace(excludingDomain))

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ports.Registration, 0, len(r.entries))
	for _, e := range r.entries {
		if e.CrossDomainInterested && e.Domain != excludingDomain {
			out = append(out, e)
		}
	}
	return out
}

// List returns every registration in registration order as a copy.
func (r *Registry) List() []ports.Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ports.Registration, len(r.entries))
	copy(out, r.entries)
	return out
}

func registrationFields(name, dom string, module ports.DomainModule) map[string]string {
	fields := make(map[string]string)
	if name == "" {
		fields["name"] = domain.MsgRequired
	}
	if dom == "" {
		fields["domain"] = domain.MsgRequired
	}
	if module == nil {
		fields["module"] = domain.MsgRequired
	}
	return fields
}
