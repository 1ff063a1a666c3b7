package ports

import (
	"context"

	"github.com/jsamuelsen11/goalkeeper/internal/domain/coherence"
	"github.com/jsamuelsen11/goalkeeper/internal/domain/constraint"
	"github.com/jsamuelsen11/goalkeeper/internal/domain/goal"
)

// GoalService defines the service port for goal aggregate operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Adding or updating a goal also derives its constraints, so both return the
// stored goal together with its current constraint set.
type GoalService interface {
	// AddGoal validates the goal, derives its constraints, and persists both
	// atomically. Returns domain.ErrValidation if the goal fails validation,
	// its parent does not resolve, or a derivation hint is malformed.
	AddGoal(ctx context.Context, g *goal.Goal) (*goal.Goal, []constraint.Constraint, error)

	// GetGoal returns a single goal by ID.
	// Returns domain.ErrNotFound if the goal does not exist.
	GetGoal(ctx context.Context, id string) (*goal.Goal, error)

	// ListGoals returns goals in creation order, optionally filtered by
	// domain and timeframe.
	ListGoals(ctx context.Context, f goal.Filter) ([]goal.Goal, error)

	// UpdateGoal applies an update to the goal's mutable fields
	// (description, timeframe, domains, hints), re-derives its constraints,
	// and swaps the constraint set atomically.
	// Returns domain.ErrNotFound if the goal does not exist.
	UpdateGoal(ctx context.Context, id string, upd goal.Update) (*goal.Goal, []constraint.Constraint, error)

	// DeleteGoal removes a goal, re-parents its children to the removed
	// goal's parent, and cascades removal of its constraints.
	// Returns domain.ErrNotFound if the goal does not exist.
	DeleteGoal(ctx context.Context, id string) error

	// ListConstraints returns all constraints scoped to a domain, ordered by
	// the owning goal's timeframe from most to least immediately binding
	// (task < short < medium < long).
	ListConstraints(ctx context.Context, domain string) ([]constraint.Constraint, error)
}

// CoherenceService defines the service port for coherence checks.
type CoherenceService interface {
	// Check validates a proposed action against the target domain's module,
	// the constraints scoped to that domain, and every cross-domain
	// interested module. A verdict with Valid=false is a successful check;
	// errors are reserved for an unknown domain (domain.ErrUnknownDomain),
	// malformed payload values (domain.ErrValidation), or a module failure
	// (*domain.SystemError), in which case no verdict is returned.
	Check(ctx context.Context, domain string, payload map[string]any) (*coherence.Verdict, error)
}

// ContextService defines the service port for the planning context snapshot.
type ContextService interface {
	// Context assembles a read-only snapshot of all goals and all
	// constraints grouped by domain. It never mutates core state and is
	// recomputed on every call.
	Context(ctx context.Context) (*coherence.Context, error)
}

// ModuleService defines the service port for domain module registration.
type ModuleService interface {
	// Register connects a remote domain module and adds it to the registry.
	// Returns domain.ErrValidation for a malformed spec and
	// domain.ErrDuplicateName if the name is already taken (the earlier
	// registration stays intact).
	Register(ctx context.Context, spec ModuleSpec) (Registration, error)

	// List returns all registrations in registration order.
	List(ctx context.Context) []Registration

	// Unregister removes a registration by name.
	// Returns domain.ErrNotFound if the name is unknown.
	Unregister(ctx context.Context, name string) error
}

// ModuleSpec describes a remote domain module to register.
type ModuleSpec struct {
	Name                  string
	Domain                string
	BaseURL               string
	CrossDomainInterested bool
}
