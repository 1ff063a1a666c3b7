package ports

import (
	"context"

	"github.com/jsamuelsen11/goalkeeper/internal/domain/constraint"
	"github.com/jsamuelsen11/goalkeeper/internal/domain/goal"
)

// GoalStore defines the outbound port for goal and constraint persistence.
// Implemented by storage adapters (memory, sqlite); called by the
// application layer.
//
// Both tables live behind one store so that every mutation — a goal plus its
// derived constraints, or a deletion's re-parenting plus constraint cascade —
// happens in a single atomic scope, and reads (ConstraintsForDomain,
// Snapshot) observe a consistent state, never a goal mid-deletion.
// Implementations serialize writers and allow concurrent readers.
type GoalStore interface {
	// AddGoal persists a goal and its derived constraints atomically. The
	// store assigns the goal ID and timestamps, stamps each constraint's
	// GoalID and ID, and returns the stored copies.
	// Returns domain.ErrValidation if ParentID does not resolve.
	AddGoal(ctx context.Context, g *goal.Goal, cs []constraint.Constraint) (*goal.Goal, []constraint.Constraint, error)

	// GetGoal returns a goal by ID. Returns domain.ErrNotFound if absent.
	GetGoal(ctx context.Context, id string) (*goal.Goal, error)

	// ListGoals returns goals in creation order, filtered by f.
	ListGoals(ctx context.Context, f goal.Filter) ([]goal.Goal, error)

	// UpdateGoal persists the goal's mutable fields and atomically replaces
	// its constraint set with cs. Returns domain.ErrNotFound if absent.
	UpdateGoal(ctx context.Context, g *goal.Goal, cs []constraint.Constraint) (*goal.Goal, []constraint.Constraint, error)

	// RemoveGoal deletes a goal, re-parents its children to the deleted
	// goal's parent (or to the root when it had none), and deletes its
	// constraints, all atomically. Returns domain.ErrNotFound if absent.
	RemoveGoal(ctx context.Context, id string) error

	// ConstraintsForDomain returns constraints scoped to the domain, ordered
	// by the owning goal's timeframe (task < short < medium < long), then by
	// goal creation order, then by constraint creation order.
	ConstraintsForDomain(ctx context.Context, domain string) ([]constraint.Constraint, error)

	// Snapshot returns a consistent point-in-time copy of all goals (creation
	// order) and all constraints (ConstraintsForDomain ordering across
	// domains).
	Snapshot(ctx context.Context) ([]goal.Goal, []constraint.Constraint, error)
}
