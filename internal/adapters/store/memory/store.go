// Package memory provides an in-memory GoalStore for tests and
// single-process deployments where durability is not needed. All state lives
// behind one read-write mutex: writers are serialized, readers see either all
// of a mutation or none of it, and every value that crosses the store
// boundary is a copy, so callers can never alias internal state.
package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/goalkeeper/internal/domain"
	"github.com/jsamuelsen11/goalkeeper/internal/domain/constraint"
	"github.com/jsamuelsen11/goalkeeper/internal/domain/goal"
	"github.com/jsamuelsen11/goalkeeper/internal/ports"
)

// Compile-time check that Store implements ports.GoalStore.
var _ ports.GoalStore = (*Store)(nil)

// goalRec pairs a stored goal with its insertion sequence and the constraints
// it owns. The sequence survives updates, so creation order stays stable over
// the goal's lifetime, and constraints die with their record.
type goalRec struct {
	goal goal.Goal
	seq  int
	cons []constraint.Constraint
}

// Store is the in-memory GoalStore implementation. Goals live in a flat map
// keyed by ID; the hierarchy is only the ParentID references between them,
// which keeps re-parenting on delete a linear scan instead of a tree walk.
type Store struct {
	mu    sync.RWMutex
	goals map[string]*goalRec
	seq   int
}

// New creates an empty Store.
func New() *Store {
	return &Store{goals: make(map[string]*goalRec)}
}

// AddGoal persists a goal and its derived constraints in one critical
// section. IDs and timestamps are assigned here, never by the caller.
func (s *Store) AddGoal(ctx context.Context, g *goal.Goal, cs []constraint.Constraint) (*goal.Goal, []constraint.Constraint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g.ParentID != nil {
		if _, ok := s.goals[*g.ParentID]; !ok {
			return nil, nil, &domain.ValidationError{Fields: map[string]string{
				"parent_id": fmt.Sprintf("does not reference an existing goal: %q", *g.ParentID),
			}}
		}
	}

	now := time.Now().UTC()
	stored := cloneGoal(*g)
	stored.ID = uuid.NewString()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	owned := stampConstraints(cs, stored.ID, now)

	s.seq++
	s.goals[stored.ID] = &goalRec{goal: stored, seq: s.seq, cons: owned}

	out := cloneGoal(stored)
	return &out, cloneConstraints(owned), nil
}

// GetGoal returns a copy of the goal with the given ID.
func (s *Store) GetGoal(ctx context.Context, id string) (*goal.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.goals[id]
	if !ok {
		return nil, fmt.Errorf("goal %q: %w", id, domain.ErrNotFound)
	}

	g := cloneGoal(rec.goal)
	return &g, nil
}

// ListGoals returns goals in creation order, filtered by f.
func (s *Store) ListGoals(ctx context.Context, f goal.Filter) ([]goal.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]goal.Goal, 0, len(s.goals))
	for _, rec := range s.byCreation() {
		if !f.Matches(&rec.goal) {
			continue
		}
		out = append(out, cloneGoal(rec.goal))
	}
	return out, nil
}

// UpdateGoal replaces the goal's mutable fields and swaps its constraint set
// in one critical section. Creation metadata and the parent link are
// preserved from the stored record: hierarchy only changes through
// RemoveGoal's re-parenting.
func (s *Store) UpdateGoal(ctx context.Context, g *goal.Goal, cs []constraint.Constraint) (*goal.Goal, []constraint.Constraint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.goals[g.ID]
	if !ok {
		return nil, nil, fmt.Errorf("goal %q: %w", g.ID, domain.ErrNotFound)
	}

	now := time.Now().UTC()
	updated := cloneGoal(*g)
	updated.CreatedAt = rec.goal.CreatedAt
	updated.ParentID = clonePtr(rec.goal.ParentID)
	updated.UpdatedAt = now

	rec.goal = updated
	rec.cons = stampConstraints(cs, updated.ID, now)

	out := cloneGoal(updated)
	return &out, cloneConstraints(rec.cons), nil
}

// RemoveGoal deletes a goal, hops its children up to the deleted goal's
// parent (or makes them roots), and drops its constraints, all in one
// critical section, so no reader ever observes a half-applied cascade.
func (s *Store) RemoveGoal(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.goals[id]
	if !ok {
		return fmt.Errorf("goal %q: %w", id, domain.ErrNotFound)
	}

	for _, other := range s.goals {
		if other.goal.ParentID != nil && *other.goal.ParentID == id {
			other.goal.ParentID = clonePtr(rec.goal.ParentID)
		}
	}

	delete(s.goals, id)
	return nil
}

// ConstraintsForDomain returns the domain's constraints ordered by how
// immediately the owning goal binds: timeframe rank ascending, then goal
// creation order, then the order constraints were derived within the goal.
func (s *Store) ConstraintsForDomain(ctx context.Context, dom string) ([]constraint.Constraint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]constraint.Constraint, 0)
	for _, rec := range s.byBinding() {
		for _, c := range rec.cons {
			if c.Domain == dom {
				out = append(out, cloneConstraint(c))
			}
		}
	}
	return out, nil
}

// Snapshot returns a point-in-time copy of every goal (creation order) and
// every constraint (binding order across all domains) under one read lock.
func (s *Store) Snapshot(ctx context.Context) ([]goal.Goal, []constraint.Constraint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	goals := make([]goal.Goal, 0, len(s.goals))
	for _, rec := range s.byCreation() {
		goals = append(goals, cloneGoal(rec.goal))
	}

	cs := make([]constraint.Constraint, 0)
	for _, rec := range s.byBinding() {
		cs = append(cs, cloneConstraints(rec.cons)...)
	}

	return goals, cs, nil
}

// byCreation returns all records sorted by insertion sequence.
// Callers must hold at least a read lock.
func (s *Store) byCreation() []*goalRec {
	recs := make([]*goalRec, 0, len(s.goals))
	for _, rec := range s.goals {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })
	return recs
}

// byBinding returns all records ordered by timeframe rank ascending, with
// creation order breaking ties. Callers must hold at least a read lock.
func (s *Store) byBinding() []*goalRec {
	recs := s.byCreation()
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].goal.Timeframe.Rank() < recs[j].goal.Timeframe.Rank()
	})
	return recs
}

// stampConstraints copies the derived constraints and assigns the fields the
// store owns: ID, owning goal, and creation time.
func stampConstraints(cs []constraint.Constraint, goalID string, now time.Time) []constraint.Constraint {
	owned := make([]constraint.Constraint, 0, len(cs))
	for _, c := range cs {
		cc := cloneConstraint(c)
		cc.ID = uuid.NewString()
		cc.GoalID = goalID
		cc.CreatedAt = now
		owned = append(owned, cc)
	}
	return owned
}

// cloneGoal deep-copies the goal's reference fields. Hint values are treated
// as immutable, so the map is copied one level deep.
func cloneGoal(g goal.Goal) goal.Goal {
	g.Domains = slices.Clone(g.Domains)
	g.ParentID = clonePtr(g.ParentID)
	g.Hints = maps.Clone(g.Hints)
	return g
}

func cloneConstraint(c constraint.Constraint) constraint.Constraint {
	c.Payload = maps.Clone(c.Payload)
	return c
}

func cloneConstraints(cs []constraint.Constraint) []constraint.Constraint {
	out := make([]constraint.Constraint, len(cs))
	for i, c := range cs {
		out[i] = cloneConstraint(c)
	}
	return out
}

func clonePtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
