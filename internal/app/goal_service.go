// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/goalkeeper/internal/app/deriver"
	"github.com/jsamuelsen11/goalkeeper/internal/domain"
	"github.com/jsamuelsen11/goalkeeper/internal/domain/constraint"
	"github.com/jsamuelsen11/goalkeeper/internal/domain/goal"
	"github.com/jsamuelsen11/goalkeeper/internal/ports"
)

// Compile-time check that GoalService implements ports.GoalService.
var _ ports.GoalService = (*GoalService)(nil)

// GoalService implements ports.GoalService by coordinating the goal store and
// the constraint deriver. Every write runs the same pipeline: normalize,
// validate, derive constraints, persist goal and constraints in one store
// call so readers never observe a goal without its constraint set.
type GoalService struct {
	store   ports.GoalStore
	deriver *deriver.Deriver
	logger  *slog.Logger
}

// NewGoalService creates a GoalService. The store port persists goals and
// constraints; the deriver computes constraints from goal hints. A nil logger
// is replaced with a no-op logger.
func NewGoalService(store ports.GoalStore, d *deriver.Deriver, logger *slog.Logger) *GoalService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &GoalService{
		store:   store,
		deriver: d,
		logger:  logger,
	}
}

// AddGoal validates the goal, derives its constraints from hints, and
// persists both atomically. The store assigns the ID and timestamps.
func (s *GoalService) AddGoal(ctx context.Context, g *goal.Goal) (*goal.Goal, []constraint.Constraint, error) {
	if g == nil {
		return nil, nil, &domain.ValidationError{Fields: map[string]string{"goal": domain.MsgRequired}}
	}

	s.logger.InfoContext(ctx, "adding goal",
		slog.String("title", g.Title),
		slog.String("timeframe", string(g.Timeframe)),
	)

	g.NormalizeDomains()
	if err := g.Validate(); err != nil {
		return nil, nil, err
	}

	cs, err := s.deriver.Derive(g)
	if err != nil {
		return nil, nil, err
	}

	stored, storedCs, err := s.store.AddGoal(ctx, g, cs)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to add goal",
			slog.String("operation", "AddGoal"),
			slog.Any("error", err),
		)
		return nil, nil, err
	}

	return stored, storedCs, nil
}

// GetGoal returns a single goal by ID.
func (s *GoalService) GetGoal(ctx context.Context, id string) (*goal.Goal, error) {
	s.logger.InfoContext(ctx, "fetching goal", slog.String("id", id))

	g, err := s.store.GetGoal(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch goal",
			slog.String("operation", "GetGoal"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return g, nil
}

// ListGoals returns goals in creation order, optionally filtered by domain
// and timeframe.
func (s *GoalService) ListGoals(ctx context.Context, f goal.Filter) ([]goal.Goal, error) {
	s.logger.InfoContext(ctx, "listing goals")

	f.Domain = strings.ToLower(strings.TrimSpace(f.Domain))

	goals, err := s.store.ListGoals(ctx, f)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list goals",
			slog.String("operation", "ListGoals"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return goals, nil
}

// UpdateGoal applies a partial update to a goal's mutable fields, re-derives
// its constraints from the merged state, and atomically replaces the goal's
// constraint set in the store.
func (s *GoalService) UpdateGoal(ctx context.Context, id string, upd goal.Update) (*goal.Goal, []constraint.Constraint, error) {
	s.logger.InfoContext(ctx, "updating goal", slog.String("id", id))

	if upd.IsZero() {
		return nil, nil, &domain.ValidationError{Fields: map[string]string{"update": "must change at least one field"}}
	}

	existing, err := s.store.GetGoal(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch goal for update",
			slog.String("operation", "UpdateGoal"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, nil, err
	}

	updated := *existing
	updated.Apply(upd)
	if err := updated.Validate(); err != nil {
		return nil, nil, err
	}

	cs, err := s.deriver.Derive(&updated)
	if err != nil {
		return nil, nil, err
	}

	stored, storedCs, err := s.store.UpdateGoal(ctx, &updated, cs)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update goal",
			slog.String("operation", "UpdateGoal"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, nil, err
	}

	return stored, storedCs, nil
}

// DeleteGoal removes a goal. Its children are re-parented to the deleted
// goal's parent and its constraints are removed in the same store operation.
func (s *GoalService) DeleteGoal(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "deleting goal", slog.String("id", id))

	if err := s.store.RemoveGoal(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete goal",
			slog.String("operation", "DeleteGoal"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// ListConstraints returns the constraints scoped to a domain, most
// immediately binding first.
func (s *GoalService) ListConstraints(ctx context.Context, dom string) ([]constraint.Constraint, error) {
	dom = strings.ToLower(strings.TrimSpace(dom))
	if dom == "" {
		return nil, &domain.ValidationError{Fields: map[string]string{"domain": domain.MsgRequired}}
	}

	s.logger.InfoContext(ctx, "listing constraints", slog.String("domain", dom))

	cs, err := s.store.ConstraintsForDomain(ctx, dom)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list constraints",
			slog.String("operation", "ListConstraints"),
			slog.String("domain", dom),
			slog.Any("error", err),
		)
		return nil, err
	}

	return cs, nil
}
