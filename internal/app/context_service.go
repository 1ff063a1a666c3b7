package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/goalkeeper/internal/domain/coherence"
	"github.com/jsamuelsen11/goalkeeper/internal/domain/constraint"
	"github.com/jsamuelsen11/goalkeeper/internal/ports"
)

// Compile-time check that ContextService implements ports.ContextService.
var _ ports.ContextService = (*ContextService)(nil)

// ContextService implements ports.ContextService. It assembles the planning
// snapshot from a single atomic store read, so the goals and the constraints
// in one snapshot always belong to the same point in time.
type ContextService struct {
	store  ports.GoalStore
	logger *slog.Logger
}

// NewContextService creates a ContextService. A nil logger is replaced with a
// no-op logger.
func NewContextService(store ports.GoalStore, logger *slog.Logger) *ContextService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ContextService{
		store:  store,
		logger: logger,
	}
}

// Context returns all goals and all constraints grouped by domain. The
// snapshot is recomputed on every call and never cached; calling it twice
// with no interleaved mutation returns structurally equal results.
func (s *ContextService) Context(ctx context.Context) (*coherence.Context, error) {
	s.logger.InfoContext(ctx, "assembling planning context")

	goals, cs, err := s.store.Snapshot(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to snapshot goals and constraints",
			slog.String("operation", "Context"),
			slog.Any("error", err),
		)
		return nil, err
	}

	byDomain := make(map[string][]constraint.Constraint)
	for _, c := range cs {
		byDomain[c.Domain] = append(byDomain[c.Domain], c)
	}

	return &coherence.Context{
		Goals:               goals,
		ConstraintsByDomain: byDomain,
	}, nil
}
