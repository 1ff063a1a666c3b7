package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/goalkeeper/internal/app/fanout"
	"github.com/jsamuelsen11/goalkeeper/internal/domain"
	"github.com/jsamuelsen11/goalkeeper/internal/domain/coherence"
	"github.com/jsamuelsen11/goalkeeper/internal/domain/constraint"
	"github.com/jsamuelsen11/goalkeeper/internal/ports"
)

// Compile-time check that CoherenceService implements ports.CoherenceService.
var _ ports.CoherenceService = (*CoherenceService)(nil)

// CheckOptions tune how a coherence check gathers issues.
type CheckOptions struct {
	// FirstFailureOnly stops constraint evaluation at the first violated
	// constraint instead of accumulating every violation. Module validation
	// before and cross-domain validation after still run in full.
	FirstFailureOnly bool

	// CrossDomainWorkers caps how many interested modules are queried
	// concurrently. Values below 1 are treated as 1.
	CrossDomainWorkers int
}

// CoherenceService implements ports.CoherenceService. A check runs the
// validation protocol in a fixed order: the acting domain's own module first,
// then the constraints scoped to that domain, then every cross-domain
// interested module. Issues keep that discovery order in the verdict.
//
// The check is read-only with respect to core state. Module calls are
// potentially blocking I/O and are made without holding any store or
// registry lock.
type CoherenceService struct {
	store    ports.GoalStore
	registry ports.ModuleRegistry
	opts     CheckOptions
	logger   *slog.Logger
}

// NewCoherenceService creates a CoherenceService. A nil logger is replaced
// with a no-op logger.
func NewCoherenceService(store ports.GoalStore, registry ports.ModuleRegistry, opts CheckOptions, logger *slog.Logger) *CoherenceService {
	if opts.CrossDomainWorkers < 1 {
		opts.CrossDomainWorkers = 1
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CoherenceService{
		store:    store,
		registry: registry,
		opts:     opts,
		logger:   logger,
	}
}

// Check validates a proposed action against the target domain. A verdict with
// Valid=false is a successful check; an error means the check could not be
// completed and no verdict is returned.
func (s *CoherenceService) Check(ctx context.Context, dom string, payload map[string]any) (*coherence.Verdict, error) {
	dom = strings.ToLower(strings.TrimSpace(dom))
	if dom == "" {
		return nil, &domain.ValidationError{Fields: map[string]string{"domain": domain.MsgRequired}}
	}

	s.logger.InfoContext(ctx, "checking action coherence", slog.String("domain", dom))

	target, err := s.registry.Resolve(dom)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve domain module",
			slog.String("operation", "Check"),
			slog.String("domain", dom),
			slog.Any("error", err),
		)
		return nil, err
	}

	var issues []string

	// The acting domain's own module judges the action first.
	report, err := target.Module.Validate(ctx, payload)
	if err != nil {
		s.logger.ErrorContext(ctx, "domain module failed",
			slog.String("operation", "Check"),
			slog.String("module", target.Name),
			slog.Any("error", err),
		)
		return nil, &domain.SystemError{Module: target.Name, Err: err}
	}
	if !report.Valid {
		for _, issue := range report.Issues {
			issues = append(issues, coherence.DomainIssue(issue))
		}
	}

	// Constraints scoped to the domain, most immediately binding first.
	cs, err := s.store.ConstraintsForDomain(ctx, dom)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch constraints",
			slog.String("operation", "Check"),
			slog.String("domain", dom),
			slog.Any("error", err),
		)
		return nil, err
	}
	for i := range cs {
		violation, violated, err := constraint.Evaluate(&cs[i], payload)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to evaluate constraint",
				slog.String("operation", "Check"),
				slog.String("constraint_id", cs[i].ID),
				slog.Any("error", err),
			)
			return nil, err
		}
		if violated {
			issues = append(issues, coherence.ConstraintIssue(&cs[i], violation))
			if s.opts.FirstFailureOnly {
				break
			}
		}
	}

	// Interested modules in other domains surface second-order effects.
	// fanout preserves input order, so cross-domain issues keep registration
	// order regardless of which module answers first.
	interested := s.registry.ListInterested(dom)
	results := fanout.Run(ctx, s.opts.CrossDomainWorkers, interested,
		func(ctx context.Context, reg ports.Registration) (coherence.Report, error) {
			return reg.Module.Validate(ctx, payload)
		})
	for i, res := range results {
		if res.Err != nil {
			s.logger.ErrorContext(ctx, "cross-domain module failed",
				slog.String("operation", "Check"),
				slog.String("module", interested[i].Name),
				slog.Any("error", res.Err),
			)
			return nil, &domain.SystemError{Module: interested[i].Name, Err: res.Err}
		}
		if !res.Value.Valid {
			for _, issue := range res.Value.Issues {
				issues = append(issues, coherence.CrossDomainIssue(interested[i].Name, issue))
			}
		}
	}

	verdict := &coherence.Verdict{
		Valid:  len(issues) == 0,
		Issues: issues,
	}

	s.logger.InfoContext(ctx, "coherence check complete",
		slog.String("domain", dom),
		slog.Bool("valid", verdict.Valid),
		slog.Int("issues", len(verdict.Issues)),
	)

	return verdict, nil
}
