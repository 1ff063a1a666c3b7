package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/goalkeeper/internal/domain"
	"github.com/jsamuelsen11/goalkeeper/internal/ports"
)

// Compile-time check that ModuleService implements ports.ModuleService.
var _ ports.ModuleService = (*ModuleService)(nil)

// ModuleFactory builds the DomainModule client that talks to the remote
// module a spec describes. Injected so the service stays transport-agnostic
// and tests can swap in in-process fakes.
type ModuleFactory func(spec ports.ModuleSpec) (ports.DomainModule, error)

// ModuleService implements ports.ModuleService. It validates registration
// specs, builds the remote client through the factory, and hands the result
// to the registry, which owns name uniqueness.
type ModuleService struct {
	registry ports.ModuleRegistry
	factory  ModuleFactory
	logger   *slog.Logger
}

// NewModuleService creates a ModuleService. A nil logger is replaced with a
// no-op logger.
func NewModuleService(registry ports.ModuleRegistry, factory ModuleFactory, logger *slog.Logger) *ModuleService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ModuleService{
		registry: registry,
		factory:  factory,
		logger:   logger,
	}
}

// Register connects a remote domain module and adds it to the registry.
func (s *ModuleService) Register(ctx context.Context, spec ports.ModuleSpec) (ports.Registration, error) {
	spec.Name = strings.TrimSpace(spec.Name)
	spec.Domain = strings.ToLower(strings.TrimSpace(spec.Domain))
	spec.BaseURL = strings.TrimSpace(spec.BaseURL)

	s.logger.InfoContext(ctx, "registering domain module",
		slog.String("name", spec.Name),
		slog.String("domain", spec.Domain),
	)

	if err := validateModuleSpec(spec); err != nil {
		return ports.Registration{}, err
	}

	module, err := s.factory(spec)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to build module client",
			slog.String("operation", "Register"),
			slog.String("name", spec.Name),
			slog.Any("error", err),
		)
		return ports.Registration{}, fmt.Errorf("building client for module %q: %w", spec.Name, err)
	}

	if err := s.registry.Register(spec.Name, spec.Domain, module, spec.CrossDomainInterested); err != nil {
		s.logger.ErrorContext(ctx, "failed to register module",
			slog.String("operation", "Register"),
			slog.String("name", spec.Name),
			slog.Any("error", err),
		)
		return ports.Registration{}, err
	}

	return ports.Registration{
		Name:                  spec.Name,
		Domain:                spec.Domain,
		Module:                module,
		CrossDomainInterested: spec.CrossDomainInterested,
	}, nil
}

// List returns every registration in registration order.
func (s *ModuleService) List(ctx context.Context) []ports.Registration {
	s.logger.InfoContext(ctx, "listing registered modules")
	return s.registry.List()
}

// Unregister removes a registration by name.
func (s *ModuleService) Unregister(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)

	s.logger.InfoContext(ctx, "unregistering domain module", slog.String("name", name))

	if err := s.registry.Unregister(name); err != nil {
		s.logger.ErrorContext(ctx, "failed to unregister module",
			slog.String("operation", "Unregister"),
			slog.String("name", name),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

func validateModuleSpec(spec ports.ModuleSpec) error {
	fields := make(map[string]string)

	if spec.Name == "" {
		fields["name"] = domain.MsgRequired
	}
	if spec.Domain == "" {
		fields["domain"] = domain.MsgRequired
	}
	if spec.BaseURL == "" {
		fields["base_url"] = domain.MsgRequired
	} else if u, err := url.Parse(spec.BaseURL); err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		fields["base_url"] = fmt.Sprintf("must be an absolute http(s) URL, got %q", spec.BaseURL)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
