// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/goalkeeper/internal/adapters/http"
	"github.com/jsamuelsen11/goalkeeper/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/goalkeeper/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/goalkeeper/internal/adapters/modules/remote"
	"github.com/jsamuelsen11/goalkeeper/internal/adapters/store/memory"
	"github.com/jsamuelsen11/goalkeeper/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/goalkeeper/internal/app"
	"github.com/jsamuelsen11/goalkeeper/internal/app/deriver"
	"github.com/jsamuelsen11/goalkeeper/internal/platform/config"
	"github.com/jsamuelsen11/goalkeeper/internal/platform/health"
	"github.com/jsamuelsen11/goalkeeper/internal/platform/httpclient"
	"github.com/jsamuelsen11/goalkeeper/internal/platform/logging"
	"github.com/jsamuelsen11/goalkeeper/internal/platform/telemetry"
	"github.com/jsamuelsen11/goalkeeper/internal/ports"
	"github.com/jsamuelsen11/goalkeeper/internal/registry"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	startupRegisterWait   = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// Persistence is opened before the DI graph so its lifecycle brackets
	// everything else.
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening goal store: %w", err)
	}
	defer closeStore()

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	do.ProvideValue(injector, store)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	healthRegistry := do.MustInvoke[ports.HealthRegistry](injector)
	if checker, ok := store.(ports.HealthChecker); ok {
		healthRegistry.Register(checker)
	}

	// Connect the modules declared in config before accepting traffic.
	moduleSvc := do.MustInvoke[ports.ModuleService](injector)
	if err := registerConfiguredModules(ctx, moduleSvc, cfg.Modules); err != nil {
		return err
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// openStore builds the GoalStore selected by config. The returned closer is
// a no-op for the in-memory store.
func openStore(cfg *config.Config) (ports.GoalStore, func(), error) {
	switch cfg.Store.Driver {
	case "sqlite":
		s, err := sqlite.Open(cfg.Store.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	default:
		return memory.New(), func() {}, nil
	}
}

// registerConfiguredModules connects every module declared in config. The
// module table is in-memory only, so it is rebuilt here on every start.
func registerConfiguredModules(ctx context.Context, svc ports.ModuleService, modules []config.ModuleConfig) error {
	if len(modules) == 0 {
		return nil
	}

	regCtx, cancel := context.WithTimeout(ctx, startupRegisterWait)
	defer cancel()

	for _, m := range modules {
		spec := ports.ModuleSpec{
			Name:                  m.Name,
			Domain:                m.Domain,
			BaseURL:               m.BaseURL,
			CrossDomainInterested: m.CrossDomainInterested,
		}
		if _, err := svc.Register(regCtx, spec); err != nil {
			return fmt.Errorf("registering module %q: %w", m.Name, err)
		}
	}
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.ModuleRegistry, error) {
		return registry.New(), nil
	})

	do.Provide(injector, func(_ do.Injector) (*deriver.Deriver, error) {
		rules := deriver.DefaultRules()
		if len(cfg.Derivation.Rules) > 0 {
			rules = make([]deriver.Rule, len(cfg.Derivation.Rules))
			for i, r := range cfg.Derivation.Rules {
				rules[i] = deriver.Rule{Hint: r.Hint, Type: r.Type, Domain: r.Domain}
			}
		}
		return deriver.New(rules)
	})

	do.Provide(injector, func(i do.Injector) (app.ModuleFactory, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		healthRegistry := do.MustInvoke[ports.HealthRegistry](i)

		return func(spec ports.ModuleSpec) (ports.DomainModule, error) {
			client := httpclient.New(&cfg.Client, spec.Name, spec.BaseURL, metrics, logger)
			healthRegistry.Register(client)
			return remote.New(spec.Domain, client, logger), nil
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.GoalService, error) {
		store := do.MustInvoke[ports.GoalStore](i)
		d := do.MustInvoke[*deriver.Deriver](i)
		return app.NewGoalService(store, d, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CoherenceService, error) {
		store := do.MustInvoke[ports.GoalStore](i)
		moduleRegistry := do.MustInvoke[ports.ModuleRegistry](i)
		opts := app.CheckOptions{
			FirstFailureOnly:   cfg.Coherence.FirstFailureOnly,
			CrossDomainWorkers: cfg.Coherence.CrossDomainWorkers,
		}
		return app.NewCoherenceService(store, moduleRegistry, opts, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ContextService, error) {
		store := do.MustInvoke[ports.GoalStore](i)
		return app.NewContextService(store, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ModuleService, error) {
		moduleRegistry := do.MustInvoke[ports.ModuleRegistry](i)
		factory := do.MustInvoke[app.ModuleFactory](i)
		return app.NewModuleService(moduleRegistry, factory, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.GoalHandler, error) {
		svc := do.MustInvoke[ports.GoalService](i)
		return handlers.NewGoalHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.CoherenceHandler, error) {
		svc := do.MustInvoke[ports.CoherenceService](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return handlers.NewCoherenceHandler(svc, metrics), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ContextHandler, error) {
		svc := do.MustInvoke[ports.ContextService](i)
		return handlers.NewContextHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ModuleHandler, error) {
		svc := do.MustInvoke[ports.ModuleService](i)
		return handlers.NewModuleHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		healthRegistry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(healthRegistry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		goalH := do.MustInvoke[*handlers.GoalHandler](i)
		coherenceH := do.MustInvoke[*handlers.CoherenceHandler](i)
		contextH := do.MustInvoke[*handlers.ContextHandler](i)
		moduleH := do.MustInvoke[*handlers.ModuleHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(goalH, coherenceH, contextH, moduleH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
