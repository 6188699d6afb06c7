package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/todo-lifecycle/internal/adapters/cli"
	"github.com/jsamuelsen11/todo-lifecycle/internal/adapters/memory"
	"github.com/jsamuelsen11/todo-lifecycle/internal/adapters/messaging"
	"github.com/jsamuelsen11/todo-lifecycle/internal/adapters/sqlstore"
	"github.com/jsamuelsen11/todo-lifecycle/internal/app"
	"github.com/jsamuelsen11/todo-lifecycle/internal/platform/config"
	"github.com/jsamuelsen11/todo-lifecycle/internal/platform/health"
	"github.com/jsamuelsen11/todo-lifecycle/internal/platform/logging"
	"github.com/jsamuelsen11/todo-lifecycle/internal/ports"
)

// bootstrap loads the profile's configuration and wires the dependency
// graph for a single command invocation.
func bootstrap(ctx context.Context, profile string) (*cli.Runtime, error) {
	return bootstrapWith(ctx, profile, os.Stderr)
}

func bootstrapWith(ctx context.Context, profile string, logOut io.Writer, opts ...config.Option) (*cli.Runtime, error) {
	cfg, err := config.Load(profile, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, logOut)
	logger.DebugContext(ctx, "configuration loaded",
		slog.String("profile", profile),
		slog.String("storage_driver", cfg.Storage.Driver),
		slog.Bool("publisher_enabled", cfg.Publisher.Enabled),
	)

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolve the service (eagerly wires the full graph).
	svc, err := do.Invoke[ports.ToDoService](injector)
	if err != nil {
		return nil, fmt.Errorf("resolving todo service: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	repo := do.MustInvoke[ports.ToDoRepository](injector)
	if checker, ok := repo.(ports.HealthChecker); ok {
		registry.Register(checker)
	}
	if cfg.Publisher.Enabled {
		registry.Register(do.MustInvoke[*messaging.LogPublisher](injector))
	}

	rt := &cli.Runtime{
		Service: svc,
		Health:  registry,
		Logger:  logger,
		Output:  cfg.Output.Format,
	}
	if closer, ok := repo.(io.Closer); ok {
		rt.Close = closer.Close
	}
	return rt, nil
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (ports.ToDoRepository, error) {
		if cfg.Storage.Driver == config.DriverMemory {
			return memory.New(), nil
		}
		store, err := sqlstore.Open(ctx, cfg.Storage, logger)
		if err != nil {
			return nil, fmt.Errorf("opening todo store: %w", err)
		}
		return store, nil
	})

	do.Provide(injector, func(_ do.Injector) (*messaging.LogPublisher, error) {
		return messaging.NewLogPublisher(logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ToDoService, error) {
		repo := do.MustInvoke[ports.ToDoRepository](i)

		var publisher ports.MessagePublisher
		if cfg.Publisher.Enabled {
			publisher = do.MustInvoke[*messaging.LogPublisher](i)
		}
		return app.NewToDoService(repo, publisher, logger), nil
	})
}
