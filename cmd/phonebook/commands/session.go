package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/phonebook/internal/adapters/http"
	"github.com/jsamuelsen11/phonebook/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/phonebook/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/phonebook/internal/adapters/storage"
	"github.com/jsamuelsen11/phonebook/internal/app"
	"github.com/jsamuelsen11/phonebook/internal/domain"
	"github.com/jsamuelsen11/phonebook/internal/platform/config"
	"github.com/jsamuelsen11/phonebook/internal/platform/health"
	"github.com/jsamuelsen11/phonebook/internal/platform/logging"
	"github.com/jsamuelsen11/phonebook/internal/platform/telemetry"
	"github.com/jsamuelsen11/phonebook/internal/ports"
)

const otelShutdownTimeout = 5 * time.Second

// session is the wired application for one command invocation.
type session struct {
	cfg      *config.Config
	logger   *slog.Logger
	injector *do.RootScope

	logCloser io.Closer
	otel      *otelProviders
}

func newSession(ctx context.Context, opts *rootOptions) (*session, error) {
	loadOpts := []config.Option{config.WithConfigDir(opts.configDir)}
	if opts.data != "" {
		loadOpts = append(loadOpts, config.WithOverride("storage.path", opts.data))
	}

	cfg, err := config.Load(opts.profile, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger, logCloser, err := logging.Open(cfg.Log.Level, cfg.Log.Format, cfg.Log.File)
	if err != nil {
		return nil, err
	}

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	registerDependencies(injector, cfg, logger)

	return &session{
		cfg:       cfg,
		logger:    logger,
		injector:  injector,
		logCloser: logCloser,
		otel:      otel,
	}, nil
}

// Close flushes telemetry and releases the log file.
func (s *session) Close(ctx context.Context) error {
	otelCtx, cancel := context.WithTimeout(ctx, otelShutdownTimeout)
	defer cancel()

	return errors.Join(
		s.otel.Shutdown(otelCtx),
		s.logCloser.Close(),
	)
}

// store resolves the contact store and loads the persisted directory into it.
// One-shot commands use it: an unreadable file fails the command and is left
// untouched.
func (s *session) store(ctx context.Context) (*app.ContactStore, error) {
	store, err := do.Invoke[*app.ContactStore](s.injector)
	if err != nil {
		return nil, fmt.Errorf("resolving contact store: %w", err)
	}
	if err := store.Load(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

// liveStore is store for serve and tui. An unreadable file is logged and
// moved aside, and the session carries on with an empty directory. If the
// file cannot be moved, the repository refuses to save over it.
func (s *session) liveStore(ctx context.Context) (*app.ContactStore, error) {
	store, err := do.Invoke[*app.ContactStore](s.injector)
	if err != nil {
		return nil, fmt.Errorf("resolving contact store: %w", err)
	}

	loadErr := store.Load(ctx)
	if loadErr == nil {
		return store, nil
	}
	if ctx.Err() != nil || !errors.Is(loadErr, domain.ErrPersistenceRead) {
		return nil, loadErr
	}
	s.logger.ErrorContext(ctx, "data file unreadable, starting with an empty directory",
		slog.String("operation", "load"),
		slog.Any("error", loadErr),
	)

	repo, err := do.Invoke[*storage.FileRepository](s.injector)
	if err != nil {
		return nil, err
	}
	aside, err := repo.SetAside(time.Now())
	switch {
	case err != nil:
		s.logger.ErrorContext(ctx, "unreadable data file left in place, saving is disabled",
			slog.String("path", repo.Location()),
			slog.Any("error", err),
		)
	case aside != "":
		s.logger.WarnContext(ctx, "unreadable data file moved aside",
			slog.String("path", repo.Location()),
			slog.String("moved_to", aside),
		)
	}
	return store, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*storage.FileRepository, error) {
		opts := []storage.Option{storage.WithFormat(cfg.Storage.ResolvedFormat())}
		if passphrase := cfg.Storage.Passphrase(); passphrase != "" {
			opts = append(opts, storage.WithPassphrase(passphrase))
		}
		return storage.NewFileRepository(cfg.Storage.Path, opts...)
	})

	do.Provide(injector, func(i do.Injector) (*app.ContactStore, error) {
		repo, err := do.Invoke[*storage.FileRepository](i)
		if err != nil {
			return nil, err
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewContactStore(repo, logger,
			app.WithStrict(cfg.Storage.Strict),
			app.WithMetrics(metrics),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.Autosaver, error) {
		store, err := do.Invoke[*app.ContactStore](i)
		if err != nil {
			return nil, err
		}
		return app.NewAutosaver(store, &cfg.Storage.Autosave, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		repo, err := do.Invoke[*storage.FileRepository](i)
		if err != nil {
			return nil, err
		}
		autosaver, err := do.Invoke[*app.Autosaver](i)
		if err != nil {
			return nil, err
		}

		registry := health.New()
		registry.Register(repo)
		if autosaver.Enabled() {
			registry.Register(autosaver)
		}
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ContactHandler, error) {
		store, err := do.Invoke[*app.ContactStore](i)
		if err != nil {
			return nil, err
		}
		return handlers.NewContactHandler(store), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry, err := do.Invoke[ports.HealthRegistry](i)
		if err != nil {
			return nil, err
		}
		store, err := do.Invoke[*app.ContactStore](i)
		if err != nil {
			return nil, err
		}
		return handlers.NewHealthHandler(registry, store), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		contactH, err := do.Invoke[*handlers.ContactHandler](i)
		if err != nil {
			return nil, err
		}
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		limits := cfg.Server.RateLimit

		stack := middleware.Stack{
			Logger:         logger,
			Metrics:        metrics,
			Limiter:        middleware.NewLimiter(limits.RequestsPerSecond, limits.BurstSize),
			RequestTimeout: cfg.Server.RequestTimeout,
		}
		return adapthttp.NewRouter(contactH, healthH, stack.Middlewares()...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler, err := do.Invoke[nethttp.Handler](i)
		if err != nil {
			return nil, err
		}
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
