package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/phonebook/internal/domain"
	"github.com/jsamuelsen11/phonebook/internal/platform/config"
)

// autosaveBreakerName identifies the autosave circuit in logs and health
// reports.
const autosaveBreakerName = "autosave"

// dirtySaver is the part of ContactStore the autosaver needs.
type dirtySaver interface {
	Save(ctx context.Context) error
	Dirty() bool
}

// Autosaver periodically saves a store while it has unsaved changes.
// Consecutive failures open a circuit breaker so a broken disk is not written
// to on every tick; the breaker lets one trial save through after the
// cooldown.
type Autosaver struct {
	store    dirtySaver
	interval time.Duration
	breaker  *gobreaker.CircuitBreaker[struct{}]
	logger   *slog.Logger
}

// NewAutosaver creates an Autosaver for store. A zero interval produces an
// Autosaver whose Run returns immediately.
func NewAutosaver(store dirtySaver, cfg *config.AutosaveConfig, logger *slog.Logger) *Autosaver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	maxFailures := max(cfg.MaxFailures, 1)

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        autosaveBreakerName,
		MaxRequests: 1,
		Timeout:     cfg.Cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Autosaver{
		store:    store,
		interval: cfg.Interval,
		breaker:  cb,
		logger:   logger,
	}
}

// Enabled reports whether a positive interval was configured.
func (a *Autosaver) Enabled() bool {
	return a.interval > 0
}

// Run saves on every tick until ctx is cancelled. Failures are logged and
// never stop the loop.
func (a *Autosaver) Run(ctx context.Context) {
	if !a.Enabled() {
		return
	}

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	a.logger.InfoContext(ctx, "autosave started", slog.Duration("interval", a.interval))
	for {
		select {
		case <-ctx.Done():
			a.logger.InfoContext(ctx, "autosave stopped")
			return
		case <-ticker.C:
			_ = a.Tick(ctx)
		}
	}
}

// Tick performs one autosave attempt. It returns nil without saving when the
// store has no unsaved changes, and domain.ErrUnavailable when the circuit is
// open.
func (a *Autosaver) Tick(ctx context.Context) error {
	if !a.store.Dirty() {
		return nil
	}

	_, err := a.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, a.store.Save(ctx)
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		a.logger.DebugContext(ctx, "autosave skipped", slog.String("breaker", a.breaker.State().String()))
		return fmt.Errorf("%w: autosave circuit %s", domain.ErrUnavailable, a.breaker.State())
	default:
		a.logger.WarnContext(ctx, "autosave failed",
			slog.String("operation", "Autosave"),
			slog.Any("error", err),
		)
		return err
	}
}

// Name implements ports.HealthChecker.
func (a *Autosaver) Name() string {
	return autosaveBreakerName
}

// HealthCheck reports the breaker state. An open circuit means recent saves
// failed and changes are only held in memory.
func (a *Autosaver) HealthCheck(_ context.Context) error {
	switch state := a.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("autosave degraded: circuit breaker %s", state)
	default:
		return fmt.Errorf("%w: autosave circuit breaker %s", domain.ErrUnavailable, state)
	}
}
