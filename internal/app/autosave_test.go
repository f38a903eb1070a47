package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/phonebook/internal/domain"
	"github.com/jsamuelsen11/phonebook/internal/platform/config"
)

// fakeSaver counts saves and returns err from each of them.
type fakeSaver struct {
	dirty atomic.Bool
	saves atomic.Int32
	err   error
}

func (f *fakeSaver) Save(context.Context) error {
	f.saves.Add(1)
	if f.err != nil {
		return f.err
	}
	f.dirty.Store(false)
	return nil
}

func (f *fakeSaver) Dirty() bool { return f.dirty.Load() }

func autosaveConfig() *config.AutosaveConfig {
	return &config.AutosaveConfig{
		Interval:    10 * time.Millisecond,
		MaxFailures: 2,
		Cooldown:    time.Hour,
	}
}

func TestAutosaver_Tick(t *testing.T) {
	t.Parallel()

	t.Run("skips clean store", func(t *testing.T) {
		t.Parallel()
		f := &fakeSaver{}
		a := NewAutosaver(f, autosaveConfig(), discardLogger())

		if err := a.Tick(context.Background()); err != nil {
			t.Errorf("Tick() error = %v, want nil", err)
		}
		if n := f.saves.Load(); n != 0 {
			t.Errorf("saves = %d, want 0", n)
		}
	})

	t.Run("saves dirty store", func(t *testing.T) {
		t.Parallel()
		f := &fakeSaver{}
		f.dirty.Store(true)
		a := NewAutosaver(f, autosaveConfig(), discardLogger())

		if err := a.Tick(context.Background()); err != nil {
			t.Errorf("Tick() error = %v, want nil", err)
		}
		if n := f.saves.Load(); n != 1 {
			t.Errorf("saves = %d, want 1", n)
		}
		if f.Dirty() {
			t.Error("Dirty() = true after save, want false")
		}
	})

	t.Run("stops saving once the breaker opens", func(t *testing.T) {
		t.Parallel()
		writeErr := domain.NewWriteError("/gone/contacts.json", errors.New("no such file or directory"))
		f := &fakeSaver{err: writeErr}
		f.dirty.Store(true)
		a := NewAutosaver(f, autosaveConfig(), discardLogger())

		for range 2 {
			if err := a.Tick(context.Background()); !errors.Is(err, domain.ErrPersistenceWrite) {
				t.Fatalf("Tick() error = %v, want ErrPersistenceWrite", err)
			}
		}

		err := a.Tick(context.Background())
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("Tick() with open breaker error = %v, want ErrUnavailable", err)
		}
		if n := f.saves.Load(); n != 2 {
			t.Errorf("saves = %d, want 2", n)
		}
		if err := a.HealthCheck(context.Background()); !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("HealthCheck() error = %v, want ErrUnavailable", err)
		}
	})
}

func TestAutosaver_HealthCheck(t *testing.T) {
	t.Parallel()

	a := NewAutosaver(&fakeSaver{}, autosaveConfig(), discardLogger())
	if a.Name() != "autosave" {
		t.Errorf("Name() = %q, want %q", a.Name(), "autosave")
	}
	if err := a.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v, want nil", err)
	}
}

func TestAutosaver_Run(t *testing.T) {
	t.Parallel()

	t.Run("disabled returns immediately", func(t *testing.T) {
		t.Parallel()
		cfg := autosaveConfig()
		cfg.Interval = 0
		a := NewAutosaver(&fakeSaver{}, cfg, discardLogger())

		if a.Enabled() {
			t.Error("Enabled() = true, want false")
		}
		done := make(chan struct{})
		go func() {
			a.Run(context.Background())
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Run() did not return for a zero interval")
		}
	})

	t.Run("saves until cancelled", func(t *testing.T) {
		t.Parallel()
		f := &fakeSaver{}
		f.dirty.Store(true)
		a := NewAutosaver(f, autosaveConfig(), discardLogger())

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			a.Run(ctx)
			close(done)
		}()

		deadline := time.After(2 * time.Second)
		for f.saves.Load() == 0 {
			select {
			case <-deadline:
				t.Fatal("autosave never saved")
			case <-time.After(5 * time.Millisecond):
			}
		}
		cancel()
		<-done
	})
}
