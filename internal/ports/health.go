package ports

import "context"

// HealthChecker reports whether one dependency of the directory is usable.
// The file repository checks that its directory is writable; the autosaver
// reports its circuit breaker.
type HealthChecker interface {
	// Name is the key the readiness report uses, e.g. "contacts-file".
	Name() string

	// HealthCheck returns nil when healthy. It must give up when ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers for the readiness probe.
type HealthRegistry interface {
	// Register adds checker, replacing any earlier checker with the same name.
	Register(checker HealthChecker)

	// CheckAll runs every checker and returns the outcome by name; nil means
	// healthy.
	CheckAll(ctx context.Context) map[string]error
}
