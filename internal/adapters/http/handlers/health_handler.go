package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/phonebook/internal/adapters/http/dto"
	"github.com/jsamuelsen11/phonebook/internal/platform/logging"
	"github.com/jsamuelsen11/phonebook/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// directory is the part of the contact store the readiness probe reports on.
type directory interface {
	Len() int
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
	dir      directory
}

// NewHealthHandler creates a HealthHandler. dir may be nil, in which case
// readiness reports zero contacts.
func NewHealthHandler(registry ports.HealthRegistry, dir directory) *HealthHandler {
	return &HealthHandler{registry: registry, dir: dir}
}

// Liveness handles GET /health/live. The process answering is the check.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.LivenessResponse{Status: statusOK})
}

// Readiness handles GET /health/ready: 200 when every registered checker
// passes, 503 otherwise. Failing checkers are logged with their cause.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := dto.ReadinessResponse{
		Status: statusReady,
		Checks: make(map[string]string, len(results)),
	}
	if h.dir != nil {
		resp.Contacts = h.dir.Len()
	}

	for name, err := range results {
		if err == nil {
			resp.Checks[name] = statusOK
			continue
		}
		resp.Checks[name] = err.Error()
		resp.Status = statusNotReady
		logging.FromContext(r.Context()).Warn("readiness check failed",
			slog.String("check", name),
			slog.Any("error", err),
		)
	}

	code := http.StatusOK
	if resp.Status == statusNotReady {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, r, code, resp)
}
