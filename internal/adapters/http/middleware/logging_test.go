package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/phonebook/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/phonebook/internal/platform/logging"
)

func TestLogging_RecordsRequest(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("created"))
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contacts", http.NoBody)
	handler.ServeHTTP(rec, req)

	output := buf.String()
	for _, want := range []string{
		"request started",
		"request completed",
		"method=POST",
		"path=/api/v1/contacts",
		"status=201",
		"bytes=7",
		"duration=",
		"level=INFO",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("log output missing %q:\n%s", want, output)
		}
	}
}

func TestLogging_ServerErrorsLogAtErrorLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/contacts/save", http.NoBody))

	if !strings.Contains(buf.String(), `level=ERROR msg="request completed"`) {
		t.Errorf("completion not logged at error level:\n%s", buf.String())
	}
}

func TestLogging_EnrichedLoggerInContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.RequestID()(
		middleware.CorrelationID()(
			middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				logging.FromContext(r.Context()).Info("handler log")
			})),
		),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/contacts", http.NoBody)
	req.Header.Set("X-Request-ID", "req-log")
	req.Header.Set("X-Correlation-ID", "corr-log")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if !strings.Contains(line, "request_id=req-log") || !strings.Contains(line, "correlation_id=corr-log") {
			t.Errorf("log line missing request IDs: %s", line)
		}
	}
	if !strings.Contains(buf.String(), "handler log") {
		t.Error("handler did not log through the context logger")
	}
}

func TestLogging_RedactsHeadersAtDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/contacts", http.NoBody)
	req.Header.Set("Authorization", "Bearer hunter2")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if strings.Contains(buf.String(), "hunter2") {
		t.Errorf("credential leaked into logs:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "Authorization=[REDACTED]") {
		t.Errorf("Authorization header not logged as redacted:\n%s", buf.String())
	}
}

func TestLogging_ReadsLogAtDebugLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	handler := middleware.Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("[]"))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/contacts", http.NoBody))

	if buf.Len() != 0 {
		t.Errorf("successful read logged at info level:\n%s", buf.String())
	}
}
