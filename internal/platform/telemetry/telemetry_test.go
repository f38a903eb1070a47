package telemetry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/phonebook/internal/platform/telemetry"
)

// Tests that install global providers are not parallel.

func TestInitTracer(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  bool
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp", exporter: telemetry.ExporterOTLP, endpoint: "http://localhost:4318"},
		{name: "otlp bare host", exporter: telemetry.ExporterOTLP, endpoint: "localhost:4318"},
		{name: "otlp https", exporter: telemetry.ExporterOTLP, endpoint: "https://collector.internal"},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, wantErr: true},
		{name: "unknown exporter", exporter: "zipkin", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp, err := telemetry.InitTracer(t.Context(), "phonebook-test", tt.exporter, tt.endpoint)
			if tt.wantErr {
				if err == nil {
					t.Fatal("InitTracer() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("InitTracer() error = %v", err)
			}
			// No collector runs in unit tests, so an OTLP flush may fail.
			t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

			if len(otel.GetTextMapPropagator().Fields()) == 0 {
				t.Error("global propagator has no fields, want trace context and baggage")
			}
		})
	}
}

func TestInitMeter(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  bool
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp", exporter: telemetry.ExporterOTLP, endpoint: "http://localhost:4318"},
		{name: "otlp bare host", exporter: telemetry.ExporterOTLP, endpoint: "localhost:4318"},
		{name: "otlp https", exporter: telemetry.ExporterOTLP, endpoint: "https://collector.internal"},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, wantErr: true},
		{name: "unknown exporter", exporter: "prometheus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mp, err := telemetry.InitMeter(t.Context(), "phonebook-test", tt.exporter, tt.endpoint)
			if tt.wantErr {
				if err == nil {
					t.Fatal("InitMeter() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("InitMeter() error = %v", err)
			}
			t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
		})
	}
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Aggregation {
	t.Helper()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(t.Context(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	out := make(map[string]metricdata.Aggregation)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m.Data
		}
	}
	return out
}

func TestMetrics_RecordMutation(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	metrics, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), "phonebook")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	ctx := t.Context()
	metrics.RecordMutation(ctx, "add")
	metrics.RecordMutation(ctx, "add")
	metrics.RecordMutation(ctx, "remove")

	sum, ok := collect(t, reader)["phonebook.contacts.mutations"].(metricdata.Sum[int64])
	if !ok {
		t.Fatal("phonebook.contacts.mutations not recorded as an int64 sum")
	}

	got := make(map[string]int64)
	for _, dp := range sum.DataPoints {
		op, _ := dp.Attributes.Value(telemetry.AttrOperation)
		got[op.AsString()] = dp.Value
	}
	if got["add"] != 2 || got["remove"] != 1 {
		t.Errorf("mutations = %v, want add=2 remove=1", got)
	}
}

func TestMetrics_RecordPersistence(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	metrics, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), "phonebook")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	ctx := t.Context()
	start := time.Now()
	metrics.RecordPersistence(ctx, "save", start, nil)
	metrics.RecordPersistence(ctx, "load", start, errors.New("corrupt file"))

	hist, ok := collect(t, reader)["phonebook.persistence.duration"].(metricdata.Histogram[float64])
	if !ok {
		t.Fatal("phonebook.persistence.duration not recorded as a float64 histogram")
	}

	got := make(map[string]string)
	for _, dp := range hist.DataPoints {
		op, _ := dp.Attributes.Value(telemetry.AttrOperation)
		result, _ := dp.Attributes.Value(telemetry.AttrResult)
		got[op.AsString()] = result.AsString()
		if dp.Count != 1 {
			t.Errorf("%s count = %d, want 1", op.AsString(), dp.Count)
		}
	}
	if got["save"] != telemetry.ResultSuccess || got["load"] != telemetry.ResultError {
		t.Errorf("results = %v, want save=success load=error", got)
	}
}

func TestMetrics_NilSafe(t *testing.T) {
	t.Parallel()

	var m *telemetry.Metrics
	m.RecordMutation(context.Background(), "sort")
	m.RecordPersistence(context.Background(), "save", time.Now(), nil)
}

func TestNewMetrics_NoopProvider(t *testing.T) {
	t.Parallel()

	metrics, err := telemetry.NewMetrics(noop.NewMeterProvider(), "phonebook")
	if err != nil {
		t.Fatalf("NewMetrics(noop) error = %v", err)
	}
	if metrics.ServerRequestDuration == nil || metrics.ServerRequestTotal == nil {
		t.Error("server request instruments not created")
	}
	metrics.RecordMutation(context.Background(), "load")
}
