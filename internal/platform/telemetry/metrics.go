package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Attribute keys for metric labels.
var (
	AttrHTTPMethod = attribute.Key("http.method")
	AttrHTTPStatus = attribute.Key("http.status_code")
	AttrHTTPRoute  = attribute.Key("http.route")
	AttrOperation  = attribute.Key("operation")
	AttrResult     = attribute.Key("result")
)

// Result attribute values.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics holds the instruments phonebook records into. A nil *Metrics is a
// valid no-op recorder.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ContactMutations      metric.Int64Counter
	PersistenceDuration   metric.Float64Histogram
}

// NewMetrics creates every instrument on a meter named scope.
func NewMetrics(mp metric.MeterProvider, scope string) (*Metrics, error) {
	meter := mp.Meter(scope)
	m := &Metrics{}
	var err error

	if m.ServerRequestDuration, err = meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of API requests"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, instrumentErr("http.server.request.duration", err)
	}
	if m.ServerRequestTotal, err = meter.Int64Counter("http.server.request.total",
		metric.WithDescription("API requests served"),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, instrumentErr("http.server.request.total", err)
	}
	if m.ContactMutations, err = meter.Int64Counter("phonebook.contacts.mutations",
		metric.WithDescription("Adds, removes, sorts and loads applied to the directory"),
		metric.WithUnit("{mutation}"),
	); err != nil {
		return nil, instrumentErr("phonebook.contacts.mutations", err)
	}
	if m.PersistenceDuration, err = meter.Float64Histogram("phonebook.persistence.duration",
		metric.WithDescription("Duration of data file saves and loads"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, instrumentErr("phonebook.persistence.duration", err)
	}
	return m, nil
}

func instrumentErr(name string, err error) error {
	return fmt.Errorf("creating %s: %w", name, err)
}

// RecordMutation counts one store mutation.
func (m *Metrics) RecordMutation(ctx context.Context, operation string) {
	if m == nil {
		return
	}
	m.ContactMutations.Add(ctx, 1, metric.WithAttributes(AttrOperation.String(operation)))
}

// RecordPersistence records how long a save or load begun at start took and
// whether it failed.
func (m *Metrics) RecordPersistence(ctx context.Context, operation string, start time.Time, err error) {
	if m == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	m.PersistenceDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
		AttrOperation.String(operation),
		AttrResult.String(result),
	))
}
