// Package telemetry wires optional OpenTelemetry instrumentation into the kit
// as a plugin: spans for component mount/unmount and events for named state
// transitions. The OTLP/HTTP exporter is gated on OTEL_EXPORTER_OTLP_ENDPOINT
// and disabled silently when unset; no widget ever requires it.
package telemetry

import (
	"context"
	"os"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/banda-ui/banda/plugin"
)

// PluginName is the name the telemetry plugin installs under.
const PluginName = "banda.telemetry"

// Exporter exports kit lifecycle spans to an OTLP endpoint.
type Exporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
	enabled  bool

	mu    sync.Mutex
	spans map[string]oteltrace.Span // mount id -> open span
}

// NewExporter creates an exporter if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns (nil, nil) when the endpoint is not configured.
func NewExporter(ctx context.Context) (*Exporter, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil // disabled
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // local collectors; make configurable if needed
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "banda"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return &Exporter{
		provider: provider,
		tracer:   provider.Tracer("banda/telemetry"),
		enabled:  true,
		spans:    make(map[string]oteltrace.Span),
	}, nil
}

// Plugin returns the telemetry plugin for installation into a registry.
// A nil Exporter yields a plugin whose hooks do nothing, so callers can
// install unconditionally.
func (e *Exporter) Plugin() plugin.Plugin {
	return plugin.Plugin{
		Name:    PluginName,
		Version: "1",
		Hooks: plugin.Hooks{
			OnMount:          e.onMount,
			OnUnmount:        e.onUnmount,
			AfterStateUpdate: e.afterStateUpdate,
		},
	}
}

// onMount opens a span covering the instance's mounted lifetime.
func (e *Exporter) onMount(id string) {
	if e == nil || !e.enabled {
		return
	}
	_, span := e.tracer.Start(context.Background(), "component.mounted",
		oteltrace.WithAttributes(attribute.String("banda.instance.id", id)))
	e.mu.Lock()
	e.spans[id] = span
	e.mu.Unlock()
}

// onUnmount ends the instance's span.
func (e *Exporter) onUnmount(id string) {
	if e == nil || !e.enabled {
		return
	}
	e.mu.Lock()
	span, ok := e.spans[id]
	delete(e.spans, id)
	e.mu.Unlock()
	if ok {
		span.End()
	}
}

// afterStateUpdate records a named state transition as a zero-length span.
// Unnamed states are skipped to keep the trace volume bounded.
func (e *Exporter) afterStateUpdate(name string, _, _ any) {
	if e == nil || !e.enabled || name == "" {
		return
	}
	_, span := e.tracer.Start(context.Background(), "state.update",
		oteltrace.WithAttributes(attribute.String("banda.state.name", name)))
	span.End()
}

// Shutdown flushes and closes the exporter.
func (e *Exporter) Shutdown(ctx context.Context) error {
	if e == nil || !e.enabled {
		return nil
	}
	return e.provider.Shutdown(ctx)
}
