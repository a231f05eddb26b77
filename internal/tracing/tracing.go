// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tracing configures OpenTelemetry for the progress-sync client and
// backup server and provides span helpers for sync tasks and snapshot
// transfers.
package tracing

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/progress-sync/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// TracerName is the instrumentation scope of every span.
const TracerName = "github.com/MKhiriev/progress-sync"

const (
	ExporterNone   = "none"
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Tracer wraps an OpenTelemetry tracer together with the provider that has
// to be flushed on shutdown.
type Tracer struct {
	tracer   trace.Tracer
	provider *sdktrace.TracerProvider
}

// Nop returns a tracer that records nothing.
func Nop() *Tracer {
	return &Tracer{tracer: noop.NewTracerProvider().Tracer(TracerName)}
}

// New builds a tracer for cfg. The stdout exporter writes to out, which
// may be nil for os.Stdout.
func New(ctx context.Context, cfg config.Tracing, version string, out io.Writer) (*Tracer, error) {
	if cfg.Exporter == "" || cfg.Exporter == ExporterNone {
		return Nop(), nil
	}

	exporter, err := newExporter(ctx, cfg, out)
	if err != nil {
		return nil, fmt.Errorf("failed to create exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(version),
		),
		resource.WithTelemetrySDK(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	otel.SetTracerProvider(provider)

	return &Tracer{
		tracer:   provider.Tracer(TracerName, trace.WithInstrumentationVersion(version)),
		provider: provider,
	}, nil
}

func newExporter(ctx context.Context, cfg config.Tracing, out io.Writer) (sdktrace.SpanExporter, error) {
	switch cfg.Exporter {
	case ExporterStdout:
		opts := []stdouttrace.Option{}
		if out != nil {
			opts = append(opts, stdouttrace.WithWriter(out))
		}
		return stdouttrace.New(opts...)

	case ExporterOTLP:
		return otlptracehttp.New(ctx,
			otlptracehttp.WithInsecure(),
			otlptracehttp.WithEndpoint(cfg.Endpoint),
		)

	default:
		return nil, fmt.Errorf("unsupported exporter type: %s", cfg.Exporter)
	}
}

// Shutdown flushes pending spans.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t.provider != nil {
		return t.provider.Shutdown(ctx)
	}
	return nil
}

// Start starts a new span with the given name.
func (t *Tracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name, opts...)
}

// Span is a started span that is ended exactly once through End.
type Span struct {
	span trace.Span
}

// StartTask starts the span of one sync engine task.
func (t *Tracer) StartTask(ctx context.Context, intent string) (context.Context, *Span) {
	ctx, span := t.tracer.Start(ctx, "sync.task",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("sync.intent", intent)),
	)
	return ctx, &Span{span: span}
}

// StartTransfer starts the span of a snapshot upload or download.
func (t *Tracer) StartTransfer(ctx context.Context, direction, dataID string) (context.Context, *Span) {
	ctx, span := t.tracer.Start(ctx, "snapshot."+direction,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("sync.data_id", dataID)),
	)
	return ctx, &Span{span: span}
}

// SetBytes records the transferred size.
func (s *Span) SetBytes(n int64) {
	s.span.SetAttributes(attribute.Int64("snapshot.bytes", n))
}

// SetOutcome records the state the task ended in.
func (s *Span) SetOutcome(outcome string) {
	s.span.SetAttributes(attribute.String("sync.outcome", outcome))
}

// End ends the span, marking it failed when err is non-nil.
func (s *Span) End(err error) {
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	} else {
		s.span.SetStatus(codes.Ok, "")
	}
	s.span.End()
}
