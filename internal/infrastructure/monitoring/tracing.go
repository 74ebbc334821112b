// Package monitoring provides tracing setup for the API server.
package monitoring

import (
	"context"
	"fmt"
	"time"

	"github.com/naturalbakery/shop/internal/infrastructure/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.uber.org/zap"
)

// InitTracing configures the global OpenTelemetry tracer provider with an
// OTLP HTTP exporter. It returns a shutdown function that flushes pending
// spans. When tracing is disabled the returned shutdown is a no-op.
func InitTracing(cfg *config.Config, logger *zap.Logger) (func(context.Context) error, error) {
	if !cfg.Monitoring.EnableTracing {
		return func(context.Context) error { return nil }, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := []otlptracehttp.Option{}
	if cfg.Monitoring.OTLPEndpoint != "" {
		opts = append(opts, otlptracehttp.WithEndpoint(cfg.Monitoring.OTLPEndpoint))
	}
	if !cfg.IsProduction() {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.App.Name),
			semconv.ServiceVersion(cfg.App.Version),
			semconv.DeploymentEnvironment(cfg.App.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.TraceIDRatioBased(cfg.Monitoring.SamplingRate)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("Tracing initialized",
		zap.String("endpoint", cfg.Monitoring.OTLPEndpoint),
		zap.Float64("sampling_rate", cfg.Monitoring.SamplingRate),
	)

	return tp.Shutdown, nil
}
