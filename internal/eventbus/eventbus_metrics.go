package eventbus

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// busMetrics records bus activity on the global OTel meter provider. Until a
// provider is installed the instruments are no-ops.
type busMetrics struct {
	published       metric.Int64Counter
	deliveries      metric.Int64Counter
	handlerFailures metric.Int64Counter
}

func newBusMetrics() *busMetrics {
	meter := otel.Meter("go-integration/eventbus")

	published, err := meter.Int64Counter("integration.events.published",
		metric.WithDescription("Number of events published on the integration bus"),
	)
	if err != nil {
		return nil
	}
	deliveries, err := meter.Int64Counter("integration.events.deliveries",
		metric.WithDescription("Number of subscriber invocations"),
	)
	if err != nil {
		return nil
	}
	handlerFailures, err := meter.Int64Counter("integration.events.handler_failures",
		metric.WithDescription("Number of subscriber invocations that returned an error or panicked"),
	)
	if err != nil {
		return nil
	}

	return &busMetrics{
		published:       published,
		deliveries:      deliveries,
		handlerFailures: handlerFailures,
	}
}

func (m *busMetrics) recordPublish(ctx context.Context, event IntegrationEvent) {
	if m == nil {
		return
	}
	m.published.Add(ctx, 1, metric.WithAttributes(
		attribute.String("event_type", event.Type),
		attribute.String("source_module", string(event.SourceModule)),
	))
}

func (m *busMetrics) recordDelivery(ctx context.Context, event IntegrationEvent, err error) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("event_type", event.Type))
	m.deliveries.Add(ctx, 1, attrs)
	if err != nil {
		m.handlerFailures.Add(ctx, 1, attrs)
	}
}
