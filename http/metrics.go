package http

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const scopeName = "github.com/shale-dev/shale/http"

var (
	meter = otel.Meter(scopeName)

	requestCount    metric.Int64Counter
	requestDuration metric.Float64Histogram
)

func init() {
	var err error

	requestCount, err = meter.Int64Counter("shale.server.requests",
		metric.WithDescription("The number of answered requests by status code"),
		metric.WithUnit("{request}"))
	if err != nil {
		otel.Handle(err)
	}

	requestDuration, err = meter.Float64Histogram("shale.server.request.duration",
		metric.WithDescription("Time between reading the request line and flushing the response"),
		metric.WithUnit("s"))
	if err != nil {
		otel.Handle(err)
	}
}

// recordRequest stays a no-op until the host installs a MeterProvider.
func recordRequest(ctx context.Context, status uint16, elapsed time.Duration) {
	statusAttr := metric.WithAttributes(attribute.Int("status", int(status)))
	requestCount.Add(ctx, 1, statusAttr)
	requestDuration.Record(ctx, elapsed.Seconds(), statusAttr)
}
