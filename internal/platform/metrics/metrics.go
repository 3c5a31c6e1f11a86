package metrics

import (
	"context"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const meterName = "postalform"

var durationBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// Provider owns the OpenTelemetry instruments of the service and the
// Prometheus registry they are exported through.
type Provider struct {
	RequestsTotal    metric.Int64Counter
	RequestDuration  metric.Float64Histogram
	RequestsInFlight metric.Int64UpDownCounter

	// ValidationsTotal counts form validations by outcome.
	ValidationsTotal metric.Int64Counter
	// ViolationsTotal counts failed rules by field and kind.
	ViolationsTotal metric.Int64Counter

	registry      *prometheus.Registry
	meterProvider *sdkmetric.MeterProvider
}

func NewProvider() (*Provider, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	exporter, err := promexporter.New(promexporter.WithRegisterer(registry))
	if err != nil {
		return nil, err
	}

	meterProvider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(meterProvider)

	p := &Provider{registry: registry, meterProvider: meterProvider}
	if err := p.createInstruments(meterProvider.Meter(meterName)); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Provider) createInstruments(meter metric.Meter) error {
	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	var err error
	p.RequestsTotal, err = meter.Int64Counter("http_requests",
		metric.WithDescription("Total number of HTTP requests"))
	collect(err)

	p.RequestDuration, err = meter.Float64Histogram("http_request_duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBuckets...))
	collect(err)

	p.RequestsInFlight, err = meter.Int64UpDownCounter("http_requests_in_flight",
		metric.WithDescription("Number of HTTP requests currently in flight"))
	collect(err)

	p.ValidationsTotal, err = meter.Int64Counter("postal_code_validations",
		metric.WithDescription("Total number of form validations by outcome"))
	collect(err)

	p.ViolationsTotal, err = meter.Int64Counter("postal_code_violations",
		metric.WithDescription("Total number of failed validation rules by field and kind"))
	collect(err)

	return errors.Join(errs...)
}

func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// Shutdown stops the meter provider. Instruments keep working but record
// nothing afterwards.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.meterProvider.Shutdown(ctx)
}
