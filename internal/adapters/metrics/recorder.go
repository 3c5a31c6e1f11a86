package metrics

import (
	"context"
	"postalform/internal/core/domain/postalcode"
	"postalform/internal/core/ports"
	"postalform/internal/platform/metrics"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
)

type ValidationRecorder struct {
	provider *metrics.Provider
}

var _ ports.ValidationRecorder = (*ValidationRecorder)(nil)

func NewValidationRecorder(provider *metrics.Provider) *ValidationRecorder {
	return &ValidationRecorder{
		provider: provider,
	}
}

func (r *ValidationRecorder) Record(ctx context.Context, result postalcode.Result) {
	outcome := OutcomeValid
	if !result.Valid() {
		outcome = OutcomeInvalid
	}

	r.provider.ValidationsTotal.Add(ctx, 1,
		metric.WithAttributes(attribute.String("outcome", outcome)),
	)

	for _, v := range result.Violations {
		r.provider.ViolationsTotal.Add(ctx, 1,
			metric.WithAttributes(
				attribute.String("field", v.Field),
				attribute.String("kind", string(v.Kind)),
			),
		)
	}
}
