package cli

import (
	"context"

	"postalform/internal/core/domain/postalcode"
	"postalform/internal/core/ports"
)

// discardRecorder drops outcomes; a one-shot process has nothing to scrape.
type discardRecorder struct{}

var _ ports.ValidationRecorder = discardRecorder{}

func (discardRecorder) Record(context.Context, postalcode.Result) {}
