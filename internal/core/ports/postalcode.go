package ports

import (
	"context"
	"postalform/internal/core/domain/postalcode"
)

type ValidationRecorder interface {
	Record(ctx context.Context, result postalcode.Result)
}
