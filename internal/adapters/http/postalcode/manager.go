package postalcode

import (
	"context"

	"postalform/internal/core/domain/postalcode"
)

type Manager interface {
	Validate(ctx context.Context, input postalcode.FormInput) postalcode.Result
	Formats(ctx context.Context) []postalcode.Family
}
