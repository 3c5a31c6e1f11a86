package postalcode

import "postalform/internal/core/domain/postalcode"

type InputValidator interface {
	Validate(input postalcode.FormInput) postalcode.Result
}
