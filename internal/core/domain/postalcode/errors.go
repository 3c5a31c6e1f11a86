package postalcode

import (
	"errors"
	"fmt"
	"strings"
)

type Kind string

const (
	KindRequired   Kind = "required_field_missing"
	KindLength     Kind = "length_out_of_bounds"
	KindCharset    Kind = "invalid_character_set"
	KindPattern    Kind = "pattern_mismatch"
	KindWhitespace Kind = "leading_or_trailing_whitespace"
)

var (
	ErrRequiredFieldMissing        = errors.New("required field missing")
	ErrLengthOutOfBounds           = errors.New("length out of bounds")
	ErrInvalidCharacterSet         = errors.New("invalid character set")
	ErrPatternMismatch             = errors.New("pattern mismatch")
	ErrLeadingOrTrailingWhitespace = errors.New("leading or trailing whitespace")

	ErrInvalidPolicy = errors.New("invalid validation policy")
)

func (k Kind) sentinel() error {
	switch k {
	case KindRequired:
		return ErrRequiredFieldMissing
	case KindLength:
		return ErrLengthOutOfBounds
	case KindCharset:
		return ErrInvalidCharacterSet
	case KindPattern:
		return ErrPatternMismatch
	case KindWhitespace:
		return ErrLeadingOrTrailingWhitespace
	default:
		return nil
	}
}

// InvalidInputError aggregates every violation of a rejected submission.
// errors.Is matches it against the per-kind sentinels.
type InvalidInputError struct {
	Violations []Violation
}

func (e *InvalidInputError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return fmt.Sprintf("invalid input: %s", strings.Join(parts, "; "))
}

func (e *InvalidInputError) Is(target error) bool {
	for _, v := range e.Violations {
		if s := v.Kind.sentinel(); s != nil && s == target {
			return true
		}
	}
	return false
}
