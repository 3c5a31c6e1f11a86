package postalcode

import (
	"fmt"
	"strings"
)

// WhitespaceMode selects how padding around the zip code is handled.
type WhitespaceMode string

const (
	WhitespaceTrim   WhitespaceMode = "trim"
	WhitespaceReject WhitespaceMode = "reject"
)

func (m *WhitespaceMode) Decode(value string) error {
	switch strings.ToLower(value) {
	case "trim":
		*m = WhitespaceTrim
	case "reject":
		*m = WhitespaceReject
	default:
		return fmt.Errorf("invalid whitespace mode: %s", value)
	}
	return nil
}

// Policy holds the tunable parameters of the rule table.
type Policy struct {
	Whitespace     WhitespaceMode `json:"whitespace" yaml:"whitespace"`
	NameMinLength  int            `json:"nameMinLength" yaml:"nameMinLength"`
	NameMaxLength  int            `json:"nameMaxLength" yaml:"nameMaxLength"`
	ZipMinLength   int            `json:"zipMinLength" yaml:"zipMinLength"`
	ZipMaxLength   int            `json:"zipMaxLength" yaml:"zipMaxLength"`
	StopOnRequired bool           `json:"stopOnRequired" yaml:"stopOnRequired"`
}

func DefaultPolicy() Policy {
	return Policy{
		Whitespace:     WhitespaceTrim,
		NameMinLength:  2,
		NameMaxLength:  50,
		ZipMinLength:   3,
		ZipMaxLength:   15,
		StopOnRequired: true,
	}
}

func (p Policy) Validate() error {
	if p.Whitespace != WhitespaceTrim && p.Whitespace != WhitespaceReject {
		return fmt.Errorf("%w: unknown whitespace mode %q", ErrInvalidPolicy, p.Whitespace)
	}
	if err := checkBounds("name", p.NameMinLength, p.NameMaxLength); err != nil {
		return err
	}
	return checkBounds("zip code", p.ZipMinLength, p.ZipMaxLength)
}

func checkBounds(field string, lo, hi int) error {
	if lo < 1 {
		return fmt.Errorf("%w: %s min length must be positive, got %d", ErrInvalidPolicy, field, lo)
	}
	if hi < lo {
		return fmt.Errorf("%w: %s max length %d is below min length %d", ErrInvalidPolicy, field, hi, lo)
	}
	return nil
}
