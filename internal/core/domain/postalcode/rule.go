package postalcode

import "fmt"

// Custom tags bound by the validator adapter. notblank, min and max are
// built into the validation library.
const (
	TagPostalCode = "postalcode"
	TagCharset    = "postalcharset"
	TagUnpadded   = "unpadded"
)

// Rule is a named predicate over one field. Tag is a validation tag
// expression evaluated against the field's cleaned value.
type Rule struct {
	Field   string `json:"field" yaml:"field"`
	Kind    Kind   `json:"kind" yaml:"kind"`
	Tag     string `json:"tag" yaml:"tag"`
	Message string `json:"message" yaml:"message"`
	// Fatal skips the field's remaining rules when this one fails.
	Fatal bool `json:"fatal" yaml:"fatal"`
}

// Predicates returns the custom tag functions the Checker must know.
func Predicates() map[string]func(string) bool {
	return map[string]func(string) bool{
		TagPostalCode: MatchesPattern,
		TagCharset:    hasAllowedCharset,
		TagUnpadded:   isUnpadded,
	}
}

// Rules builds the ordered rule table for p. Name rules come first, then
// zip code rules; within a field the order is the message order.
func Rules(p Policy) []Rule {
	rules := []Rule{
		{
			Field:   FieldName,
			Kind:    KindRequired,
			Tag:     "notblank",
			Message: "Name is required",
			Fatal:   p.StopOnRequired,
		},
		{
			Field:   FieldName,
			Kind:    KindLength,
			Tag:     fmt.Sprintf("min=%d", p.NameMinLength),
			Message: fmt.Sprintf("Name must be at least %d characters", p.NameMinLength),
		},
		{
			Field:   FieldName,
			Kind:    KindLength,
			Tag:     fmt.Sprintf("max=%d", p.NameMaxLength),
			Message: fmt.Sprintf("Name must be at most %d characters", p.NameMaxLength),
		},
		{
			Field:   FieldZipCode,
			Kind:    KindRequired,
			Tag:     "notblank",
			Message: "Zip code is required",
			Fatal:   p.StopOnRequired,
		},
	}

	if p.Whitespace == WhitespaceReject {
		rules = append(rules, Rule{
			Field:   FieldZipCode,
			Kind:    KindWhitespace,
			Tag:     TagUnpadded,
			Message: "Zip code must not start or end with spaces",
		})
	}

	return append(rules,
		Rule{
			Field:   FieldZipCode,
			Kind:    KindLength,
			Tag:     fmt.Sprintf("min=%d", p.ZipMinLength),
			Message: fmt.Sprintf("Zip code should be at least %d characters", p.ZipMinLength),
		},
		Rule{
			Field:   FieldZipCode,
			Kind:    KindLength,
			Tag:     fmt.Sprintf("max=%d", p.ZipMaxLength),
			Message: fmt.Sprintf("Zip code should not be more than %d characters", p.ZipMaxLength),
		},
		Rule{
			Field:   FieldZipCode,
			Kind:    KindCharset,
			Tag:     TagCharset,
			Message: "Only letters, numbers, spaces, and hyphens are allowed",
		},
		Rule{
			Field:   FieldZipCode,
			Kind:    KindPattern,
			Tag:     TagPostalCode,
			Message: "Invalid postal code format (e.g., 12345, A1A 1A1, SW1A 0AA, 110001, 1234 AB)",
		},
	)
}
