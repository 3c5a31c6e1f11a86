package validator

import (
	"fmt"
	"strings"
)

// FieldError is one failed constraint. Tag names the constraint for logs
// and is not part of the response body.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"-"`
	Message string `json:"message"`
}

func (fe FieldError) Error() string {
	if fe.Tag == "" {
		return fmt.Sprintf("field %s: %s", fe.Field, fe.Message)
	}
	return fmt.Sprintf("field %s (%s): %s", fe.Field, fe.Tag, fe.Message)
}

type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (ve ValidationError) Error() string {
	if len(ve.Errors) == 0 {
		return "validation failed"
	}

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, fe := range ve.Errors {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fe.Error())
	}
	return b.String()
}

// Fields lists the failing fields once each, in first-failure order.
func (ve ValidationError) Fields() []string {
	fields := make([]string, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		if !contains(fields, fe.Field) {
			fields = append(fields, fe.Field)
		}
	}
	return fields
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

type Validator interface {
	// Validate checks a struct against its validate tags.
	Validate(s interface{}) error
	// Var checks a single value against a tag expression.
	Var(field interface{}, tag string) error
}
