package validator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldError_Error(t *testing.T) {
	tests := []struct {
		name string
		fe   FieldError
		want string
	}{
		{
			name: "with tag",
			fe:   FieldError{Field: "touched[1]", Tag: "oneof", Message: "must be one of [name zipCode]"},
			want: "field touched[1] (oneof): must be one of [name zipCode]",
		},
		{
			name: "without tag",
			fe:   FieldError{Field: "zipCode", Message: "is required"},
			want: "field zipCode: is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fe.Error())
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name   string
		errors []FieldError
		want   string
	}{
		{
			name:   "single error",
			errors: []FieldError{{Field: "name", Tag: "notblank", Message: "is required"}},
			want:   "validation failed: field name (notblank): is required",
		},
		{
			name: "multiple errors",
			errors: []FieldError{
				{Field: "name", Message: "is required"},
				{Field: "zipCode", Message: "too long"},
			},
			want: "validation failed: field name: is required, field zipCode: too long",
		},
		{
			name: "no errors",
			want: "validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidationError{Errors: tt.errors}.Error())
		})
	}
}

func TestValidationError_Fields(t *testing.T) {
	ve := ValidationError{Errors: []FieldError{
		{Field: "touched[1]", Tag: "oneof"},
		{Field: "touched[0]", Tag: "oneof"},
		{Field: "touched[1]", Tag: "max"},
	}}

	assert.Equal(t, []string{"touched[1]", "touched[0]"}, ve.Fields())
	assert.Empty(t, ValidationError{}.Fields())
}

func TestValidationError_JSONOmitsTag(t *testing.T) {
	ve := ValidationError{
		Errors: []FieldError{{Field: "touched[0]", Tag: "oneof", Message: "This field must be one of [name zipCode]"}},
	}

	data, err := json.Marshal(ve)
	require.NoError(t, err)
	assert.JSONEq(t, `{"errors":[{"field":"touched[0]","message":"This field must be one of [name zipCode]"}]}`, string(data))
}
