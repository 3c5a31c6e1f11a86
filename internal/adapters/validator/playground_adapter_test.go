package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postalform/internal/core/domain/postalcode"
	validatorPlatform "postalform/internal/platform/validator"
)

type TestSubmission struct {
	Name    string   `json:"name" validate:"notblank,min=2"`
	ZipCode string   `json:"zipCode" validate:"postalcode"`
	Touched []string `json:"touched" validate:"omitempty,dive,oneof=name zipCode"`
}

type TestContact struct {
	Email string `validate:"required,email"`
	Age   int    `validate:"min=0"`
}

func newAdapter(t *testing.T) validatorPlatform.Validator {
	t.Helper()
	v, err := NewPlaygroundAdapter()
	require.NoError(t, err)
	require.NotNil(t, v)
	return v
}

func TestNewPlaygroundAdapter(t *testing.T) {
	v := newAdapter(t)

	assert.Implements(t, (*validatorPlatform.Validator)(nil), v)
	assert.Implements(t, (*postalcode.Checker)(nil), v)
}

func TestPlaygroundValidator_Validate_Success(t *testing.T) {
	v := newAdapter(t)

	err := v.Validate(TestSubmission{Name: "Alice", ZipCode: "SW1A 0AA", Touched: []string{"name"}})

	assert.NoError(t, err)
}

func TestPlaygroundValidator_Validate_UsesJSONFieldNames(t *testing.T) {
	v := newAdapter(t)

	err := v.Validate(TestSubmission{Name: "Alice", ZipCode: "nope!", Touched: []string{"zipCode", "email"}})

	require.Error(t, err)
	var validationErr validatorPlatform.ValidationError
	require.ErrorAs(t, err, &validationErr)

	fields := make(map[string]string)
	for _, fe := range validationErr.Errors {
		fields[fe.Field] = fe.Message
	}
	assert.Equal(t, "This field must be a valid postal code", fields["zipCode"])
	assert.Equal(t, "This field must be one of [name zipCode]", fields["touched[1]"])
	assert.Len(t, fields, 2)
}

func TestPlaygroundValidator_Validate_FallsBackToLowercaseFieldName(t *testing.T) {
	v := newAdapter(t)

	err := v.Validate(TestContact{Email: "invalid", Age: 3})

	var validationErr validatorPlatform.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "email", validationErr.Errors[0].Field)
	assert.Equal(t, "This field must be a valid email address", validationErr.Errors[0].Message)
	assert.Equal(t, "email", validationErr.Errors[0].Tag)
}

func TestPlaygroundValidator_Validate_UnknownTagMessage(t *testing.T) {
	v := newAdapter(t)

	err := v.Validate(TestContact{Email: "a@b.co", Age: -1})

	var validationErr validatorPlatform.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "age", validationErr.Errors[0].Field)
	assert.Equal(t, "This field failed on the 'min' tag", validationErr.Errors[0].Message)
}

func TestPlaygroundValidator_Validate_NonStructError(t *testing.T) {
	v := newAdapter(t)

	err := v.Validate("not a struct")

	require.Error(t, err)
	var validationErr validatorPlatform.ValidationError
	assert.False(t, errors.As(err, &validationErr))
}

func TestPlaygroundValidator_Var(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		tag     string
		wantErr bool
		message string
	}{
		{name: "notblank ok", value: "Al", tag: "notblank"},
		{name: "notblank whitespace", value: "   ", tag: "notblank", wantErr: true, message: "This field is required"},
		{name: "min counts runes", value: "Zoë", tag: "min=3"},
		{name: "min too short", value: "A", tag: "min=2", wantErr: true, message: "This field must be at least 2 characters"},
		{name: "max too long", value: "1234567890123456", tag: "max=15", wantErr: true, message: "This field must be at most 15 characters"},
		{name: "postal code uk", value: "SW1A 0AA", tag: postalcode.TagPostalCode},
		{name: "postal code lowercase", value: "a1a 1a1", tag: postalcode.TagPostalCode},
		{name: "postal code mismatch", value: "!!!!!", tag: postalcode.TagPostalCode, wantErr: true, message: "This field must be a valid postal code"},
		{name: "charset ok", value: "1234 AB", tag: postalcode.TagCharset},
		{name: "charset bad", value: "12_345", tag: postalcode.TagCharset, wantErr: true, message: "This field may only contain letters, numbers, spaces, and hyphens"},
		{name: "unpadded ok", value: "12345", tag: postalcode.TagUnpadded},
		{name: "unpadded bad", value: " 12345", tag: postalcode.TagUnpadded, wantErr: true, message: "This field must not start or end with spaces"},
		{name: "custom tag on non-string", value: 12345, tag: postalcode.TagPostalCode, wantErr: true, message: "This field must be a valid postal code"},
	}

	v := newAdapter(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.value, tt.tag)

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var validationErr validatorPlatform.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Len(t, validationErr.Errors, 1)
			assert.Equal(t, tt.message, validationErr.Errors[0].Message)
		})
	}
}
