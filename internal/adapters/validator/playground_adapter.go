package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"postalform/internal/core/domain/postalcode"
	validatorPlatform "postalform/internal/platform/validator"
)

type playgroundValidator struct {
	validate *validator.Validate
}

// NewPlaygroundAdapter builds a validator that also understands the postal
// code tags used by the domain rule table.
func NewPlaygroundAdapter() (validatorPlatform.Validator, error) {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)

	for tag, predicate := range postalcode.Predicates() {
		if err := v.RegisterValidation(tag, stringPredicate(predicate)); err != nil {
			return nil, fmt.Errorf("register %q validation: %w", tag, err)
		}
	}

	return &playgroundValidator{
		validate: v,
	}, nil
}

func (v *playgroundValidator) Validate(s interface{}) error {
	return translate(v.validate.Struct(s))
}

func (v *playgroundValidator) Var(field interface{}, tag string) error {
	return translate(v.validate.Var(field, tag))
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		outErrors := make([]validatorPlatform.FieldError, len(validationErrors))
		for i, fe := range validationErrors {
			outErrors[i] = validatorPlatform.FieldError{
				Field:   fe.Field(),
				Tag:     fe.Tag(),
				Message: getValidationErrorMessage(fe),
			}
		}
		return validatorPlatform.ValidationError{Errors: outErrors}
	}
	return err
}

func stringPredicate(fn func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return false
		}
		return fn(field.String())
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return strings.ToLower(fld.Name)
	default:
		return name
	}
}

func getValidationErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "notblank":
		return "This field is required"
	case "email":
		return "This field must be a valid email address"
	case "oneof":
		return fmt.Sprintf("This field must be one of [%s]", e.Param())
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("This field must be at least %s characters", e.Param())
		}
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("This field must be at most %s characters", e.Param())
		}
	case postalcode.TagPostalCode:
		return "This field must be a valid postal code"
	case postalcode.TagCharset:
		return "This field may only contain letters, numbers, spaces, and hyphens"
	case postalcode.TagUnpadded:
		return "This field must not start or end with spaces"
	}
	return fmt.Sprintf("This field failed on the '%s' tag", e.Tag())
}
