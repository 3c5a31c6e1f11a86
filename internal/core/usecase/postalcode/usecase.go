package postalcode

import (
	"context"

	"postalform/internal/core/domain/postalcode"
	"postalform/internal/core/ports"
	"postalform/internal/platform/logger"
)

type Usecase struct {
	validator InputValidator
	recorder  ports.ValidationRecorder
}

func NewUsecase(validator InputValidator, recorder ports.ValidationRecorder) *Usecase {
	return &Usecase{
		validator: validator,
		recorder:  recorder,
	}
}

// Validate never fails: invalid input is reported through the result.
func (uc *Usecase) Validate(ctx context.Context, input postalcode.FormInput) postalcode.Result {
	log := logger.FromContext(ctx)

	result := uc.validator.Validate(input)
	uc.recorder.Record(ctx, result)

	if !result.Valid() {
		log.Warn("Form input rejected",
			logger.Int("violations", len(result.Violations)),
			logger.Strings("fields", violatedFields(result)),
			logger.Masked("zip_code", input.ZipCode))
		return result
	}

	fields := []logger.Field{logger.Bool("valid", true)}
	if family, ok := postalcode.MatchFamily(result.Cleaned.ZipCode); ok {
		fields = append(fields, logger.String("format", family.Name))
	}
	log.Debug("Form input accepted", fields...)

	return result
}

func (uc *Usecase) Formats(ctx context.Context) []postalcode.Family {
	_ = ctx
	return postalcode.Families()
}

func violatedFields(result postalcode.Result) []string {
	var fields []string
	seen := make(map[string]bool, 2)
	for _, v := range result.Violations {
		if !seen[v.Field] {
			seen[v.Field] = true
			fields = append(fields, v.Field)
		}
	}
	return fields
}
