package config

import (
	"github.com/kelseyhightower/envconfig"

	"postalform/internal/core/domain/postalcode"
)

// ValidationConfig carries the tunable parameters of the form rules. The
// defaults match postalcode.DefaultPolicy.
type ValidationConfig struct {
	Whitespace     postalcode.WhitespaceMode `envconfig:"WHITESPACE" default:"trim"`
	NameMinLength  int                       `envconfig:"NAME_MIN_LENGTH" default:"2"`
	NameMaxLength  int                       `envconfig:"NAME_MAX_LENGTH" default:"50"`
	ZipMinLength   int                       `envconfig:"ZIP_MIN_LENGTH" default:"3"`
	ZipMaxLength   int                       `envconfig:"ZIP_MAX_LENGTH" default:"15"`
	StopOnRequired bool                      `envconfig:"STOP_ON_REQUIRED" default:"true"`
}

func LoadValidation() (*ValidationConfig, error) {
	var cfg ValidationConfig
	if err := envconfig.Process("VALIDATION", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Policy converts the settings into a rule policy. Consistency of the bounds
// is checked by postalcode.NewValidator.
func (c *ValidationConfig) Policy() postalcode.Policy {
	return postalcode.Policy{
		Whitespace:     c.Whitespace,
		NameMinLength:  c.NameMinLength,
		NameMaxLength:  c.NameMaxLength,
		ZipMinLength:   c.ZipMinLength,
		ZipMaxLength:   c.ZipMaxLength,
		StopOnRequired: c.StopOnRequired,
	}
}
