package config

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"postalform/internal/core/domain/postalcode"
)

var validationEnvVars = []string{
	"VALIDATION_WHITESPACE",
	"VALIDATION_NAME_MIN_LENGTH", "VALIDATION_NAME_MAX_LENGTH",
	"VALIDATION_ZIP_MIN_LENGTH", "VALIDATION_ZIP_MAX_LENGTH",
	"VALIDATION_STOP_ON_REQUIRED",
	"WHITESPACE", "NAME_MIN_LENGTH", "NAME_MAX_LENGTH",
	"ZIP_MIN_LENGTH", "ZIP_MAX_LENGTH", "STOP_ON_REQUIRED",
}

type ValidationConfigTestSuite struct {
	suite.Suite
}

func (s *ValidationConfigTestSuite) SetupTest() {
	clearEnv(s.T(), validationEnvVars...)
}

func (s *ValidationConfigTestSuite) TestLoadValidation_DefaultsMatchDefaultPolicy() {
	cfg, err := LoadValidation()

	s.Require().NoError(err)
	s.Require().NotNil(cfg)
	s.Assert().Equal(postalcode.DefaultPolicy(), cfg.Policy())
}

func (s *ValidationConfigTestSuite) TestLoadValidation_WithEnvironmentVariables() {
	envVars := map[string]string{
		"VALIDATION_WHITESPACE":       "REJECT",
		"VALIDATION_NAME_MIN_LENGTH":  "1",
		"VALIDATION_NAME_MAX_LENGTH":  "80",
		"VALIDATION_ZIP_MIN_LENGTH":   "4",
		"VALIDATION_ZIP_MAX_LENGTH":   "10",
		"VALIDATION_STOP_ON_REQUIRED": "false",
	}
	for key, value := range envVars {
		s.T().Setenv(key, value)
	}

	cfg, err := LoadValidation()

	s.Require().NoError(err)
	s.Assert().Equal(postalcode.Policy{
		Whitespace:     postalcode.WhitespaceReject,
		NameMinLength:  1,
		NameMaxLength:  80,
		ZipMinLength:   4,
		ZipMaxLength:   10,
		StopOnRequired: false,
	}, cfg.Policy())
}

func (s *ValidationConfigTestSuite) TestLoadValidation_InvalidValues() {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown_whitespace_mode", "VALIDATION_WHITESPACE", "collapse"},
		{"non_numeric_length", "VALIDATION_ZIP_MAX_LENGTH", "ten"},
		{"non_boolean_flag", "VALIDATION_STOP_ON_REQUIRED", "sometimes"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.T().Setenv(tt.key, tt.val)

			cfg, err := LoadValidation()

			s.Assert().Error(err)
			s.Assert().Nil(cfg)
		})
	}
}

func (s *ValidationConfigTestSuite) TestPolicy_InconsistentBoundsAreLoaded() {
	s.T().Setenv("VALIDATION_ZIP_MIN_LENGTH", "12")
	s.T().Setenv("VALIDATION_ZIP_MAX_LENGTH", "5")

	cfg, err := LoadValidation()
	s.Require().NoError(err)

	s.Assert().ErrorIs(cfg.Policy().Validate(), postalcode.ErrInvalidPolicy)
}

func TestValidationConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ValidationConfigTestSuite))
}
