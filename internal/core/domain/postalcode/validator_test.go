package postalcode_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	validatorAdapter "postalform/internal/adapters/validator"
	"postalform/internal/core/domain/postalcode"
)

type ValidatorTestSuite struct {
	suite.Suite
	checker   postalcode.Checker
	validator *postalcode.Validator
}

func (s *ValidatorTestSuite) SetupTest() {
	checker, err := validatorAdapter.NewPlaygroundAdapter()
	s.Require().NoError(err)
	s.checker = checker

	s.validator = s.newValidator(postalcode.DefaultPolicy())
}

func (s *ValidatorTestSuite) newValidator(p postalcode.Policy) *postalcode.Validator {
	v, err := postalcode.NewValidator(s.checker, p)
	s.Require().NoError(err)
	return v
}

func (s *ValidatorTestSuite) TestValidate_MinimalValidInput() {
	result := s.validator.Validate(postalcode.FormInput{Name: "Al", ZipCode: "12345"})

	s.Assert().True(result.Valid())
	s.Assert().Equal("12345", result.Cleaned.ZipCode)
	s.Assert().Equal("Al", result.Cleaned.Name)
	s.Assert().Nil(result.Errors())
	s.Assert().NoError(result.Err())
}

func (s *ValidatorTestSuite) TestValidate_NameTooShort() {
	result := s.validator.Validate(postalcode.FormInput{Name: "A", ZipCode: "12345"})

	s.Assert().False(result.Valid())
	s.Assert().Equal(map[string][]string{
		postalcode.FieldName: {"Name must be at least 2 characters"},
	}, result.Errors())
}

func (s *ValidatorTestSuite) TestValidate_NameTooLong() {
	name := "Bartholomew Montgomery-Fitzwilliam Alexander Smith!"
	s.Require().Len([]rune(name), 51)

	result := s.validator.Validate(postalcode.FormInput{Name: name, ZipCode: "12345"})

	s.Assert().Equal([]string{"Name must be at most 50 characters"}, result.Errors()[postalcode.FieldName])
}

func (s *ValidatorTestSuite) TestValidate_AcceptedFormats() {
	codes := []string{
		"SW1A 0AA",
		"1234 AB",
		"A1A 1A1",
		"a1a-1a1",
		"110001",
		"12345-6789",
		"100-0001",
		"00-950",
		"C1425DKF",
		"1234567",
	}

	for _, code := range codes {
		s.Run(code, func() {
			result := s.validator.Validate(postalcode.FormInput{Name: "Alice", ZipCode: code})
			s.Assert().True(result.Valid(), "violations: %v", result.Violations)
			s.Assert().Equal(code, result.Cleaned.ZipCode)
		})
	}
}

func (s *ValidatorTestSuite) TestValidate_TrimsZipCodeByDefault() {
	result := s.validator.Validate(postalcode.FormInput{Name: "Alice", ZipCode: " 12345 "})

	s.Assert().True(result.Valid())
	s.Assert().Equal("12345", result.Cleaned.ZipCode)
}

func (s *ValidatorTestSuite) TestValidate_RejectModeFlagsPadding() {
	p := postalcode.DefaultPolicy()
	p.Whitespace = postalcode.WhitespaceReject
	v := s.newValidator(p)

	result := v.Validate(postalcode.FormInput{Name: "Alice", ZipCode: " 12345 "})

	s.Assert().False(result.Valid())
	s.Assert().Equal([]postalcode.Kind{postalcode.KindWhitespace, postalcode.KindPattern}, kinds(result, postalcode.FieldZipCode))
	s.Assert().Equal(" 12345 ", result.Cleaned.ZipCode)
	s.Assert().ErrorIs(result.Err(), postalcode.ErrLeadingOrTrailingWhitespace)
}

func (s *ValidatorTestSuite) TestValidate_CharsetAndPatternBothReported() {
	result := s.validator.Validate(postalcode.FormInput{Name: "Alice", ZipCode: "!!!!!"})

	s.Assert().False(result.Valid())
	s.Assert().Equal([]string{
		"Only letters, numbers, spaces, and hyphens are allowed",
		"Invalid postal code format (e.g., 12345, A1A 1A1, SW1A 0AA, 110001, 1234 AB)",
	}, result.Errors()[postalcode.FieldZipCode])
	s.Assert().NotContains(result.Errors(), postalcode.FieldName)

	err := result.Err()
	s.Assert().ErrorIs(err, postalcode.ErrInvalidCharacterSet)
	s.Assert().ErrorIs(err, postalcode.ErrPatternMismatch)
	s.Assert().NotErrorIs(err, postalcode.ErrRequiredFieldMissing)
}

func (s *ValidatorTestSuite) TestValidate_RequiredStopsFieldButNotOthers() {
	result := s.validator.Validate(postalcode.FormInput{Name: "   ", ZipCode: ""})

	s.Assert().Equal(map[string][]string{
		postalcode.FieldName:    {"Name is required"},
		postalcode.FieldZipCode: {"Zip code is required"},
	}, result.Errors())
}

func (s *ValidatorTestSuite) TestValidate_RequiredWithoutShortCircuit() {
	p := postalcode.DefaultPolicy()
	p.StopOnRequired = false
	v := s.newValidator(p)

	result := v.Validate(postalcode.FormInput{Name: "Alice", ZipCode: ""})

	s.Assert().Equal([]postalcode.Kind{
		postalcode.KindRequired,
		postalcode.KindLength,
		postalcode.KindCharset,
		postalcode.KindPattern,
	}, kinds(result, postalcode.FieldZipCode))
}

func (s *ValidatorTestSuite) TestValidate_LengthBounds() {
	tooLong := s.validator.Validate(postalcode.FormInput{Name: "Alice", ZipCode: "1234567890123456"})
	s.Assert().Equal([]postalcode.Kind{postalcode.KindLength, postalcode.KindPattern}, kinds(tooLong, postalcode.FieldZipCode))
	s.Assert().Contains(tooLong.Errors()[postalcode.FieldZipCode], "Zip code should not be more than 15 characters")

	tooShort := s.validator.Validate(postalcode.FormInput{Name: "Alice", ZipCode: "12"})
	s.Assert().Equal([]postalcode.Kind{postalcode.KindLength, postalcode.KindPattern}, kinds(tooShort, postalcode.FieldZipCode))
}

func (s *ValidatorTestSuite) TestValidate_LooserMaxLength() {
	p := postalcode.DefaultPolicy()
	p.ZipMaxLength = 10
	v := s.newValidator(p)

	result := v.Validate(postalcode.FormInput{Name: "Alice", ZipCode: "C 1425 DKF"})
	s.Assert().True(result.Valid())

	result = v.Validate(postalcode.FormInput{Name: "Alice", ZipCode: "12345 67890"})
	s.Assert().Contains(result.Errors()[postalcode.FieldZipCode], "Zip code should not be more than 10 characters")
}

func (s *ValidatorTestSuite) TestValidate_Deterministic() {
	inputs := []postalcode.FormInput{
		{Name: "Alice", ZipCode: "SW1A 0AA"},
		{Name: "A", ZipCode: "!!!!!"},
		{Name: "", ZipCode: " 12345 "},
	}

	for _, in := range inputs {
		if diff := cmp.Diff(s.validator.Validate(in), s.validator.Validate(in)); diff != "" {
			s.Failf("validation is not deterministic", "input %+v (-first +second):\n%s", in, diff)
		}
	}
}

func (s *ValidatorTestSuite) TestValidate_CleanedIsIdempotent() {
	inputs := []postalcode.FormInput{
		{Name: "  Alice ", ZipCode: " sw1a 0aa "},
		{Name: "Bob", ZipCode: "\t1234 AB\n"},
		{Name: "Al", ZipCode: "12345-678"},
	}

	for _, in := range inputs {
		first := s.validator.Validate(in)
		s.Require().True(first.Valid(), "violations: %v", first.Violations)

		second := s.validator.Validate(first.Cleaned)
		if diff := cmp.Diff(first, second); diff != "" {
			s.Failf("re-validating cleaned input changed the result", "input %+v (-first +second):\n%s", in, diff)
		}
	}
}

func (s *ValidatorTestSuite) TestValidate_PreservesCasing() {
	result := s.validator.Validate(postalcode.FormInput{Name: "alice", ZipCode: "sw1a 0aa"})

	s.Assert().True(result.Valid())
	s.Assert().Equal(postalcode.FormInput{Name: "alice", ZipCode: "sw1a 0aa"}, result.Cleaned)
}

func (s *ValidatorTestSuite) TestRules_OrderFollowsPolicy() {
	rules := s.validator.Rules()
	s.Require().Len(rules, 8)
	s.Assert().Equal("notblank", rules[0].Tag)
	s.Assert().True(rules[0].Fatal)
	s.Assert().Equal(postalcode.TagPostalCode, rules[len(rules)-1].Tag)

	p := postalcode.DefaultPolicy()
	p.Whitespace = postalcode.WhitespaceReject
	strict := s.newValidator(p).Rules()
	s.Require().Len(strict, 9)
	s.Assert().Equal(postalcode.TagUnpadded, strict[4].Tag)
}

func (s *ValidatorTestSuite) TestRules_ReturnsCopy() {
	rules := s.validator.Rules()
	rules[0].Message = "changed"

	s.Assert().Equal("Name is required", s.validator.Rules()[0].Message)
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func TestNewValidator_InvalidPolicy(t *testing.T) {
	checker, err := validatorAdapter.NewPlaygroundAdapter()
	require.NoError(t, err)

	p := postalcode.DefaultPolicy()
	p.ZipMaxLength = 2

	v, err := postalcode.NewValidator(checker, p)

	assert.Nil(t, v)
	assert.ErrorIs(t, err, postalcode.ErrInvalidPolicy)
}

func kinds(r postalcode.Result, field string) []postalcode.Kind {
	var out []postalcode.Kind
	for _, v := range r.Violations {
		if v.Field == field {
			out = append(out, v.Kind)
		}
	}
	return out
}
