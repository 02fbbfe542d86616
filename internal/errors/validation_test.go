package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/combat-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.Assert().NoError(vb.Build())
}

func (s *ValidationTestSuite) TestBuilderRequiredField() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("EncounterID")

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "EncounterID")
	s.Assert().Contains(err.Error(), "is required")
}

func (s *ValidationTestSuite) TestBuilderMultipleFields() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("AttackerID")
	vb.Fieldf("AttackRoll", "must be between %d and %d", 1, 20)

	err := vb.Build()
	s.Require().Error(err)

	meta := errors.GetMeta(err)
	s.Require().NotNil(meta)
	fields, ok := meta["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Assert().Len(fields, 2)
}

func (s *ValidationTestSuite) TestValidateHelpers() {
	testCases := []struct {
		name    string
		setup   func(vb *errors.ValidationBuilder)
		wantErr bool
	}{
		{
			name: "required passes on non-empty",
			setup: func(vb *errors.ValidationBuilder) {
				errors.ValidateRequired("Name", "Aragorn", vb)
			},
			wantErr: false,
		},
		{
			name: "required fails on whitespace",
			setup: func(vb *errors.ValidationBuilder) {
				errors.ValidateRequired("Name", "   ", vb)
			},
			wantErr: true,
		},
		{
			name: "range passes inside bounds",
			setup: func(vb *errors.ValidationBuilder) {
				errors.ValidateRange("Roll", 20, 1, 20, vb)
			},
			wantErr: false,
		},
		{
			name: "range fails outside bounds",
			setup: func(vb *errors.ValidationBuilder) {
				errors.ValidateRange("Roll", 21, 1, 20, vb)
			},
			wantErr: true,
		},
		{
			name: "non-negative fails on negative damage",
			setup: func(vb *errors.ValidationBuilder) {
				errors.ValidateNonNegative("DamageAmount", -5, vb)
			},
			wantErr: true,
		},
		{
			name: "enum passes on known duration type",
			setup: func(vb *errors.ValidationBuilder) {
				errors.ValidateEnum("DurationType", "rounds", []string{"rounds", "until_save", "permanent", "until_removed"}, vb)
			},
			wantErr: false,
		},
		{
			name: "enum fails on unknown duration type",
			setup: func(vb *errors.ValidationBuilder) {
				errors.ValidateEnum("DurationType", "forever", []string{"rounds", "until_save", "permanent", "until_removed"}, vb)
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			tc.setup(vb)
			err := vb.Build()
			if tc.wantErr {
				s.Assert().Error(err)
			} else {
				s.Assert().NoError(err)
			}
		})
	}
}
