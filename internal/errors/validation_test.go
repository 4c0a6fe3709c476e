package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-inventory/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("save_id", "is required")
	ve.AddFieldError("capacity", "must be positive")

	s.True(ve.HasErrors())
	s.Equal("validation failed: capacity: must be positive; save_id: is required", ve.Error())

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestEmptyValidationError() {
	ve := errors.NewValidationError()
	s.False(ve.HasErrors())
	s.Equal("validation failed", ve.Error())
	s.Nil(ve.ToError())
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("SaveID", "  ", vb)
	errors.ValidatePositive("Capacity", 0, vb)
	errors.ValidateIndex("Index", 7, 5, vb)
	vb.RequiredField("Catalog")

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "SaveID: is required")
	s.Contains(err.Error(), "Capacity: must be positive, got 0")
	s.Contains(err.Error(), "Index: must be between 0 and 4, got 7")
	s.Contains(err.Error(), "Catalog: is required")
}

func (s *ValidationTestSuite) TestValidationBuilderPasses() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("SaveID", "player-inventory", vb)
	errors.ValidatePositive("Capacity", 24, vb)
	errors.ValidateIndex("Index", 0, 24, vb)

	s.NoError(vb.Build())
}
