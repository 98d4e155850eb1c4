package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email  string `validate:"required,email"`
	Status string `validate:"omitempty,oneof=draft sent"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()
	assert.NoError(t, cv.Validate(&sample{Email: "a@example.com", Status: "draft"}))
	assert.NoError(t, cv.Validate(&sample{Email: "a@example.com"}))
}

func TestValidateFails(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sample{Status: "unknown"})
	require.Error(t, err)

	messages := cv.FormatValidationErrors(err)
	assert.Equal(t, "Email is required", messages["Email"])
	assert.Equal(t, "Status must be one of: draft sent", messages["Status"])
}
