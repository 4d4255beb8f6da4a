package appErrors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorIsolatesDetails(t *testing.T) {
	first := ValidationError(map[string]string{"email": "must be a valid email"})
	second := ValidationError(map[string]string{"password": "too short"})

	require.NotSame(t, first, second, "each failure gets its own error value")
	assert.Equal(t, map[string]string{"email": "must be a valid email"}, first.Details)
	assert.Equal(t, map[string]string{"password": "too short"}, second.Details)

	// The shared predefined error never accumulates request details.
	assert.Nil(t, ErrValidationFailed.Details)
}

func TestValidationErrorMatchesPredefined(t *testing.T) {
	err := ValidationError(map[string]string{"title": "required"})
	assert.Equal(t, CodeValidationFailed, err.Code)
	assert.Equal(t, ErrValidationFailed.HTTPCode, err.HTTPCode)
	assert.Equal(t, ErrValidationFailed.Message, err.Message)
}
