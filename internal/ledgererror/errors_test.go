package ledgererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		expected string
	}{
		{
			name:     "with value",
			err:      NewValidationError(FieldAmount, "-10", "must be greater than zero"),
			expected: "invalid amount '-10': must be greater than zero",
		},
		{
			name:     "without value",
			err:      NewValidationError(FieldDescription, "", "must not be empty"),
			expected: "invalid description: must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestValidationError_IsAndAs(t *testing.T) {
	err := fmt.Errorf("add transaction: %w", NewValidationError(FieldDate, "2024-13-01", "not a calendar date"))

	assert.True(t, errors.Is(err, ErrInvalidField))

	field, ok := FieldOf(err)
	require.True(t, ok)
	assert.Equal(t, FieldDate, field)

	_, ok = FieldOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("permission denied")
	err := &PersistenceError{Op: OpSave, Key: "transactions", Err: cause}

	assert.Equal(t, "persistence save failed for key 'transactions': permission denied", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsPersistence(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsPersistence(cause))
}
