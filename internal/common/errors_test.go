package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Empty(t *testing.T) {
	var ve ValidationError
	require.NoError(t, ve.Err())
}

func TestValidationError_CollectsFields(t *testing.T) {
	var ve ValidationError
	ve.Add("title", "is required")
	ve.Add("userId", "is required")

	err := ve.Err()
	require.Error(t, err)

	var got *ValidationError
	require.True(t, errors.As(err, &got))
	assert.Len(t, got.Fields, 2)
	assert.Equal(t, "title", got.Fields[0].Field)
	assert.Contains(t, err.Error(), "title: is required")
	assert.Contains(t, err.Error(), "userId: is required")
}

func TestSentinels_DistinguishableViaIs(t *testing.T) {
	wrapped := fmt.Errorf("deleting note: %w", ErrorNotFound)
	assert.True(t, errors.Is(wrapped, ErrorNotFound))
	assert.False(t, errors.Is(wrapped, ErrorConflict))
}
