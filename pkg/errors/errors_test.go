package errors

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	err := Wrap(ErrCodeTimeout, "request timed out", context.DeadlineExceeded)
	assert.Equal(t, "TIMEOUT: request timed out (context deadline exceeded)", err.Error())
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	assert.Equal(t, "NETWORK_ERROR: dial failed", New(ErrCodeNetwork, "dial failed").Error())
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("submit: %w", New(ErrCodeValidation, "bad"))

	assert.Equal(t, ErrCodeValidation, CodeOf(wrapped))
	assert.True(t, IsValidation(wrapped))
	assert.False(t, IsTimeout(wrapped))
	assert.False(t, IsNetwork(nil))
	assert.Equal(t, ErrCodeInternalError, CodeOf(fmt.Errorf("plain")))
}
