package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorMessage(t *testing.T) {
	err := New(ErrCodeValidation, "reply token must not be empty")
	assert.Equal(t, "VALIDATION: reply token must not be empty", err.Error())
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(cause, ErrCodeTransport, "push failed")

	assert.Contains(t, err.Error(), "TRANSPORT_FAILURE")
	assert.Contains(t, err.Error(), "connection refused")
	assert.True(t, errors.Is(err, cause))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, ErrCodeTransport, GetCode(New(ErrCodeTransport, "x")))
	assert.Equal(t, ErrCodeInternal, GetCode(fmt.Errorf("plain error")))

	wrapped := fmt.Errorf("outer: %w", New(ErrCodeContentFetch, "inner"))
	assert.Equal(t, ErrCodeContentFetch, GetCode(wrapped))
}

func TestHasCode(t *testing.T) {
	err := Wrap(fmt.Errorf("404"), ErrCodeContentFetch, "failed to fetch")

	assert.True(t, HasCode(err, ErrCodeContentFetch))
	assert.False(t, HasCode(err, ErrCodeTransport))
	assert.False(t, HasCode(fmt.Errorf("plain"), ErrCodeContentFetch))
	require.False(t, HasCode(nil, ErrCodeContentFetch))
}
