package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "job not found", NotFound("job not found").Error())

	cause := errors.New("connection reset")
	wrapped := Wrap(cause, ErrCodeInternal, "query failed")
	assert.Equal(t, "query failed: connection reset", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	wrapped := Wrap(cause, ErrCodeUpstream, "github request failed")
	assert.ErrorIs(t, wrapped, cause)
}

func TestWrap_NilIsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "ignored"))
	assert.Nil(t, Wrapf(nil, ErrCodeInternal, "ignored %d", 1))
}

func TestIsHelpers(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("x")))
	assert.True(t, IsConflict(Conflict("x")))
	assert.True(t, IsValidation(Validation("x")))
	assert.True(t, IsUnauthorized(Unauthorized("x")))
	assert.True(t, IsForbidden(Forbidden("x")))
	assert.True(t, IsUpstream(Upstream("x")))
	assert.True(t, IsInternal(Internal("x")))

	assert.False(t, IsNotFound(Conflict("x")))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsNotFound(nil))
}

func TestIsHelpers_WrappedChain(t *testing.T) {
	inner := NotFound("job not found")
	outer := fmt.Errorf("get status: %w", inner)
	assert.True(t, IsNotFound(outer))
	assert.Equal(t, ErrCodeNotFound, GetCode(outer))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, ErrCodeForbidden, GetCode(Forbidden("x")))
	assert.Equal(t, ErrorCode(""), GetCode(errors.New("plain")))
	assert.Equal(t, ErrorCode(""), GetCode(nil))
}

func TestValidationf(t *testing.T) {
	err := Validationf("unsupported language %q", "xx")
	require.True(t, IsValidation(err))
	assert.Equal(t, `unsupported language "xx"`, err.Message)
}
