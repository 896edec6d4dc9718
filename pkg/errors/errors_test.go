// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/mtr/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "package not found: zlib",
			wantStr: "[NOT_FOUND] package not found: zlib",
		},
		{
			name:    "cycle_error",
			code:    errors.ErrCycleDetected,
			message: "dependency cycle detected: a",
			wantStr: "[CYCLE_DETECTED] dependency cycle detected: a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details, "details should be initialized")
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrStepFailed, "command failed: %s (exit %d)", "make", 2)
	assert.Equal(t, "command failed: make (exit 2)", err.Message)
	assert.Equal(t, errors.ErrStepFailed, err.Code)
}

func TestWrap(t *testing.T) {
	base := stderrors.New("permission denied")

	t.Run("wraps_error", func(t *testing.T) {
		err := errors.Wrap(base, errors.ErrLedgerWrite, "failed to write ledger")
		require.NotNil(t, err)
		assert.Equal(t, "[LEDGER_WRITE] failed to write ledger: permission denied", err.Error())
		assert.True(t, stderrors.Is(err, base))
	})

	t.Run("nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrLedgerWrite, "unused"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrLedgerWrite, "unused %s", "x"))
	})

	t.Run("wrapf_formats", func(t *testing.T) {
		err := errors.Wrapf(base, errors.ErrIndexFetch, "fetching %s", "http://example")
		assert.Equal(t, "fetching http://example", err.Message)
	})
}

func TestDetails(t *testing.T) {
	err := errors.New(errors.ErrStepFailed, "step failed").
		WithDetail("program", "make").
		WithDetails(map[string]interface{}{"exit_code": 2, "package": "zlib"})

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "make", details["program"])
	assert.Equal(t, 2, details["exit_code"])
	assert.Equal(t, "zlib", details["package"])

	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestErrorCodes(t *testing.T) {
	inner := errors.New(errors.ErrNoRecipe, "no recipe for package a")
	wrapped := fmt.Errorf("install a: %w", inner)

	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrNoRecipe))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrNotFound))
	assert.Equal(t, errors.ErrNoRecipe, errors.GetErrorCode(wrapped))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))

	// errors.Is matches on code only
	assert.True(t, stderrors.Is(wrapped, errors.New(errors.ErrNoRecipe, "other message")))
	assert.False(t, stderrors.Is(wrapped, errors.New(errors.ErrCycleDetected, "")))
}
