// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/clipfix/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "clipboard_unavailable",
			code:    errors.ErrClipboardUnavailable,
			message: "no clipboard tool found",
			wantStr: "[CLIPBOARD_UNAVAILABLE] no clipboard tool found",
		},
		{
			name:    "invalid_input",
			code:    errors.ErrInvalidInput,
			message: "unknown backend",
			wantStr: "[INVALID_INPUT] unknown backend",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrRuleInvalid, "duplicate rule name %q", "x")
	assert.Equal(t, errors.ErrRuleInvalid, err.Code)
	assert.Equal(t, `[RULE_INVALID] duplicate rule name "x"`, err.Error())
}

func TestWrap(t *testing.T) {
	base := fmt.Errorf("exit status 1")

	err := errors.Wrap(base, errors.ErrClipboardRead, "failed to read from clipboard")
	require.Error(t, err)
	assert.Equal(t, "[CLIPBOARD_READ] failed to read from clipboard: exit status 1", err.Error())
	assert.Same(t, base, stderrors.Unwrap(err))
	assert.True(t, stderrors.Is(err, base))

	assert.NoError(t, errors.Wrap(nil, errors.ErrClipboardRead, "nothing"))
	assert.NoError(t, errors.Wrapf(nil, errors.ErrClipboardRead, "nothing %d", 1))
}

func TestWrapf(t *testing.T) {
	err := errors.Wrapf(fmt.Errorf("denied"), errors.ErrClipboardWrite, "failed to replace %s", "/tmp/clip")
	assert.Equal(t, "[CLIPBOARD_WRITE] failed to replace /tmp/clip: denied", err.Error())
}

func TestIs_ComparesCodes(t *testing.T) {
	err := errors.Wrap(fmt.Errorf("boom"), errors.ErrConfigLoad, "failed to load flags")
	outer := fmt.Errorf("startup: %w", err)

	assert.True(t, stderrors.Is(outer, errors.New(errors.ErrConfigLoad, "")))
	assert.False(t, stderrors.Is(outer, errors.New(errors.ErrConfigValid, "")))
	assert.False(t, stderrors.Is(outer, fmt.Errorf("boom")))
}

func TestIsErrorCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", errors.New(errors.ErrClipboardNotText, "binary data"))

	assert.True(t, errors.IsErrorCode(err, errors.ErrClipboardNotText))
	assert.False(t, errors.IsErrorCode(err, errors.ErrClipboardRead))
	assert.False(t, errors.IsErrorCode(fmt.Errorf("plain"), errors.ErrClipboardRead))
	assert.False(t, errors.IsErrorCode(nil, errors.ErrClipboardRead))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrWatcherSetup, errors.GetErrorCode(errors.New(errors.ErrWatcherSetup, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(fmt.Errorf("plain")))
}

func TestDetails(t *testing.T) {
	err := errors.New(errors.ErrConfigValid, "bad value").
		WithDetail("key", "poll_interval").
		WithDetail("value", "1ms")

	details := errors.GetErrorDetails(fmt.Errorf("wrapped: %w", err))
	assert.Equal(t, map[string]interface{}{"key": "poll_interval", "value": "1ms"}, details)
	assert.Nil(t, errors.GetErrorDetails(fmt.Errorf("plain")))

	var zero errors.ClipfixError
	zero.WithDetail("k", 1)
	assert.Equal(t, 1, zero.Details["k"])
}
