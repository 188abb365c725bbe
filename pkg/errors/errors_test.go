package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name: "without underlying error",
			appErr: &AppError{
				Code:    CodeAuthentication,
				Message: MsgInvalidOtp,
			},
			expected: "AUTHENTICATION_ERROR: Invalid OTP",
		},
		{
			name: "with underlying error",
			appErr: &AppError{
				Code:    CodeInternal,
				Message: "internal error",
				Err:     errors.New("connection reset"),
			},
			expected: "INTERNAL_ERROR: internal error (caused by: connection reset)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	originalErr := errors.New("server selection timeout")
	wrapped := Wrap(originalErr, CodeUnavailable, "store down", http.StatusServiceUnavailable)

	assert.Same(t, originalErr, errors.Unwrap(wrapped))
	assert.Equal(t, http.StatusServiceUnavailable, wrapped.StatusCode())
}

func TestConstructors_StatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		code   string
		status int
	}{
		{"validation", Validation("Validation failed", nil), CodeValidation, http.StatusUnprocessableEntity},
		{"authentication", Authentication(MsgInvalidOtp), CodeAuthentication, http.StatusBadRequest},
		{"bad request", BadRequest("bad"), CodeBadRequest, http.StatusBadRequest},
		{"not found", NotFound("Vehicle"), CodeNotFound, http.StatusNotFound},
		{"internal", Internal("boom", nil), CodeInternal, http.StatusInternalServerError},
		{"timeout", Timeout("Request timeout"), CodeTimeout, http.StatusServiceUnavailable},
		{"unavailable", Unavailable("Document store", nil), CodeUnavailable, http.StatusServiceUnavailable},
		{"rate limited", RateLimited("slow down"), CodeRateLimited, http.StatusTooManyRequests},
		{"unsupported media type", UnsupportedMediaType("json only"), CodeUnsupported, http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.StatusCode())
		})
	}
}

func TestAsAppError(t *testing.T) {
	t.Run("passes app errors through, even when wrapped", func(t *testing.T) {
		appErr := Authentication(MsgInvalidOtp)
		wrapped := fmt.Errorf("verify: %w", appErr)

		assert.True(t, IsAppError(wrapped))
		assert.Same(t, appErr, AsAppError(wrapped))
	})

	t.Run("hides plain errors behind a generic internal error", func(t *testing.T) {
		plain := errors.New("E11000 duplicate key")

		got := AsAppError(plain)

		assert.False(t, IsAppError(plain))
		assert.Equal(t, CodeInternal, got.Code)
		assert.Equal(t, "Internal server error", got.Message)
		assert.Same(t, plain, got.Err)
	})
}

func TestAppError_Response(t *testing.T) {
	appErr := Validation("Validation failed", map[string]any{"errors": []string{"price_per_day"}})

	data, err := json.Marshal(appErr.Response())
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, "Validation failed", body["detail"])
	assert.Equal(t, CodeValidation, body["code"])
	assert.Contains(t, body, "details")
}

func TestAppError_Response_OmitsEmptyDetails(t *testing.T) {
	data, err := json.Marshal(Authentication(MsgInvalidOtp).Response())
	require.NoError(t, err)

	assert.JSONEq(t, `{"detail":"Invalid OTP","code":"AUTHENTICATION_ERROR"}`, string(data))
}
