package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "input", err: E(CodeInvalidArgument, "op", "missing", nil), want: http.StatusBadRequest},
		{name: "upstream", err: E(CodeUpstream, "op", "ai failed", errors.New("dial tcp")), want: http.StatusBadGateway},
		{name: "format", err: E(CodeBadOutput, "op", "bad json", nil), want: http.StatusInternalServerError},
		{name: "rate limited", err: E(CodeRateLimited, "op", "slow down", nil), want: http.StatusTooManyRequests},
		{name: "conflict", err: E(CodeConflict, "op", "taken", nil), want: http.StatusConflict},
		{name: "wrapped app error", err: fmt.Errorf("outer: %w", E(CodeNotFound, "op", "nope", nil)), want: http.StatusNotFound},
		{name: "sentinel not found", err: fmt.Errorf("repo: %w", ErrNotFound), want: http.StatusNotFound},
		{name: "plain", err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestAppErrorMessageAndUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := E(CodeUpstream, "AIService.AnalyzeResume", "AI service request failed", cause)

	assert.Equal(t, "AIService.AnalyzeResume: AI service request failed: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsCode(err, CodeUpstream))
	assert.False(t, IsCode(err, CodeBadOutput))
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse")
	assert.NoError(t, err)
	assert.NoError(t, CheckPassword(hash, "correct horse"))
	assert.Error(t, CheckPassword(hash, "battery staple"))
}
