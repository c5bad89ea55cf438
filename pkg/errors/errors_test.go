package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	err := NotFound("product", "12345")
	assert.Equal(t, "NOT_FOUND: product with id 12345 not found", err.Error())

	wrapped := Internal(errors.New("boom"))
	assert.Contains(t, wrapped.Error(), "boom")
}

func TestAppError_Unwrap(t *testing.T) {
	assert.ErrorIs(t, NotFound("product", "1"), ErrNotFound)
	assert.ErrorIs(t, InvalidInput("bad"), ErrInvalidInput)
	assert.ErrorIs(t, Upstream("gsport", "500"), ErrUpstream)

	deadline := Deadline("openai", context.DeadlineExceeded)
	assert.ErrorIs(t, deadline, ErrDeadline)
	assert.ErrorIs(t, deadline, context.DeadlineExceeded)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"app error not found", NotFound("product", "1"), http.StatusNotFound},
		{"app error invalid input", InvalidInput("bad"), http.StatusBadRequest},
		{"app error upstream", Upstream("gsport", "down"), http.StatusBadGateway},
		{"app error deadline", Deadline("openai", nil), http.StatusGatewayTimeout},
		{"wrapped sentinel", fmt.Errorf("ctx: %w", ErrNotFound), http.StatusNotFound},
		{"wrapped deadline sentinel", fmt.Errorf("ctx: %w", ErrDeadline), http.StatusGatewayTimeout},
		{"unknown error", errors.New("mystery"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestWrap(t *testing.T) {
	base := errors.New("base")
	wrapped := Wrap(base, "context")
	assert.ErrorIs(t, wrapped, base)
	assert.Equal(t, "context: base", wrapped.Error())
}
