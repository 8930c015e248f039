package client

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name     string
		apiError *APIError
		expected string
	}{
		{
			name: "error with wrapped error",
			apiError: &APIError{
				Endpoint:   "/api/v2/pokemon/1",
				ErrorClass: ErrorClassNetwork,
				Message:    "request failed",
				Err:        io.ErrUnexpectedEOF,
			},
			expected: "pokeapi network error (status 0) on /api/v2/pokemon/1: request failed: unexpected EOF",
		},
		{
			name: "error without wrapped error",
			apiError: &APIError{
				Endpoint:   "/api/v2/pokemon/9999",
				StatusCode: 404,
				ErrorClass: ErrorClassClient,
				Message:    "Not Found",
			},
			expected: "pokeapi client error (status 404) on /api/v2/pokemon/9999: Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.apiError.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAPIError_Unwrap(t *testing.T) {
	apiErr := &APIError{ErrorClass: ErrorClassNetwork, Err: io.EOF}
	if !errors.Is(apiErr, io.EOF) {
		t.Error("errors.Is should find the wrapped error")
	}

	wrapped := fmt.Errorf("get pokemon 1: %w", apiErr)
	var target *APIError
	if !errors.As(wrapped, &target) {
		t.Fatal("errors.As should find *APIError through wrapping")
	}
	if target.ErrorClass != ErrorClassNetwork {
		t.Errorf("ErrorClass = %q, want %q", target.ErrorClass, ErrorClassNetwork)
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("boom"), false},
		{"404", &APIError{StatusCode: 404, ErrorClass: ErrorClassClient}, true},
		{"wrapped 404", fmt.Errorf("get: %w", &APIError{StatusCode: 404}), true},
		{"500", &APIError{StatusCode: 500, ErrorClass: ErrorClassServer}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.want {
				t.Errorf("IsNotFound() = %v, want %v", got, tt.want)
			}
		})
	}
}
