package store

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestIsSourceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "generic error",
			err:      errors.New("some error"),
			expected: false,
		},
		{
			name:     "ErrSourceUnavailable",
			err:      ErrSourceUnavailable,
			expected: true,
		},
		{
			name:     "wrapped ErrSourceUnavailable",
			err:      fmt.Errorf("failed to list: %w", ErrSourceUnavailable),
			expected: true,
		},
		{
			name:     "StoreError",
			err:      NewStoreError("pattern", "find_all", "failed to load content", fs.ErrNotExist),
			expected: true,
		},
		{
			name:     "StoreError without cause",
			err:      NewStoreError("pattern", "find_all", "failed to load content", nil),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSourceError(tt.err); got != tt.expected {
				t.Errorf("IsSourceError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestStoreError(t *testing.T) {
	// Create a store error
	originalErr := errors.New("permission denied")
	storeErr := NewStoreError("category", "find_all", "failed to load content", originalErr)

	// Test Error method
	expectedErrorString := "find_all operation on category failed: failed to load content: permission denied"
	if got := storeErr.Error(); got != expectedErrorString {
		t.Errorf("StoreError.Error() = %v, want %v", got, expectedErrorString)
	}

	// Test errors.Is with the wrapped error
	if !errors.Is(storeErr, originalErr) {
		t.Errorf("errors.Is() not recognizing the wrapped error")
	}

	// Test errors.As recovers the StoreError through extra wrapping
	var target *StoreError
	if !errors.As(fmt.Errorf("outer: %w", storeErr), &target) {
		t.Fatalf("errors.As() did not find StoreError")
	}
	if target.Entity != "category" {
		t.Errorf("StoreError.Entity = %v, want category", target.Entity)
	}
}

func TestStoreErrorWithoutCause(t *testing.T) {
	storeErr := NewStoreError("pattern", "find_by_slug", "content not loaded", nil)

	expected := "find_by_slug operation on pattern failed: content not loaded"
	if got := storeErr.Error(); got != expected {
		t.Errorf("StoreError.Error() = %v, want %v", got, expected)
	}
}
