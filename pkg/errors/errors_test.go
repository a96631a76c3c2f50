package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidLength, "got %d values, want %d", 3, 4)

	if err.Code != ErrCodeInvalidLength {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidLength)
	}

	if err.Message != "got 3 values, want 4" {
		t.Errorf("Message = %v, want %v", err.Message, "got 3 values, want 4")
	}

	expected := "INVALID_LENGTH: got 3 values, want 4"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := Wrap(ErrCodeInvalidFormat, cause, "decode table")

	if err.Code != ErrCodeInvalidFormat {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidFormat)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "INVALID_FORMAT: decode table: unexpected EOF"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeNotBijective, "test"),
			code:     ErrCodeNotBijective,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeNotBijective, "test"),
			code:     ErrCodeInvalidLength,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeInvalidFormat, New(ErrCodeNotBijective, "inner"), "outer"),
			code:     ErrCodeInvalidFormat,
			expected: true,
		},
		{
			name:     "fmt wrapped error",
			err:      fmt.Errorf("read batch: %w", New(ErrCodeInvalidCycle, "inner")),
			code:     ErrCodeInvalidCycle,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidCycle, "test"),
			expected: ErrCodeInvalidCycle,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "wrapped Error",
			err:      Wrap(ErrCodeInvalidFormat, New(ErrCodeNotBijective, "value 2 appears more than once"), "entry %q", "a"),
			expected: `entry "a": value 2 appears more than once`,
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsInvalidInput(t *testing.T) {
	if !IsInvalidInput(New(ErrCodeNotBijective, "x")) {
		t.Error("NOT_BIJECTIVE should count as invalid input")
	}
	if !IsInvalidInput(fmt.Errorf("ctx: %w", New(ErrCodeInvalidLength, "x"))) {
		t.Error("wrapped INVALID_LENGTH should count as invalid input")
	}
	if IsInvalidInput(New(ErrCodeInternal, "x")) {
		t.Error("INTERNAL_ERROR should not count as invalid input")
	}
	if IsInvalidInput(errors.New("plain")) {
		t.Error("plain errors should not count as invalid input")
	}
}
