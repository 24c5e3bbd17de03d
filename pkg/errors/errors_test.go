package errors

import (
	"errors"
	"fmt"
	"testing"
)

var errChildren = errors.New("children unavailable")

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "message only",
			err:  New(ErrCodeInvalidConfig, "indent width must be >= 1, got %d", -2),
			want: "INVALID_CONFIG: indent width must be >= 1, got -2",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeCapability, errChildren, "children of %s", "root"),
			want: "CAPABILITY_VIOLATION: children of root: children unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	err := Wrap(ErrCodeCapability, errChildren, "children of root")

	if err.Cause != errChildren {
		t.Errorf("Cause = %v, want %v", err.Cause, errChildren)
	}
	if errors.Unwrap(err) != errChildren {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), errChildren)
	}
	if !errors.Is(err, errChildren) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", New(ErrCodeInvalidInput, "root node is nil"), ErrCodeInvalidInput, true},
		{"non-matching code", New(ErrCodeInvalidInput, "root node is nil"), ErrCodeInvalidConfig, false},
		{"outermost code wins", Wrap(ErrCodeCapability, New(ErrCodeInvalidInput, "inner"), "outer"), ErrCodeCapability, true},
		{"through fmt.Errorf", fmt.Errorf("config x.toml: %w", New(ErrCodeInvalidConfig, "bad")), ErrCodeInvalidConfig, true},
		{"plain error", errChildren, ErrCodeInvalidInput, false},
		{"nil error", nil, ErrCodeInvalidInput, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"Error type", New(ErrCodeSampleNotFound, "unknown sample"), ErrCodeSampleNotFound},
		{"wrapped by fmt.Errorf", fmt.Errorf("render: %w", New(ErrCodeInvalidFormat, "png")), ErrCodeInvalidFormat},
		{"plain error", errChildren, ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"Error type", New(ErrCodeInvalidInput, "sample name required"), "sample name required"},
		{"nested Error", fmt.Errorf("render: %w", New(ErrCodeSampleNotFound, "unknown sample")), "unknown sample"},
		{"plain error", errChildren, "children unavailable"},
		{"wrapped cause", Wrap(ErrCodeCapability, errChildren, "render nodes"), "render nodes: children unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
