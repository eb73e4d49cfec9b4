package errors

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"plain", New(ErrCodeInvalidTheme, "unknown theme %q", "neon"), `INVALID_THEME: unknown theme "neon"`},
		{"with cause", Wrap(ErrCodeFileNotFound, os.ErrNotExist, "portfolio %s not found", "me.yaml"), "FILE_NOT_FOUND: portfolio me.yaml not found: file does not exist"},
		{"no args", New(ErrCodeInvalidSections, "no sections declared"), "INVALID_SECTIONS: no sections declared"},
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
	err := Wrap(ErrCodeInvalidConfig, os.ErrPermission, "read %s", "profile.yaml")

	if errors.Unwrap(err) != os.ErrPermission {
		t.Errorf("Unwrap() = %v, want os.ErrPermission", errors.Unwrap(err))
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Error("errors.Is should see the wrapped cause")
	}
	if !os.IsPermission(errors.Unwrap(err)) {
		t.Error("cause should still classify as a permission error")
	}
}

func TestCodesThroughWrapping(t *testing.T) {
	inner := New(ErrCodeInvalidSections, `section "intro": order must be an integer`)
	outer := Wrap(ErrCodeInvalidConfig, inner, "load profile.yaml")
	viaFmt := fmt.Errorf("tui: %w", inner)

	tests := []struct {
		name string
		err  error
		code Code
		want bool
		get  Code
	}{
		{"direct", inner, ErrCodeInvalidSections, true, ErrCodeInvalidSections},
		{"outermost code wins", outer, ErrCodeInvalidConfig, true, ErrCodeInvalidConfig},
		{"inner code hidden by outer", outer, ErrCodeInvalidSections, false, ErrCodeInvalidConfig},
		{"fmt wrapping", viaFmt, ErrCodeInvalidSections, true, ErrCodeInvalidSections},
		{"plain error", errors.New("boom"), ErrCodeInternal, false, ""},
		{"nil", nil, ErrCodeInternal, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is(%s) = %v, want %v", tt.code, got, tt.want)
			}
			if got := GetCode(tt.err); got != tt.get {
				t.Errorf("GetCode() = %q, want %q", got, tt.get)
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
		{"coded", New(ErrCodeSessionNotFound, "session expired"), "session expired"},
		{"coded drops cause", Wrap(ErrCodeNetwork, errors.New("dial tcp: refused"), "fetch stars"), "fetch stars"},
		{"fmt wrapped coded", fmt.Errorf("export: %w", New(ErrCodeInvalidFormat, "format %q", "docx")), `format "docx"`},
		{"plain", errors.New("plain error"), "plain error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRateLimitedError(t *testing.T) {
	tests := []struct {
		err  *RateLimitedError
		want string
	}{
		{&RateLimitedError{RetryAfter: 60, Service: "github"}, "github rate limited: retry after 60 seconds"},
		{&RateLimitedError{Service: "github"}, "github rate limited"},
		{&RateLimitedError{}, "remote service rate limited"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
		if tt.err.Code() != ErrCodeRateLimited {
			t.Errorf("Code() = %v, want %v", tt.err.Code(), ErrCodeRateLimited)
		}
	}
}
