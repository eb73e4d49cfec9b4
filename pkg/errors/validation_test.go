package errors

import (
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple file", "intro.md", false},
		{"nested file", "content/intro.md", false},
		{"dotted name", "assets/avatar.v2.png", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"absolute", "/etc/passwd", true},
		{"traversal", "../secret.md", true},
		{"backslash", "content\\intro.md", true},
		{"newline", "intro\n.md", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidatePath(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"https://github.com/stvlynn", false},
		{"http://example.com", false},
		{"", true},
		{"ftp://example.com", true},
		{"github.com/stvlynn", true},
		{"https://", true},
		{"javascript:alert(1)", true},
	}

	for _, tt := range tests {
		err := ValidateURL(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidateLink(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"mailto:me@example.com", false},
		{"https://x.com/me", false},
		{"mailto:", true},
		{"mailto:nobody", true},
		{"tel:12345", true},
	}

	for _, tt := range tests {
		err := ValidateLink(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateLink(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidateIdentifier(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"profile", false},
		{"techStacks", false},
		{"dark-mode_2", false},
		{"", true},
		{"has space", true},
		{"slash/name", true},
		{string(make([]byte, 65)), true},
	}

	for _, tt := range tests {
		err := ValidateIdentifier(ErrCodeInvalidTheme, "theme id", tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateIdentifier(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if err != nil && GetCode(err) != ErrCodeInvalidTheme {
			t.Errorf("ValidateIdentifier(%q) code = %v", tt.input, GetCode(err))
		}
	}
}
