package errors_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/folio/pkg/errors"
	"github.com/matzehuels/folio/pkg/profile"
	"github.com/matzehuels/folio/pkg/settings"
)

func TestSectionWarningsCarryCode(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"malformed order", "sections:\n  profile: first\n", `section "profile": order must be an integer`},
		{"duplicate", "sections:\n  profile: 1\n  profile: 2\n", `duplicate section "profile"`},
		{"missing", "profile:\n  name: Ada\n", "no sections declared"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := profile.Parse([]byte(tt.doc), profile.FormatYAML)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			var found bool
			for _, w := range doc.Warnings {
				if errors.Is(w, errors.ErrCodeInvalidSections) && strings.Contains(errors.UserMessage(w), tt.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("warnings = %v, want INVALID_SECTIONS containing %q", doc.Warnings, tt.want)
			}
			if len(doc.ActiveSections()) != 0 {
				t.Errorf("ActiveSections() = %v, want none", doc.ActiveSections())
			}
		})
	}
}

func TestMissingDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	_, err := profile.Load(path)

	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Fatalf("Load() error = %v, want FILE_NOT_FOUND", err)
	}
	if got, want := errors.UserMessage(err), "portfolio "+path+" not found"; got != want {
		t.Errorf("UserMessage() = %q, want %q", got, want)
	}
}

func TestInvalidSettingsCode(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "folio.yaml")
	if err := os.WriteFile(path, []byte("cache:\n  backend: redis\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := settings.Load(path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
	}
}
