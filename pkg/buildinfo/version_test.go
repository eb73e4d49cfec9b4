package buildinfo

import (
	"strings"
	"testing"
)

func TestStrings(t *testing.T) {
	old := Version
	Version = "v0.3.1"
	defer func() { Version = old }()

	if got := UserAgent(); got != "folio/v0.3.1" {
		t.Errorf("UserAgent() = %q", got)
	}
	if !strings.Contains(String(), "version: v0.3.1") {
		t.Errorf("String() = %q", String())
	}
	if !strings.Contains(Template(), "version v0.3.1") {
		t.Errorf("Template() = %q", Template())
	}
}
