package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/folio/pkg/cache"
	"github.com/matzehuels/folio/pkg/errors"
	"github.com/matzehuels/folio/pkg/nav"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestDefaultMatchesNavOptions(t *testing.T) {
	if got, want := Default().Nav.Options(), nav.DefaultOptions(); got != want {
		t.Errorf("Default().Nav.Options() = %+v, want %+v", got, want)
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("GITHUB_TOKEN", "")

	s, err := Load(filepath.Join(dir, "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Cache.Backend != cache.BackendFile {
		t.Errorf("cache backend = %q, want file", s.Cache.Backend)
	}
	if s.Server.Addr != ":8080" {
		t.Errorf("server addr = %q, want :8080", s.Server.Addr)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "folio.yaml")
	data := `
nav:
  cooldown: 1s
  touch_threshold: 80
cache:
  backend: memory
  ttl: 2h
server:
  addr: ":9000"
github:
  concurrency: 8
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FOLIO_SERVER_ADDR", ":9100")
	t.Setenv("FOLIO_NAV_WHEEL_DAMPING", "0.25")
	t.Setenv("FOLIO_GITHUB_TOKEN", "from-env")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"nav.cooldown", s.Nav.Cooldown, time.Second},
		{"nav.touch_threshold", s.Nav.TouchThreshold, 80.0},
		{"nav.wheel_damping", s.Nav.WheelDamping, 0.25},
		{"nav.wheel_threshold", s.Nav.WheelThreshold, 50.0},
		{"cache.backend", s.Cache.Backend, cache.BackendMemory},
		{"cache.ttl", s.Cache.TTL, 2 * time.Hour},
		{"server.addr", s.Server.Addr, ":9100"},
		{"github.concurrency", s.GitHub.Concurrency, 8},
		{"github.token", s.GitHub.Token, "from-env"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestLoadGitHubTokenFallback(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GITHUB_TOKEN", "ghp_fallback")

	s, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.GitHub.Token != "ghp_fallback" {
		t.Errorf("github token = %q, want ghp_fallback", s.GitHub.Token)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown backend", "cache:\n  backend: etcd\n"},
		{"redis without addr", "cache:\n  backend: redis\n"},
		{"mongo without uri", "cache:\n  backend: mongo\n"},
		{"shrink out of range", "nav:\n  wheel_shrink: 1.5\n"},
		{"decay out of range", "nav:\n  inertia_decay: 1\n"},
		{"negative threshold", "nav:\n  touch_threshold: -1\n"},
		{"bad yaml", "nav: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			chdir(t, dir)
			path := filepath.Join(dir, "folio.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error code = %v, want INVALID_CONFIG", errors.GetCode(err))
			}
		})
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"FOLIO_CACHE_REDIS_ADDR": "cache.redis_addr",
		"FOLIO_NAV_COOLDOWN":     "nav.cooldown",
		"FOLIO_TUI_ROW_PX":       "tui.row_px",
		"FOLIO_STANDALONE":       "standalone",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStringHidesToken(t *testing.T) {
	s := Default()
	s.GitHub.Token = "secret"
	if got := s.String(); got == "" || strings.Contains(got, "secret") {
		t.Errorf("String() = %q leaks the token", got)
	}
}
