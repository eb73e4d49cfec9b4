package cli

import (
	"path/filepath"
	"testing"

	"github.com/matzehuels/folio/pkg/cache"
)

func TestCacheDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		xdg  string
		cfg  cache.Config
		want string
	}{
		{"home default", "", cache.Config{}, filepath.Join(home, ".cache", appName)},
		{"xdg", "/tmp/custom-cache", cache.Config{}, filepath.Join("/tmp/custom-cache", appName)},
		{"configured dir wins", "/tmp/custom-cache", cache.Config{Dir: "/srv/folio"}, "/srv/folio"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_CACHE_HOME", tt.xdg)
			got, err := cacheDir(tt.cfg)
			if err != nil {
				t.Fatalf("cacheDir() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("cacheDir() = %q, want %q", got, tt.want)
			}
		})
	}
}
