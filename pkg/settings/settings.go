// Package settings loads folio's application settings.
//
// Settings are separate from the portfolio document: they tune how folio
// behaves (gesture thresholds, cache backend, server address, API tokens)
// rather than what it shows. Sources are layered, later ones winning:
//
//  1. built-in defaults
//  2. a YAML file (folio.yaml), when present
//  3. FOLIO_* environment variables, e.g. FOLIO_CACHE_BACKEND=redis or
//     FOLIO_NAV_COOLDOWN=1s
//
// A .env file in the working directory is loaded into the environment
// first, so any of the variables above can live there.
package settings

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/matzehuels/folio/pkg/cache"
	"github.com/matzehuels/folio/pkg/errors"
	"github.com/matzehuels/folio/pkg/nav"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "FOLIO_"

// DefaultFile is the settings file looked up when none is named.
const DefaultFile = "folio.yaml"

// Settings is the full application configuration.
type Settings struct {
	Nav    Nav          `koanf:"nav"`
	Cache  cache.Config `koanf:"cache"`
	Server Server       `koanf:"server"`
	GitHub GitHub       `koanf:"github"`
	TUI    TUI          `koanf:"tui"`
}

// Nav mirrors [nav.Options] with settings keys.
type Nav struct {
	WheelDamping          float64       `koanf:"wheel_damping"`
	WheelIdleReset        time.Duration `koanf:"wheel_idle_reset"`
	WheelThreshold        float64       `koanf:"wheel_threshold"`
	WheelThresholdFloor   float64       `koanf:"wheel_threshold_floor"`
	WheelThresholdCeiling float64       `koanf:"wheel_threshold_ceiling"`
	WheelQuickWindow      time.Duration `koanf:"wheel_quick_window"`
	WheelShrink           float64       `koanf:"wheel_shrink"`
	TouchThreshold        float64       `koanf:"touch_threshold"`
	EdgeTolerance         float64       `koanf:"edge_tolerance"`
	Cooldown              time.Duration `koanf:"cooldown"`
	InertiaDecay          float64       `koanf:"inertia_decay"`
	InertiaCutoff         float64       `koanf:"inertia_cutoff"`
	Passive               bool          `koanf:"passive"`
}

// Options converts the settings to gesture options.
func (n Nav) Options() nav.Options {
	return nav.Options{
		WheelDamping:          n.WheelDamping,
		WheelIdleReset:        n.WheelIdleReset,
		WheelThreshold:        n.WheelThreshold,
		WheelThresholdFloor:   n.WheelThresholdFloor,
		WheelThresholdCeiling: n.WheelThresholdCeiling,
		WheelQuickWindow:      n.WheelQuickWindow,
		WheelShrink:           n.WheelShrink,
		TouchThreshold:        n.TouchThreshold,
		EdgeTolerance:         n.EdgeTolerance,
		Cooldown:              n.Cooldown,
		InertiaDecay:          n.InertiaDecay,
		InertiaCutoff:         n.InertiaCutoff,
		Passive:               n.Passive,
	}
}

func navFromOptions(o nav.Options) Nav {
	return Nav{
		WheelDamping:          o.WheelDamping,
		WheelIdleReset:        o.WheelIdleReset,
		WheelThreshold:        o.WheelThreshold,
		WheelThresholdFloor:   o.WheelThresholdFloor,
		WheelThresholdCeiling: o.WheelThresholdCeiling,
		WheelQuickWindow:      o.WheelQuickWindow,
		WheelShrink:           o.WheelShrink,
		TouchThreshold:        o.TouchThreshold,
		EdgeTolerance:         o.EdgeTolerance,
		Cooldown:              o.Cooldown,
		InertiaDecay:          o.InertiaDecay,
		InertiaCutoff:         o.InertiaCutoff,
		Passive:               o.Passive,
	}
}

// Server configures `folio serve`.
type Server struct {
	Addr       string        `koanf:"addr"`
	SessionTTL time.Duration `koanf:"session_ttl"`
}

// GitHub configures star count lookups.
type GitHub struct {
	Token       string `koanf:"token"`
	Concurrency int    `koanf:"concurrency"`
	Disabled    bool   `koanf:"disabled"`
}

// TUI configures how terminal input maps onto gestures.
type TUI struct {
	// WheelDelta is the wheel delta reported per mouse wheel notch.
	WheelDelta float64 `koanf:"wheel_delta"`
	// RowPixels converts terminal rows to touch displacement.
	RowPixels float64 `koanf:"row_px"`
	// MouseDisabled turns off mouse capture.
	MouseDisabled bool `koanf:"mouse_disabled"`
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		Nav: navFromOptions(nav.DefaultOptions()),
		Cache: cache.Config{
			Backend:       cache.BackendFile,
			TTL:           24 * time.Hour,
			MongoDatabase: "folio",
		},
		Server: Server{Addr: ":8080", SessionTTL: 24 * time.Hour},
		GitHub: GitHub{Concurrency: 4},
		TUI:    TUI{WheelDelta: 100, RowPixels: 20},
	}
}

// Load reads settings from path, then environment overrides. A missing
// file is not an error; an empty path means [DefaultFile].
func Load(path string) (*Settings, error) {
	_ = godotenv.Load()

	if path == "" {
		path = DefaultFile
	}
	k := koanf.New(".")
	s := Default()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read settings %s", path)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "access settings %s", path)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load environment overrides")
	}
	if err := k.Unmarshal("", s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode settings")
	}

	if s.GitHub.Token == "" {
		s.GitHub.Token = os.Getenv("GITHUB_TOKEN")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// envKey maps FOLIO_CACHE_REDIS_ADDR to cache.redis_addr: the first
// underscore separates the section from the key.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, key, ok := strings.Cut(s, "_")
	if !ok {
		return s
	}
	return section + "." + key
}

var backends = map[string]bool{
	"":                  true,
	cache.BackendFile:   true,
	cache.BackendRedis:  true,
	cache.BackendMongo:  true,
	cache.BackendMemory: true,
	cache.BackendNone:   true,
}

// Validate checks value ranges and backend requirements.
func (s *Settings) Validate() error {
	if !backends[s.Cache.Backend] {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.backend %q: must be one of file, redis, mongo, memory, none", s.Cache.Backend)
	}
	if s.Cache.Backend == cache.BackendRedis && s.Cache.RedisAddr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_addr is required for the redis backend")
	}
	if s.Cache.Backend == cache.BackendMongo && s.Cache.MongoURI == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.mongo_uri is required for the mongo backend")
	}
	if s.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl must be non-negative")
	}
	if s.GitHub.Concurrency < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "github.concurrency must be non-negative")
	}
	n := s.Nav
	for name, v := range map[string]float64{
		"nav.wheel_damping":   n.WheelDamping,
		"nav.wheel_threshold": n.WheelThreshold,
		"nav.touch_threshold": n.TouchThreshold,
		"nav.edge_tolerance":  n.EdgeTolerance,
		"tui.wheel_delta":     s.TUI.WheelDelta,
		"tui.row_px":          s.TUI.RowPixels,
	} {
		if v < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be non-negative", name)
		}
	}
	if n.WheelShrink < 0 || n.WheelShrink > 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "nav.wheel_shrink must be within 0..1")
	}
	if n.InertiaDecay < 0 || n.InertiaDecay >= 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "nav.inertia_decay must be within 0..1 (exclusive)")
	}
	return nil
}

// String summarizes the effective settings without secrets.
func (s *Settings) String() string {
	token := "unset"
	if s.GitHub.Token != "" {
		token = "set"
	}
	return fmt.Sprintf("cache=%s ttl=%s server=%s github.token=%s", s.Cache.Backend, s.Cache.TTL, s.Server.Addr, token)
}
