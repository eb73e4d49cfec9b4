package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports observability events as debug logs.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnSectionChange(_ context.Context, surface string, from, to int, section string) {
	h.logger.Debug("section change", "surface", surface, "from", from, "to", to, "section", section)
}

func (h logHooks) OnGesture(_ context.Context, surface, kind, intent string) {
	h.logger.Debug("gesture", "surface", surface, "kind", kind, "intent", intent)
}

func (h logHooks) OnThemeChange(_ context.Context, surface, themeID string) {
	h.logger.Debug("theme change", "surface", surface, "theme", themeID)
}

func (h logHooks) OnCacheHit(_ context.Context, backend string) {
	h.logger.Debug("cache hit", "backend", backend)
}

func (h logHooks) OnCacheMiss(_ context.Context, backend string) {
	h.logger.Debug("cache miss", "backend", backend)
}

func (h logHooks) OnCacheSet(_ context.Context, backend string, size int) {
	h.logger.Debug("cache set", "backend", backend, "bytes", size)
}

func (h logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "method", method, "host", host, "path", path, "status", status, "elapsed", d.Round(time.Millisecond))
}

func (h logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("http error", "method", method, "host", host, "path", path, "error", err)
}
