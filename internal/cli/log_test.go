package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/folio/pkg/observability"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		emit  func(*log.Logger)
		want  bool
	}{
		{"info at info", log.InfoLevel, func(l *log.Logger) { l.Info("x") }, true},
		{"debug at info", log.InfoLevel, func(l *log.Logger) { l.Debug("x") }, false},
		{"debug at debug", log.DebugLevel, func(l *log.Logger) { l.Debug("x") }, true},
		{"warn at info", log.InfoLevel, func(l *log.Logger) { l.Warn("x") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("wrote output = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(newLogger(&buf, log.InfoLevel))
	p.start = p.start.Add(-1500 * time.Millisecond)
	p.done("Rendered html")

	got := buf.String()
	if !strings.Contains(got, "Rendered html (1.5") {
		t.Errorf("done output = %q, want message with elapsed time", got)
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("empty context should yield the default logger")
	}
	l := newLogger(&bytes.Buffer{}, log.InfoLevel)
	if loggerFromContext(withLogger(context.Background(), l)) != l {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := logHooks{newLogger(&buf, log.DebugLevel)}
	observability.SetNavigationHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
	defer observability.Reset()

	ctx := context.Background()
	observability.Navigation().OnSectionChange(ctx, "tui", 0, 1, "intro")
	observability.Navigation().OnGesture(ctx, "tui", "wheel", "advance")
	observability.Navigation().OnThemeChange(ctx, "web", "minimal")
	observability.Cache().OnCacheMiss(ctx, "file")
	observability.HTTP().OnError(ctx, "GET", "api.github.com", "/repos/a/b", errors.New("boom"))

	got := buf.String()
	for _, want := range []string{"section change", "section=intro", "gesture", "theme change", "cache miss", "http error", "boom"} {
		if !strings.Contains(got, want) {
			t.Errorf("log output missing %q:\n%s", want, got)
		}
	}
}

func TestLogHooksQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	h := logHooks{newLogger(&buf, log.InfoLevel)}
	h.OnCacheHit(context.Background(), "memory")
	h.OnSectionChange(context.Background(), "web", 1, 2, "projects")
	if buf.Len() != 0 {
		t.Errorf("hooks logged at info level: %q", buf.String())
	}
}
