package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	n := NoopNavigationHooks{}
	n.OnSectionChange(ctx, "tui", 0, 1, "intro")
	n.OnGesture(ctx, "tui", "wheel", "advance")
	n.OnThemeChange(ctx, "site", "minimal")

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "file")
	c.OnCacheMiss(ctx, "redis")
	c.OnCacheSet(ctx, "mongo", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "api.github.com", "/repos/stvlynn/folio")
	h.OnResponse(ctx, "GET", "api.github.com", "/repos/stvlynn/folio", 200, time.Second)
	h.OnError(ctx, "GET", "api.github.com", "/repos/stvlynn/folio", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Navigation().(NoopNavigationHooks); !ok {
		t.Error("Navigation() should return NoopNavigationHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customNav := &recordingNavHooks{}
	SetNavigationHooks(customNav)
	if Navigation() != customNav {
		t.Error("SetNavigationHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Navigation().(NoopNavigationHooks); !ok {
		t.Error("Reset() should restore NoopNavigationHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &recordingNavHooks{}
	SetNavigationHooks(custom)
	SetNavigationHooks(nil)

	if Navigation() != custom {
		t.Error("SetNavigationHooks(nil) should be ignored")
	}
}

func TestNavigationHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	rec := &recordingNavHooks{}
	SetNavigationHooks(rec)
	Navigation().OnSectionChange(context.Background(), "tui", 1, 2, "projects")

	if len(rec.sections) != 1 || rec.sections[0] != "projects" {
		t.Errorf("sections = %v, want [projects]", rec.sections)
	}
}

type recordingNavHooks struct {
	NoopNavigationHooks
	sections []string
}

func (r *recordingNavHooks) OnSectionChange(_ context.Context, _ string, _, _ int, section string) {
	r.sections = append(r.sections, section)
}

type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
