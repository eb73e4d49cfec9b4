package nav

import (
	"testing"
	"time"
)

func TestPagerEndToEnd(t *testing.T) {
	clock := newFakeClock()
	p := NewPager([]string{"profile", "intro", "projects"}, DefaultOptions(), clock)
	ctrl := p.Controller()

	if ctrl.Current() != 0 || ctrl.Section() != "profile" {
		t.Fatalf("initial section = %d %q, want 0 profile", ctrl.Current(), ctrl.Section())
	}

	// Downward gesture advances to intro.
	p.TouchStart(TouchEvent{Y: 600})
	p.TouchMove(TouchEvent{Y: 520})
	p.TouchEnd(TouchEvent{})
	if ctrl.Section() != "intro" {
		t.Fatalf("after swipe: section = %q, want intro", ctrl.Section())
	}

	// Clicking the projects dot jumps directly, even during cooldown.
	if !p.ClickIndicator(2) {
		t.Fatal("ClickIndicator(2) should change the section")
	}
	if ctrl.Current() != 2 {
		t.Fatalf("after click: current = %d, want 2", ctrl.Current())
	}

	// A further downward gesture is a no-op.
	clock.Advance(time.Second)
	out := p.Wheel(WheelEvent{DeltaY: 300})
	if out.Intent != Advance {
		t.Fatalf("wheel intent = %v, want advance", out.Intent)
	}
	if ctrl.Current() != 2 {
		t.Errorf("after gesture on last section: current = %d, want 2", ctrl.Current())
	}
}

func TestPagerCooldownSingleChange(t *testing.T) {
	clock := newFakeClock()
	p := NewPager([]string{"a", "b", "c", "d"}, DefaultOptions(), clock)

	changes := 0
	p.Controller().OnChange(func(Change) { changes++ })

	p.Wheel(WheelEvent{DeltaY: 200})
	clock.Advance(300 * time.Millisecond)
	p.Wheel(WheelEvent{DeltaY: 200})

	if changes != 1 {
		t.Errorf("changes = %d, want 1", changes)
	}
	if p.Controller().Current() != 1 {
		t.Errorf("current = %d, want 1", p.Controller().Current())
	}
}

func TestPagerArrows(t *testing.T) {
	p := NewPager([]string{"a", "b"}, DefaultOptions(), newFakeClock())

	if p.ClickPrevious() {
		t.Error("ClickPrevious on first section should be a no-op")
	}
	if !p.ClickNext() {
		t.Error("ClickNext should advance")
	}
	if p.ClickNext() {
		t.Error("ClickNext on last section should be a no-op")
	}
}

func TestPagerKeysInOrder(t *testing.T) {
	p := NewPager([]string{"a", "b", "c"}, DefaultOptions(), newFakeClock())

	var seen []int
	p.Controller().OnChange(func(ch Change) { seen = append(seen, ch.To) })

	p.Key(KeyEvent{Key: KeyDown})
	p.Key(KeyEvent{Key: KeyPageDown})
	p.Key(KeyEvent{Key: KeyUp})

	want := []int{1, 2, 1}
	if len(seen) != len(want) {
		t.Fatalf("seen = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("seen[%d] = %d, want %d", i, seen[i], want[i])
		}
	}
}
