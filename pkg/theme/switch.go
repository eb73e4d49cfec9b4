package theme

import (
	"context"
	"slices"
)

// Switch holds the active theme. It is independent of section navigation.
type Switch struct {
	themes  []Theme
	current int
	store   Store
}

// NewSwitch picks the initial theme: the stored ID when it is available,
// else cfg.Current, else the first available theme. When cfg has no themes
// the built-ins are used. A failing store is treated as empty. A nil store
// disables persistence.
func NewSwitch(ctx context.Context, cfg Config, store Store) *Switch {
	themes := slices.Clone(cfg.Available)
	if len(themes) == 0 {
		themes = Builtin()
	}
	s := &Switch{themes: themes, store: store}

	if store != nil {
		if id, err := store.Load(ctx); err == nil && s.index(id) >= 0 {
			s.current = s.index(id)
			return s
		}
	}
	if i := s.index(cfg.Current); i >= 0 {
		s.current = i
	}
	return s
}

// Current returns the active theme.
func (s *Switch) Current() Theme { return s.themes[s.current] }

// Available returns the selectable themes in declaration order.
func (s *Switch) Available() []Theme { return slices.Clone(s.themes) }

// Select activates the theme with id and persists the choice. Unknown IDs
// are ignored. It reports whether the active theme changed.
func (s *Switch) Select(ctx context.Context, id string) (bool, error) {
	i := s.index(id)
	if i < 0 || i == s.current {
		return false, nil
	}
	s.current = i
	if s.store == nil {
		return true, nil
	}
	return true, s.store.Save(ctx, id)
}

// Next activates the following theme, wrapping around.
func (s *Switch) Next(ctx context.Context) (Theme, error) {
	next := s.themes[(s.current+1)%len(s.themes)]
	_, err := s.Select(ctx, next.ID)
	return s.Current(), err
}

func (s *Switch) index(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(s.themes, func(t Theme) bool { return t.ID == id })
}
