// Package tui is the full-screen terminal pager for a portfolio document.
//
// Each active section is a page. The mouse wheel, click-and-drag (treated
// as touch), and the arrow keys go through a [nav.Pager], so the terminal
// behaves like the web page: a section's own content scrolls first and only
// a gesture at its edge moves to the neighbouring section.
package tui

import (
	"context"
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/folio/pkg/nav"
	"github.com/matzehuels/folio/pkg/observability"
	"github.com/matzehuels/folio/pkg/profile"
	"github.com/matzehuels/folio/pkg/render/term"
	"github.com/matzehuels/folio/pkg/theme"
)

const surface = "tui"

const (
	tickInterval = 16 * time.Millisecond
	dotsWidth    = 3
	chromeRows   = 2 // arrow row and help row
	wheelLines   = 3
	maxDrift     = 2

	defaultWheelDelta = 100
	defaultRowPixels  = 20
)

// Options configures the pager.
type Options struct {
	Doc *profile.Document
	Nav nav.Options

	// Themes persists the theme selection. Nil keeps it in memory.
	Themes theme.Store

	// Stars maps project URLs to star counts.
	Stars map[string]int

	// WheelDelta is the delta reported per wheel notch.
	WheelDelta float64
	// RowPixels converts rows to touch displacement.
	RowPixels float64

	// NoMouse disables mouse capture.
	NoMouse bool

	Clock  nav.Clock
	Logger *log.Logger
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// pane is one section's nested scroll region.
type pane struct {
	name  string
	vp    viewport.Model
	rowPx float64
}

func (p *pane) Parent() nav.Element  { return nil }
func (p *pane) OverflowHidden() bool { return false }

func (p *pane) Metrics() nav.Metrics {
	return nav.Metrics{
		ScrollTop:    float64(p.vp.YOffset) * p.rowPx,
		ScrollHeight: float64(p.vp.TotalLineCount()) * p.rowPx,
		ClientHeight: float64(p.vp.Height) * p.rowPx,
	}
}

func (p *pane) scroll(lines int) {
	if lines > 0 {
		p.vp.LineDown(lines)
	} else if lines < 0 {
		p.vp.LineUp(-lines)
	}
}

// Model is the bubbletea model.
type Model struct {
	ctx      context.Context
	doc      *profile.Document
	pager    *nav.Pager
	themes   *theme.Switch
	registry *term.Registry
	palette  theme.Palette
	panes    []*pane
	stars    map[string]int
	logger   *log.Logger

	wheelDelta float64
	rowPx      float64

	width, height int
	ready         bool

	dragging bool
	dragY    int
	ticking  bool
}

// New builds the model. The section list is fixed for its lifetime.
func New(ctx context.Context, opts Options) Model {
	if opts.WheelDelta <= 0 {
		opts.WheelDelta = defaultWheelDelta
	}
	if opts.RowPixels <= 0 {
		opts.RowPixels = defaultRowPixels
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	doc := opts.Doc
	if doc == nil {
		doc = &profile.Document{}
	}

	pager := nav.NewPager(doc.ActiveSections(), opts.Nav, opts.Clock)
	panes := make([]*pane, pager.Controller().Count())
	for i, name := range pager.Controller().Sections() {
		panes[i] = &pane{name: name, vp: viewport.New(0, 0), rowPx: opts.RowPixels}
	}
	themes := theme.NewSwitch(ctx, doc.Themes, opts.Themes)

	logger := opts.Logger
	pager.Controller().OnChange(func(ch nav.Change) {
		panes[ch.To].vp.GotoTop()
		logger.Debug("section changed", "from", ch.From, "to", ch.To, "section", ch.Section)
		observability.Navigation().OnSectionChange(ctx, surface, ch.From, ch.To, ch.Section)
	})

	return Model{
		ctx:        ctx,
		doc:        doc,
		pager:      pager,
		themes:     themes,
		registry:   term.NewRegistry(),
		palette:    themes.Current().Palette(),
		panes:      panes,
		stars:      opts.Stars,
		logger:     logger,
		wheelDelta: opts.WheelDelta,
		rowPx:      opts.RowPixels,
	}
}

// Pager exposes the navigation state.
func (m Model) Pager() *nav.Pager { return m.pager }

// Theme returns the active theme.
func (m Model) Theme() theme.Theme { return m.themes.Current() }

// Init sets the window title once from the document metadata.
func (m Model) Init() tea.Cmd {
	if title := m.doc.Title(); title != "" {
		return tea.SetWindowTitle(title)
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tickMsg:
		if m.pager.Gestures().Tick() == 0 {
			m.ticking = false
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctrl := m.pager.Controller()
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.next), key.Matches(msg, keys.prev):
		m.gesture("key", m.pager.Key(nav.KeyEvent{Key: navKey(msg.String())}))
	case key.Matches(msg, keys.scrollDn):
		if p := m.current(); p != nil {
			p.scroll(1)
		}
	case key.Matches(msg, keys.scrollUp):
		if p := m.current(); p != nil {
			p.scroll(-1)
		}
	case key.Matches(msg, keys.first):
		ctrl.JumpTo(0)
	case key.Matches(msg, keys.last):
		ctrl.JumpTo(ctrl.Count() - 1)
	case key.Matches(msg, keys.theme):
		m.nextTheme()
	default:
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			ctrl.JumpTo(int(s[0] - '1'))
		}
	}
	return m, nil
}

func (m *Model) nextTheme() {
	t, err := m.themes.Next(m.ctx)
	if err != nil {
		m.logger.Warn("theme not saved", "error", err)
	}
	m.palette = t.Palette()
	m.logger.Debug("theme changed", "theme", t.ID)
	observability.Navigation().OnThemeChange(m.ctx, surface, t.ID)
	m.render()
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelDown:
		m.wheel(1)
	case msg.Button == tea.MouseButtonWheelUp:
		m.wheel(-1)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if i, ok := m.dotAt(msg.X, msg.Y); ok {
			m.pager.ClickIndicator(i)
			observability.Navigation().OnGesture(m.ctx, surface, "click", nav.None.String())
			return m, nil
		}
		if m.arrowAt(msg.X, msg.Y) {
			m.pager.ClickNext()
			observability.Navigation().OnGesture(m.ctx, surface, "click", nav.Advance.String())
			return m, nil
		}
		m.dragging = true
		m.dragY = msg.Y
		m.pager.TouchStart(nav.TouchEvent{Y: m.px(msg.Y), Target: m.target()})

	case msg.Action == tea.MouseActionMotion && m.dragging:
		out := m.pager.TouchMove(nav.TouchEvent{Y: m.px(msg.Y), Target: m.target()})
		if out.Passthrough {
			if p := m.current(); p != nil {
				p.scroll(m.dragY - msg.Y)
			}
		}
		m.dragY = msg.Y
		m.gesture("touch", out)

	case msg.Action == tea.MouseActionRelease && m.dragging:
		m.dragging = false
		m.pager.TouchEnd(nav.TouchEvent{Y: m.px(msg.Y)})
		if m.pager.Gestures().Residual() != 0 && !m.ticking {
			m.ticking = true
			return m, tick()
		}
	}
	return m, nil
}

// wheel offers a notch to the current section's scroll region first and
// then to the pager.
func (m *Model) wheel(dir int) {
	ev := nav.WheelEvent{DeltaY: float64(dir) * m.wheelDelta}
	if p := m.current(); p != nil {
		d := nav.Down
		if dir < 0 {
			d = nav.Up
		}
		if nav.CanScroll(p, d, m.pager.Gestures().Options().EdgeTolerance) {
			p.scroll(dir * wheelLines)
			ev.Consumed = true
		}
	}
	m.gesture("wheel", m.pager.Wheel(ev))
}

func (m *Model) gesture(kind string, out nav.Outcome) {
	if out.Intent == nav.None {
		return
	}
	observability.Navigation().OnGesture(m.ctx, surface, kind, out.Intent.String())
}

func (m *Model) current() *pane {
	c := m.pager.Controller()
	if c.Count() == 0 {
		return nil
	}
	return m.panes[c.Current()]
}

func (m *Model) target() nav.Element {
	if p := m.current(); p != nil {
		return p
	}
	return nil
}

func (m *Model) px(row int) float64 { return float64(row) * m.rowPx }

func (m *Model) contentWidth() int  { return max(m.width-dotsWidth-2, 10) }
func (m *Model) contentHeight() int { return max(m.height-chromeRows, 1) }

// dotsTop is the row of the first indicator dot.
func (m *Model) dotsTop() int {
	return max((m.contentHeight()-m.pager.Controller().Count())/2, 0)
}

func (m *Model) dotAt(x, y int) (int, bool) {
	n := m.pager.Controller().Count()
	if n == 0 || x < m.width-dotsWidth {
		return 0, false
	}
	i := y - m.dotsTop()
	return i, i >= 0 && i < n
}

func (m *Model) arrowAt(_, y int) bool {
	return m.pager.Controller().HasNext() && y == m.contentHeight()
}

func (m *Model) layout() {
	for _, p := range m.panes {
		p.vp.Width = m.contentWidth()
		p.vp.Height = m.contentHeight()
	}
	m.render()
}

func (m *Model) render() {
	for _, p := range m.panes {
		s, _ := m.registry.Render(p.name, term.Input{
			Doc:     m.doc,
			Palette: m.palette,
			Width:   m.contentWidth(),
			Stars:   m.stars,
		})
		p.vp.SetContent(s)
	}
}

func (m Model) View() string {
	if !m.ready {
		return "Loading…"
	}
	ctrl := m.pager.Controller()
	help := m.palette.Secondary.Render("↓/↑ section  j/k scroll  1-9 jump  t theme  q quit")
	if ctrl.Count() == 0 {
		empty := lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center,
			m.palette.Secondary.Render("Nothing to show yet."))
		return empty + "\n\n" + help
	}

	h := m.contentHeight()
	content := drift(m.current().vp.View(), m.driftRows())
	content = lipgloss.NewStyle().
		Width(m.contentWidth()).
		Height(h).
		MaxHeight(h).
		PaddingLeft(1).
		Render(content)

	dots := strings.Repeat("\n", m.dotsTop()) + term.Dots(ctrl.Indicators(), m.palette)
	dots = lipgloss.NewStyle().Width(dotsWidth).Height(h).MaxHeight(h).Align(lipgloss.Center).Render(dots)

	arrow := ""
	if ctrl.HasNext() {
		arrow = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.palette.Accent.Render(term.NextArrow))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, content, dots) + "\n" + arrow + "\n" + help
}

// driftRows converts the inertia residual to a row offset: a pull down
// shows content shifted down, a push up shifted up.
func (m Model) driftRows() int {
	r := m.pager.Gestures().Residual()
	rows := int(math.Round(-r / m.rowPx))
	return min(max(rows, -maxDrift), maxDrift)
}

func drift(view string, rows int) string {
	switch {
	case rows > 0:
		return strings.Repeat("\n", rows) + view
	case rows < 0:
		lines := strings.Split(view, "\n")
		if -rows < len(lines) {
			lines = lines[-rows:]
		}
		return strings.Join(lines, "\n")
	}
	return view
}
