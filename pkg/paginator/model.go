package paginator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/reflow/ansi"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/turner/pkg/ui/theme"
)

// Display-count breakpoint. Terminals narrower than NarrowWidth get the
// small page-number window; everything else gets the wide one. The core
// state machine only ever sees the resulting display count.
const (
	NarrowWidth = 80

	NarrowDisplayCount = 3
	WideDisplayCount   = 5
)

// ChangedMsg is emitted through the Bubble Tea command queue whenever the
// user navigates to a different page. Silent resyncs (refresh, reconfigure,
// resize) never produce one.
type ChangedMsg Change

// Changed returns a command that delivers the change notification.
func Changed(ch Change) tea.Cmd {
	return func() tea.Msg {
		return ChangedMsg(ch)
	}
}

// ModelConfig configures a widget [Model].
type ModelConfig struct {
	Theme    *theme.Theme
	KeyBinds *KeyBinds
	Options  []Option
}

// Model wraps a [Paginator] as a Bubble Tea component rendering the control
// strip: a previous-page control, the windowed page numbers, and a
// next-page control.
type Model[T any] struct {
	paginator *Paginator[T]
	theme     *theme.Theme
	kb        *KeyBinds
	width     int
}

// NewModel creates a widget around a fresh [Paginator].
func NewModel[T any](c ModelConfig) Model[T] {
	t := c.Theme
	if t == nil {
		t = theme.Default
	}

	kb := c.KeyBinds
	if kb == nil {
		kb = &KeyBinds{}
	}
	kb.EnsureDefaults()

	return Model[T]{
		paginator: New[T](c.Options...),
		theme:     t,
		kb:        kb,
	}
}

// Paginator exposes the underlying state machine, e.g. for refreshes and
// reads. Mutating it directly is fine; the widget derives its view on
// demand.
func (m Model[T]) Paginator() *Paginator[T] {
	return m.paginator
}

func (m Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys and resize signals. Navigation that
// actually changes the page yields a [ChangedMsg] command; rejected
// navigation is silently dropped.
func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetWidth(msg.Width)

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}

	return m, nil
}

func (m Model[T]) handleKey(key string) (Model[T], tea.Cmd) {
	var (
		ch Change
		ok bool
	)

	switch {
	case m.kb.Prev.Match(key):
		ch, ok = m.paginator.PrevPage()

	case m.kb.Next.Match(key):
		ch, ok = m.paginator.NextPage()

	case m.kb.First.Match(key):
		ch, ok = m.paginator.GoToPage(1)

	case m.kb.Last.Match(key):
		ch, ok = m.paginator.GoToPage(m.paginator.TotalPages())

	default:
		// Digits jump straight to that page.
		if n, err := strconv.Atoi(key); err == nil && n >= 1 {
			ch, ok = m.paginator.GoToPage(n)
		}
	}

	if !ok {
		return m, nil
	}

	return m, Changed(ch)
}

// SetWidth feeds the viewport width to the display-count breakpoint and
// remembers it for rendering. It never touches navigation state.
func (m *Model[T]) SetWidth(width int) {
	m.width = width
	m.paginator.SetDisplayCount(DisplayCountForWidth(width))
}

// DisplayCountForWidth maps a terminal width to a page-number window size.
// A non-positive width means the size is unknown, which gets the wide
// window.
func DisplayCountForWidth(width int) int {
	if width > 0 && width < NarrowWidth {
		return NarrowDisplayCount
	}

	return WideDisplayCount
}

// View renders the control strip. It returns an empty string when there is
// only one page. If the strip would overflow the known width, it falls back
// to a compact "page/total" form.
func (m Model[T]) View() string {
	vm := m.paginator.ViewModel()
	if !vm.ControlsVisible {
		return ""
	}

	cfg := m.paginator.Config()

	segments := make([]string, 0, len(vm.Buttons)+2)

	segments = append(segments, m.controlView(cfg.PrevLabel, vm.PrevEnabled))

	collapsed := false
	for _, b := range vm.Buttons {
		if !b.Visible {
			collapsed = true

			continue
		}
		if collapsed {
			segments = append(segments, m.theme.SubtleStyle.Render(m.theme.Ellipsis))
			collapsed = false
		}

		segments = append(segments, m.buttonView(b))
	}

	segments = append(segments, m.controlView(cfg.NextLabel, vm.NextEnabled))

	strip := strings.Join(segments, " ")

	// Degrade to arabic progress if the strip does not fit.
	if m.width > 0 && ansi.PrintableRuneWidth(strip) > m.width {
		strip = m.theme.GenericTextStyle.Render(
			fmt.Sprintf("%d/%d", m.paginator.CurrentPage(), m.paginator.TotalPages()),
		)
	}

	return m.theme.PaginationStyle.Render(strip)
}

func (m Model[T]) controlView(label string, enabled bool) string {
	if enabled {
		return m.theme.GenericTextStyle.Render(label)
	}

	return m.theme.SubtleStyle.Render(label)
}

func (m Model[T]) buttonView(b PageButton) string {
	s := strconv.Itoa(b.Page)
	if b.Active {
		return m.theme.SelectedStyle.Render(s)
	}

	return m.theme.GenericTextStyle.Render(s)
}
