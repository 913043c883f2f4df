package ui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/wordwrap"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/turner/pkg/content"
	"github.com/macropower/turner/pkg/keys"
	"github.com/macropower/turner/pkg/paginator"
	"github.com/macropower/turner/pkg/ui/statusbar"
	"github.com/macropower/turner/pkg/ui/theme"
)

const statusMessageTimeout = 2 * time.Second

type statusMessageTimeoutMsg struct{}

// Model is the browser: a spinner while the source loads, then the visible
// blocks of the current page with the pagination strip and status bar
// underneath.
type Model struct {
	src       content.Source
	theme     *theme.Theme
	kb        *CommonKeyBinds
	pagerKeys *paginator.KeyBinds
	statusMsg string
	pager     paginator.Model[content.Block]
	spinner   spinner.Model
	gotoInput textinput.Model
	err       error
	width     int
	height    int
	loaded    bool
	showHelp  bool
}

// NewModel creates the browser model. The first page renders only after the
// initial [BlocksLoadedMsg] arrives.
func NewModel(cfg Config) Model {
	t := theme.New(cfg.Theme)

	kb := cfg.Common
	if kb == nil {
		kb = &CommonKeyBinds{}
	}
	kb.EnsureDefaults()

	pagerKeys := cfg.Paginator
	if pagerKeys == nil {
		pagerKeys = &paginator.KeyBinds{}
	}
	pagerKeys.EnsureDefaults()

	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = t.GenericTextStyle

	gotoInput := textinput.New()
	gotoInput.Prompt = "go to page: "
	gotoInput.PromptStyle = t.FilterStyle
	gotoInput.Cursor.Style = t.CursorStyle
	gotoInput.CharLimit = 6
	gotoInput.Width = 8

	return Model{
		src:   cfg.Source,
		theme: t,
		kb:    kb,
		pager: paginator.NewModel[content.Block](paginator.ModelConfig{
			Theme:    t,
			KeyBinds: pagerKeys,
			Options:  cfg.Options,
		}),
		pagerKeys: pagerKeys,
		spinner:   sp,
		gotoInput: gotoInput,
	}
}

// Paginator exposes the underlying pagination state machine.
func (m Model) Paginator() *paginator.Paginator[content.Block] {
	return m.pager.Paginator()
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadBlocks)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.pager.SetWidth(msg.Width)

	case BlocksLoadedMsg:
		m.loaded = true
		m.err = nil
		m.pager.Paginator().Refresh([]content.Block(msg))

		slog.Debug("loaded blocks",
			slog.Int("count", len(msg)),
			slog.Int("pages", m.pager.Paginator().TotalPages()),
		)

	case LoadErrMsg:
		m.loaded = true
		m.err = msg.Err

	case SourceChangedMsg:
		// Silent resync; the current page is preserved (clamped).
		cmds = append(cmds, m.loadBlocks)

	case paginator.ChangedMsg:
		slog.Debug("page changed",
			slog.Int("page", msg.CurrentPage),
			slog.Int("pages", msg.TotalPages),
			slog.Int("start", msg.StartIndex),
			slog.Int("end", msg.EndIndex),
		)

		cmds = append(cmds, m.setStatusMessage(fmt.Sprintf("page %d/%d", msg.CurrentPage, msg.TotalPages)))

	case statusMessageTimeoutMsg:
		m.statusMsg = ""

	case spinner.TickMsg:
		if !m.loaded {
			var cmd tea.Cmd

			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.gotoInput.Focused() {
		return m.handleGotoKey(msg)
	}

	switch {
	case m.kb.Quit.Match(key):
		return m, tea.Quit

	case m.kb.Suspend.Match(key):
		return m, tea.Suspend

	case m.kb.Help.Match(key):
		m.showHelp = !m.showHelp

	case m.kb.Escape.Match(key):
		m.showHelp = false

	case m.kb.Reload.Match(key):
		return m, m.loadBlocks

	case m.kb.Copy.Match(key):
		return m, m.copyPage()

	case m.kb.GoTo.Match(key):
		m.gotoInput.Reset()

		return m, m.gotoInput.Focus()

	default:
		var cmd tea.Cmd

		m.pager, cmd = m.pager.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m Model) handleGotoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.gotoInput.Blur()

		return m, nil

	case "enter":
		value := strings.TrimSpace(m.gotoInput.Value())
		m.gotoInput.Blur()

		n, err := strconv.Atoi(value)
		if err != nil {
			return m, nil
		}

		ch, ok := m.pager.Paginator().GoToPage(n)
		if !ok {
			return m, m.setStatusMessage(fmt.Sprintf("no page %s", value))
		}

		return m, paginator.Changed(ch)
	}

	var cmd tea.Cmd

	m.gotoInput, cmd = m.gotoInput.Update(msg)

	return m, cmd
}

// loadBlocks reads the source. It runs in the command queue, so a slow read
// never blocks the UI loop.
func (m Model) loadBlocks() tea.Msg {
	blocks, err := m.src.Blocks()
	if err != nil {
		return LoadErrMsg{Err: err}
	}

	return BlocksLoadedMsg(blocks)
}

func (m *Model) copyPage() tea.Cmd {
	blocks := m.pager.Paginator().VisibleItems()

	bodies := make([]string, 0, len(blocks))
	for _, b := range blocks {
		bodies = append(bodies, b.Body)
	}

	err := clipboard.WriteAll(strings.Join(bodies, "\n\n"))
	if err != nil {
		return m.setStatusMessage("copy failed")
	}

	return m.setStatusMessage(fmt.Sprintf("copied %d blocks", len(blocks)))
}

func (m *Model) setStatusMessage(msg string) tea.Cmd {
	m.statusMsg = msg

	return tea.Tick(statusMessageTimeout, func(time.Time) tea.Msg {
		return statusMessageTimeoutMsg{}
	})
}

func (m Model) View() string {
	if !m.loaded {
		return m.theme.GenericTextStyle.Render(
			fmt.Sprintf("%s loading %s…", m.spinner.View(), m.src),
		)
	}

	var b strings.Builder

	if m.err != nil {
		b.WriteString(m.theme.ErrorTitleStyle.Render(" Error "))
		b.WriteString("\n\n")
		b.WriteString(m.theme.GenericTextStyle.Render(m.err.Error()))
		b.WriteString("\n")
	} else {
		b.WriteString(m.blocksView())
	}

	if strip := m.pager.View(); strip != "" {
		b.WriteString("\n")
		b.WriteString(strip)
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString("\n")
		b.WriteString(m.helpView())
	}

	b.WriteString("\n")
	b.WriteString(m.footerView())

	return strings.TrimRight(b.String(), " ")
}

func (m Model) blocksView() string {
	blocks := m.pager.Paginator().VisibleItems()
	if len(blocks) == 0 {
		return m.theme.SubtleStyle.Render("(no content)") + "\n"
	}

	wrapWidth := m.width
	if wrapWidth <= 0 {
		wrapWidth = paginator.NarrowWidth
	}

	sections := make([]string, 0, len(blocks))
	for _, blk := range blocks {
		title := lipgloss.JoinHorizontal(lipgloss.Top,
			m.theme.SelectedStyle.Render(blk.Name),
			m.theme.SubtleStyle.Render(fmt.Sprintf("  %s", humanize.IBytes(uint64(blk.Size)))), //nolint:gosec // Size is non-negative.
		)

		body := m.theme.GenericTextStyle.Render(wordwrap.String(blk.Body, wrapWidth))

		sections = append(sections, title+"\n"+body+"\n")
	}

	return strings.Join(sections, "\n")
}

func (m Model) helpView() string {
	r := &keys.KeyBindRenderer{}
	r.AddColumn(m.pagerKeys.GetKeyBinds()...)
	r.AddColumn(m.kb.GetKeyBinds()...)

	return statusbar.NewHelpRenderer(m.theme, r).Render(m.width)
}

func (m Model) footerView() string {
	if m.gotoInput.Focused() {
		return m.gotoInput.View()
	}

	p := m.pager.Paginator()
	progress := fmt.Sprintf("%d/%d", p.CurrentPage(), p.TotalPages())

	var opts []statusbar.StatusBarOpt

	switch {
	case m.err != nil:
		opts = append(opts, statusbar.WithError(m.err.Error()))
	case m.statusMsg != "":
		opts = append(opts, statusbar.WithMessage(m.statusMsg))
	}

	return statusbar.
		NewStatusBarRenderer(m.theme, m.width, opts...).
		RenderWithNote(m.src.String(), progress)
}
