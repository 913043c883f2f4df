// Package statusbar renders the bottom chrome of the browser: the status
// bar itself and the expandable help view.
package statusbar

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/macropower/turner/pkg/ui/theme"
	"github.com/macropower/turner/pkg/version"
)

const (
	helpText  = " ? Help "
	errorText = " ! Error "

	minWidth = 30
)

type Style int

const (
	StyleNormal Style = iota
	StyleSuccess
	StyleError
)

// StatusBarRenderer renders the single-line status bar.
type StatusBarRenderer struct {
	theme   *theme.Theme
	message string
	width   int
	style   Style
}

// NewStatusBarRenderer creates a [StatusBarRenderer] for the given width.
func NewStatusBarRenderer(t *theme.Theme, width int, opts ...StatusBarOpt) *StatusBarRenderer {
	if width < minWidth {
		width = minWidth
	}

	sb := &StatusBarRenderer{theme: t, width: width, style: StyleNormal}
	for _, opt := range opts {
		opt(sb)
	}

	return sb
}

type StatusBarOpt func(*StatusBarRenderer)

// WithMessage renders the bar in the success style with the given message.
func WithMessage(message string) StatusBarOpt {
	return func(r *StatusBarRenderer) {
		r.style = StyleSuccess
		r.message = message
	}
}

// WithError renders the bar in the error style with the given message.
func WithError(message string) StatusBarOpt {
	return func(r *StatusBarRenderer) {
		r.style = StyleError
		r.message = message
	}
}

// RenderWithNote renders the bar with a title on the left and a progress
// indicator (e.g. "2/4") on the right.
func (r *StatusBarRenderer) RenderWithNote(msg, progress string) string {
	logo := r.logoView()
	helpNote := r.renderHelpNote()
	progressNote := r.renderProgressNote(progress)
	note := r.renderNote(msg, progressNote)
	emptySpace := r.renderEmptySpace(logo, note, progressNote, helpNote)

	return fmt.Sprintf("%s%s%s%s%s", logo, note, emptySpace, progressNote, helpNote)
}

func (r *StatusBarRenderer) getMessage(msg string) string {
	if r.message != "" {
		return r.message
	}

	return msg
}

func (r *StatusBarRenderer) renderProgressNote(note string) string {
	note = " " + note + " "

	switch r.style {
	case StyleError:
		return r.theme.ErrorTitleStyle.Render(note)
	case StyleSuccess:
		return r.theme.StatusBarMessagePosStyle.Render(note)
	default:
		return r.theme.StatusBarPosStyle.Render(note)
	}
}

func (r *StatusBarRenderer) renderHelpNote() string {
	switch r.style {
	case StyleError:
		return r.theme.ErrorTitleStyle.Render(errorText)
	case StyleSuccess:
		return r.theme.StatusBarMessageHelpStyle.Render(helpText)
	default:
		return r.theme.StatusBarHelpStyle.Render(helpText)
	}
}

func (r *StatusBarRenderer) renderNote(msg, progress string) string {
	note := r.getMessage(msg)
	note = strings.ReplaceAll(note, "\n", " ")
	note = strings.TrimSpace(note)

	logo := r.logoView()
	helpNote := r.renderHelpNote()

	availableWidth := max(0, r.width-
		ansi.PrintableRuneWidth(logo)-
		ansi.PrintableRuneWidth(progress)-
		ansi.PrintableRuneWidth(helpNote))

	note = truncate.StringWithTail(" "+note+" ", uint(availableWidth), theme.Ellipsis) //nolint:gosec // Uses max.

	switch r.style {
	case StyleError:
		return r.theme.ErrorTitleStyle.Render(note)
	case StyleSuccess:
		return r.theme.StatusBarMessageStyle.Render(note)
	default:
		return r.theme.StatusBarStyle.Render(note)
	}
}

func (r *StatusBarRenderer) renderEmptySpace(components ...string) string {
	padding := r.width
	for _, comp := range components {
		padding -= ansi.PrintableRuneWidth(comp)
	}
	padding = max(0, padding)

	emptySpace := strings.Repeat(" ", padding)

	switch r.style {
	case StyleError:
		return r.theme.ErrorTitleStyle.Render(emptySpace)
	case StyleSuccess:
		return r.theme.StatusBarMessageStyle.Render(emptySpace)
	default:
		return r.theme.StatusBarStyle.Render(emptySpace)
	}
}

func (r *StatusBarRenderer) logoView() string {
	return r.theme.LogoStyle.Render(fmt.Sprintf(" turner %s ", version.GetVersion()))
}
