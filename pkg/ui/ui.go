// Package ui provides the main UI for the turner application: a paged
// browser over a content source.
package ui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/turner/pkg/content"
	"github.com/macropower/turner/pkg/paginator"
)

// Config configures the browser.
type Config struct {
	// Source provides the content blocks to page through.
	Source content.Source
	// Common and Paginator hold the key bindings. Nil values get defaults.
	Common    *CommonKeyBinds
	Paginator *paginator.KeyBinds
	// Theme is a chroma style name.
	Theme string
	// Options configure the underlying paginator.
	Options []paginator.Option
}

// NewProgram returns a new Tea program running the browser.
func NewProgram(cfg Config) *tea.Program {
	slog.Debug("starting turner ui")

	return tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
}

// BlocksLoadedMsg carries a freshly read snapshot of the content source.
type BlocksLoadedMsg []content.Block

// LoadErrMsg reports that reading the content source failed.
type LoadErrMsg struct {
	Err error
}

// SourceChangedMsg signals that the content source changed on disk and
// should be re-read. The file watcher delivers it via [tea.Program.Send].
type SourceChangedMsg struct{}
