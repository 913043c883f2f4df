package paginator_test

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/turner/pkg/paginator"
	"github.com/macropower/turner/pkg/uitest"
)

func TestWidgetNavigation(t *testing.T) {
	t.Parallel()
	uitest.SetupColorProfile()

	m := paginator.NewModel[int](paginator.ModelConfig{})
	m.Paginator().Refresh(items(12))

	tm := uitest.NewTestModel(t, m, uitest.Compact)

	tm.Send(tea.WindowSizeMsg{
		Width:  uitest.CompactWidth,
		Height: uitest.CompactHeight,
	})

	uitest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("Next"))
	})

	// Jump to the last page; Next becomes a dead control.
	tm.Type("4")

	output := uitest.WaitForCapture(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("4"))
	})
	uitest.ContainsPlainText(t, output, "Prev")

	tm.Send(tea.QuitMsg{})

	final := uitest.GetFinalOutput(t, tm, time.Second)
	uitest.ContainsPlainText(t, final, "4")
}
