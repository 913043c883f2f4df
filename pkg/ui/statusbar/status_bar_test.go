package statusbar_test

import (
	"testing"

	"github.com/muesli/reflow/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/turner/pkg/ui/statusbar"
	"github.com/macropower/turner/pkg/ui/theme"
)

func TestNewStatusBarRenderer(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		width    int
		expected int
	}{
		"positive width": {
			width:    80,
			expected: 80,
		},
		"zero width": {
			width:    0,
			expected: 30,
		},
		"negative width": {
			width:    -10,
			expected: 30,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			renderer := statusbar.NewStatusBarRenderer(theme.Default, tc.width)
			require.NotNil(t, renderer)

			statusBar := renderer.RenderWithNote("test", "1/1")
			assert.Equal(t, tc.expected, ansi.PrintableRuneWidth(statusBar))
		})
	}
}

func TestRenderWithNote(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		opts     []statusbar.StatusBarOpt
		title    string
		progress string
		contains []string
	}{
		"normal state": {
			title:    "blocks.txt",
			progress: "2/4",
			contains: []string{"turner", "blocks.txt", "2/4", "? Help"},
		},
		"message replaces the title": {
			opts:     []statusbar.StatusBarOpt{statusbar.WithMessage("copied page")},
			title:    "blocks.txt",
			progress: "2/4",
			contains: []string{"copied page"},
		},
		"error state": {
			opts:     []statusbar.StatusBarOpt{statusbar.WithError("read failed")},
			title:    "blocks.txt",
			progress: "2/4",
			contains: []string{"read failed", "! Error"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			renderer := statusbar.NewStatusBarRenderer(theme.Default, 100, tc.opts...)

			statusBar := renderer.RenderWithNote(tc.title, tc.progress)
			for _, s := range tc.contains {
				assert.Contains(t, statusBar, s)
			}

			assert.Equal(t, 100, ansi.PrintableRuneWidth(statusBar))
		})
	}
}

func TestRenderWithNoteTruncatesLongTitles(t *testing.T) {
	t.Parallel()

	long := "a-very-long-title-that-cannot-possibly-fit-in-a-narrow-status-bar"

	renderer := statusbar.NewStatusBarRenderer(theme.Default, 40)

	statusBar := renderer.RenderWithNote(long, "10/10")
	assert.Equal(t, 40, ansi.PrintableRuneWidth(statusBar))
	assert.NotContains(t, statusBar, long)
}
