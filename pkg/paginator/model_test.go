package paginator_test

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/turner/pkg/paginator"
)

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func newTestModel(t *testing.T, n int) paginator.Model[int] {
	t.Helper()

	m := paginator.NewModel[int](paginator.ModelConfig{})
	m.Paginator().Refresh(items(n))

	return m
}

func TestModelNavigationKeys(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		key          string
		expectedPage int
		expectNotify bool
	}{
		"right advances": {
			key:          "right",
			expectedPage: 2,
			expectNotify: true,
		},
		"l advances": {
			key:          "l",
			expectedPage: 2,
			expectNotify: true,
		},
		"left on first page is dropped": {
			key:          "left",
			expectedPage: 1,
		},
		"digit jumps": {
			key:          "3",
			expectedPage: 3,
			expectNotify: true,
		},
		"digit out of range is dropped": {
			key:          "9",
			expectedPage: 1,
		},
		"end jumps to last page": {
			key:          "end",
			expectedPage: 4,
			expectNotify: true,
		},
		"unbound key is ignored": {
			key:          "x",
			expectedPage: 1,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			m := newTestModel(t, 10) // 4 pages.

			var msg tea.KeyMsg
			if tc.key == "end" {
				msg = tea.KeyMsg{Type: tea.KeyEnd}
			} else {
				msg = keyMsg(tc.key)
			}

			m, cmd := m.Update(msg)
			assert.Equal(t, tc.expectedPage, m.Paginator().CurrentPage())

			if !tc.expectNotify {
				assert.Nil(t, cmd, "silent transitions must not notify")

				return
			}

			require.NotNil(t, cmd)

			changed, ok := cmd().(paginator.ChangedMsg)
			require.True(t, ok)
			assert.Equal(t, tc.expectedPage, changed.CurrentPage)
			assert.Equal(t, 4, changed.TotalPages)
			assert.Equal(t, 3, changed.ItemsPerPage)
		})
	}
}

func TestModelWindowSize(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, 10)

	m, cmd := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Nil(t, cmd, "resize never notifies")
	assert.Equal(t, paginator.NarrowDisplayCount, m.Paginator().DisplayCount())

	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, paginator.WideDisplayCount, m.Paginator().DisplayCount())
}

func TestDisplayCountForWidth(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		width    int
		expected int
	}{
		"narrow":        {width: 79, expected: 3},
		"breakpoint":    {width: 80, expected: 5},
		"wide":          {width: 160, expected: 5},
		"unknown width": {width: 0, expected: 5},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, paginator.DisplayCountForWidth(tc.width))
		})
	}
}

func TestModelView(t *testing.T) {
	t.Parallel()

	t.Run("hidden for a single page", func(t *testing.T) {
		t.Parallel()

		m := newTestModel(t, 2) // 1 page.
		assert.Empty(t, m.View())
	})

	t.Run("shows labels and windowed pages", func(t *testing.T) {
		t.Parallel()

		m := paginator.NewModel[int](paginator.ModelConfig{
			Options: []paginator.Option{paginator.WithItemsPerPage(1)},
		})
		m.Paginator().Refresh(items(10))
		m.Paginator().SetDisplayCount(paginator.NarrowDisplayCount)
		_, _ = m.Paginator().GoToPage(5)

		view := ansi.Strip(m.View())

		assert.Contains(t, view, "Prev")
		assert.Contains(t, view, "Next")
		assert.Contains(t, view, "…", "hidden runs collapse to an ellipsis")

		for _, page := range []string{"1", "4", "5", "6", "10"} {
			assert.Contains(t, view, page)
		}

		assert.NotContains(t, view, "7", "pages outside the window are not rendered")
	})

	t.Run("custom labels", func(t *testing.T) {
		t.Parallel()

		m := paginator.NewModel[int](paginator.ModelConfig{
			Options: []paginator.Option{
				paginator.WithPrevLabel("Back"),
				paginator.WithNextLabel("More"),
			},
		})
		m.Paginator().Refresh(items(10))

		view := ansi.Strip(m.View())
		assert.Contains(t, view, "Back")
		assert.Contains(t, view, "More")
	})

	t.Run("degrades to compact form when too wide", func(t *testing.T) {
		t.Parallel()

		m := paginator.NewModel[int](paginator.ModelConfig{
			Options: []paginator.Option{paginator.WithItemsPerPage(1)},
		})
		m.Paginator().Refresh(items(10))
		_, _ = m.Paginator().GoToPage(5)
		m.SetWidth(10)

		view := ansi.Strip(m.View())
		assert.Contains(t, view, "5/10")
		assert.NotContains(t, view, "Prev")
	})
}
