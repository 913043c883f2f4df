package theme_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/turner/pkg/ui/theme"
)

func TestNew(t *testing.T) {
	t.Parallel()

	lipgloss.SetColorProfile(termenv.TrueColor)

	tcs := map[string]struct {
		name string
	}{
		"known chroma style":   {name: "github"},
		"dark alias":           {name: "dark"},
		"light alias":          {name: "light"},
		"unknown falls back":   {name: "definitely-not-a-style"},
		"empty name uses auto": {name: ""},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			th := theme.New(tc.name)
			require.NotNil(t, th)

			assert.Equal(t, theme.Ellipsis, th.Ellipsis)
			assert.True(t, th.SelectedStyle.GetBold(), "selected style is bold")
		})
	}
}

func TestThemesDiffer(t *testing.T) {
	t.Parallel()

	lipgloss.SetColorProfile(termenv.TrueColor)

	github := theme.New("github")
	dracula := theme.New("dracula")

	assert.NotEqual(t,
		github.GenericTextStyle.GetForeground(),
		dracula.GenericTextStyle.GetForeground(),
	)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	require.NotNil(t, theme.Default)
	assert.NotNil(t, theme.Default.PaginationStyle)
}
