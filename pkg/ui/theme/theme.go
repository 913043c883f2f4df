// Package theme derives lipgloss styles from chroma color schemes, so the
// widget and the surrounding chrome follow any chroma style name the user
// configures.
package theme

import (
	"os"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const Ellipsis = "…"

var Default = New("github")

type Theme struct {
	CursorStyle               lipgloss.Style
	ErrorTitleStyle           lipgloss.Style
	FilterStyle               lipgloss.Style
	GenericTextStyle          lipgloss.Style
	HelpStyle                 lipgloss.Style
	LogoStyle                 lipgloss.Style
	PaginationStyle           lipgloss.Style
	SelectedStyle             lipgloss.Style
	SelectedSubtleStyle       lipgloss.Style
	StatusBarHelpStyle        lipgloss.Style
	StatusBarMessageHelpStyle lipgloss.Style
	StatusBarMessagePosStyle  lipgloss.Style
	StatusBarMessageStyle     lipgloss.Style
	StatusBarPosStyle         lipgloss.Style
	StatusBarStyle            lipgloss.Style
	SubtleStyle               lipgloss.Style

	Ellipsis string
}

// New builds a [Theme] from a chroma style name. Unknown names fall back to
// the chroma fallback style, so New always succeeds.
func New(theme string) *Theme {
	style := newChromaStyle(theme)

	var (
		genericStyle = lipgloss.NewStyle().
				Foreground(style.fromToken(chroma.Background))

		logoStyle = lipgloss.NewStyle().
				Foreground(style.fromTokenBg(chroma.Background)).
				Background(style.fromToken(chroma.NameTag)).
				Bold(true)

		selectedStyle = lipgloss.NewStyle().
				Foreground(style.fromToken(chroma.NameTag)).
				Bold(true)

		selectedSubtleStyle = lipgloss.NewStyle().
					Foreground(style.fromTokenWithFactor(chroma.NameTag, 0.3))

		subtleStyle = lipgloss.NewStyle().
				Foreground(style.fromToken(chroma.Comment))

		helpStyle = lipgloss.NewStyle().
				Foreground(style.fromTokenWithFactor(chroma.Background, 0.2)).
				Background(style.fromTokenBgWithFactor(chroma.Background, 0.2))

		statusBarStyle = lipgloss.NewStyle().
				Foreground(style.fromToken(chroma.Background)).
				Background(style.fromTokenBgWithFactor(chroma.Background, 0.1))

		statusBarPosStyle = lipgloss.NewStyle().
					Foreground(style.fromToken(chroma.Background)).
					Background(style.fromTokenBgWithFactor(chroma.Background, 0.15))

		statusBarMessageStyle = lipgloss.NewStyle().
					Foreground(style.fromTokenBg(chroma.Background)).
					Background(style.fromTokenWithFactor(chroma.NameTag, 0.15))

		statusBarMessagePosStyle = lipgloss.NewStyle().
						Foreground(style.fromTokenBg(chroma.Background)).
						Background(style.fromTokenWithFactor(chroma.NameTag, 0.1))

		statusBarMessageHelpStyle = lipgloss.NewStyle().
						Foreground(style.fromTokenBg(chroma.Background)).
						Background(style.fromToken(chroma.NameTag))

		errorTitleStyle = genericStyle.
				Background(style.fromToken(chroma.GenericDeleted))
	)

	return &Theme{
		CursorStyle:               selectedSubtleStyle,
		ErrorTitleStyle:           errorTitleStyle,
		FilterStyle:               selectedStyle,
		GenericTextStyle:          genericStyle,
		HelpStyle:                 helpStyle,
		LogoStyle:                 logoStyle,
		PaginationStyle:           subtleStyle,
		SelectedStyle:             selectedStyle,
		SelectedSubtleStyle:       selectedSubtleStyle,
		StatusBarHelpStyle:        helpStyle,
		StatusBarMessageHelpStyle: statusBarMessageHelpStyle,
		StatusBarMessagePosStyle:  statusBarMessagePosStyle,
		StatusBarMessageStyle:     statusBarMessageStyle,
		StatusBarPosStyle:         statusBarPosStyle,
		StatusBarStyle:            statusBarStyle,
		SubtleStyle:               subtleStyle,

		Ellipsis: Ellipsis,
	}
}

type chromaStyle struct {
	style *chroma.Style
}

func newChromaStyle(theme string) chromaStyle {
	s := styles.Get(getStyle(theme))
	if s == nil {
		s = styles.Fallback
	}

	return chromaStyle{style: s}
}

func (cs chromaStyle) fromToken(c chroma.TokenType) lipgloss.Color {
	s := cs.style.Get(c)

	return lipgloss.Color(s.Colour.String()) //nolint:misspell // Chroma naming.
}

func (cs chromaStyle) fromTokenBg(c chroma.TokenType) lipgloss.Color {
	s := cs.style.Get(c)

	return lipgloss.Color(s.Background.String())
}

func (cs chromaStyle) fromTokenWithFactor(c chroma.TokenType, factor float64) lipgloss.Color {
	s := cs.style.Get(c)
	sc := s.Colour.BrightenOrDarken(factor) //nolint:misspell // Chroma naming.

	return lipgloss.Color(sc.String())
}

func (cs chromaStyle) fromTokenBgWithFactor(c chroma.TokenType, factor float64) lipgloss.Color {
	s := cs.style.Get(c)
	sc := s.Background.BrightenOrDarken(factor)

	return lipgloss.Color(sc.String())
}

func getStyle(style string) string {
	switch style {
	case "dark":
		return "github-dark"
	case "light":
		return "github"
	case "auto", "":
		return getDefaultStyle()
	default:
		return style
	}
}

func getDefaultStyle() string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return "" // Fallback.
	}
	if termenv.HasDarkBackground() {
		return "github-dark"
	}

	return "github"
}
