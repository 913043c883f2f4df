package uitest

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

// SetupColorProfile sets the color profile to TrueColor for consistent test
// output. Call this at the start of tests that involve styled output.
func SetupColorProfile() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

// PlainText strips all ANSI sequences from output.
func PlainText(output string) string {
	return ansi.Strip(output)
}

// ContainsPlainText checks that the ANSI-stripped output contains expected.
func ContainsPlainText(t *testing.T, output, expected string) {
	t.Helper()

	assert.Contains(t, PlainText(output), expected, "plain text should contain %q", expected)
}
