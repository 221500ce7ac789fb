package report

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Terminal styles for status lines. Lipgloss degrades colors based on
// terminal capabilities.
var (
	// StyleCyan is used for headers.
	StyleCyan = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleRed is used for errors and the usage banner.
	StyleRed = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleYellow is used for skipped targets.
	StyleYellow = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	// StyleGreen is used for created targets.
	StyleGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	// StyleMagenta is used for the experimental decorators notice.
	StyleMagenta = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	// StyleGray is used for descriptions and hints.
	StyleGray = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// ShouldUseColors determines if colors should be enabled.
func ShouldUseColors(force bool) bool {
	if force {
		return true
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}
