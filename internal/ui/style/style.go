// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss is imported. All styling
// is semantic (Success, Error, Token, Usage) rather than visual (RedBold).
//
// When disabled, all helpers return the input string unchanged with no ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool
	colors  ColorConfig

	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
	tokenStyle   lipgloss.Style
	usageStyle   lipgloss.Style
	promptStyle  lipgloss.Style
)

// Init initializes the style package with the given enabled state and config.
// NO_COLOR and VANE_NO_COLOR disable styling regardless of enable.
//
// cfg supplies the theme and color overrides; nil means the default theme.
// Call it once from main before any output.
func Init(enable bool, cfg map[string]string) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("VANE_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable

	if enabled {
		colors = LoadColorConfig(cfg)
		initStyles(colors)
	}
}

func initStyles(colors ColorConfig) {
	// ANSI256 regardless of TTY detection; the console renders through
	// bubbletea, which does not expose a terminal to lipgloss.
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = makeStyle(colors.Success)
	warningStyle = makeStyle(colors.Warning)
	errorStyle = makeStyle(colors.Error)
	infoStyle = makeStyle(colors.Info)
	mutedStyle = makeStyle(colors.Muted)
	headerStyle = makeStyle(colors.Header)
	tokenStyle = makeStyle(colors.Token).Underline(true)
	usageStyle = makeStyle(colors.Usage)
	promptStyle = makeStyle(colors.Prompt).Bold(true)
}

// makeStyle accepts "bold" or an ANSI color number (0-255).
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

func render(s lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

// Success styles text for handled commands.
func Success(text string) string { return render(successStyle, text) }

// Warning styles text for declined commands.
func Warning(text string) string { return render(warningStyle, text) }

// Error styles diagnostics.
func Error(text string) string { return render(errorStyle, text) }

// Info styles informational output.
func Info(text string) string { return render(infoStyle, text) }

// Header styles section titles.
func Header(text string) string { return render(headerStyle, text) }

// Muted styles secondary information such as timestamps.
func Muted(text string) string { return render(mutedStyle, text) }

// Token highlights the offending token of a diagnostic.
func Token(text string) string { return render(tokenStyle, text) }

// Usage styles grammar usage lines.
func Usage(text string) string { return render(usageStyle, text) }

// Prompt styles the console prompt.
func Prompt(text string) string { return render(promptStyle, text) }
