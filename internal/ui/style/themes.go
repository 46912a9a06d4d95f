package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds all configurable colors for the UI.
// Values can be ANSI color numbers (0-255) or "bold" for bold styling.
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
	Token   string // offending token in a diagnostic
	Usage   string // usage lines
	Prompt  string
}

// BaseThemeNames lists available theme bases (auto-detects dark/light).
var BaseThemeNames = []string{
	"default",
	"mono",
	"ocean",
}

// ThemeNames lists all themes with explicit dark/light variants.
var ThemeNames = []string{
	"default-dark", "default-light",
	"mono-dark", "mono-light",
	"ocean-dark", "ocean-light",
}

// Themes contains the built-in color themes.
// Dark themes use bright colors, light themes use dark ones.
var Themes = map[string]ColorConfig{
	"default-dark": {
		Success: "10",  // bright green
		Warning: "11",  // bright yellow
		Error:   "9",   // bright red
		Info:    "14",  // bright cyan
		Muted:   "245", // medium gray
		Header:  "bold",
		Token:   "11",
		Usage:   "12", // bright blue
		Prompt:  "10",
	},
	"default-light": {
		Success: "28",  // dark green
		Warning: "130", // dark orange
		Error:   "124", // dark red
		Info:    "27",  // dark blue
		Muted:   "243",
		Header:  "bold",
		Token:   "130",
		Usage:   "25",
		Prompt:  "28",
	},

	// Mono uses weight and gray levels only.
	"mono-dark": {
		Success: "255",
		Warning: "250",
		Error:   "bold",
		Info:    "252",
		Muted:   "242",
		Header:  "bold",
		Token:   "255",
		Usage:   "248",
		Prompt:  "255",
	},
	"mono-light": {
		Success: "232",
		Warning: "238",
		Error:   "bold",
		Info:    "236",
		Muted:   "246",
		Header:  "bold",
		Token:   "232",
		Usage:   "240",
		Prompt:  "232",
	},

	"ocean-dark": {
		Success: "79",  // aquamarine
		Warning: "222", // sand
		Error:   "210", // coral
		Info:    "117", // sky
		Muted:   "244",
		Header:  "bold",
		Token:   "222",
		Usage:   "74",
		Prompt:  "79",
	},
	"ocean-light": {
		Success: "30",  // teal
		Warning: "136", // ochre
		Error:   "160", // coral red
		Info:    "25",  // navy
		Muted:   "245",
		Header:  "bold",
		Token:   "136",
		Usage:   "31",
		Prompt:  "30",
	},
}

// colorConfigKeys maps config key names to ColorConfig field names.
var colorConfigKeys = map[string]string{
	"color_success": "Success",
	"color_warning": "Warning",
	"color_error":   "Error",
	"color_info":    "Info",
	"color_muted":   "Muted",
	"color_header":  "Header",
	"color_token":   "Token",
	"color_usage":   "Usage",
	"color_prompt":  "Prompt",
}

// IsDarkBackground returns true if the terminal has a dark background.
// Uses termenv to query the terminal. Returns true if detection fails.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName takes a theme name and returns the full theme name.
// If the name doesn't have a -dark/-light suffix, it appends one based
// on terminal background detection.
func ResolveThemeName(name string) string {
	// If already has suffix, return as-is
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}

	// Auto-detect and append suffix
	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig builds a ColorConfig from the given configuration map.
// Resolution priority:
// 1. Environment variable (VANE_COLOR_*)
// 2. Config file value
// 3. Theme value (from the theme key)
// 4. Default theme (auto-detected based on terminal background)
func LoadColorConfig(cfg map[string]string) ColorConfig {
	base := "default"
	if envTheme := os.Getenv("VANE_COLOR_THEME"); envTheme != "" {
		base = envTheme
	} else if cfgTheme, ok := cfg["theme"]; ok && cfgTheme != "" {
		base = cfgTheme
	}
	themeName := ResolveThemeName(base)

	// Get base theme (fall back to default-dark if unknown)
	theme, ok := Themes[themeName]
	if !ok {
		theme = Themes["default-dark"]
	}

	// Apply overrides from config and env
	result := theme

	for configKey, fieldName := range colorConfigKeys {
		// Check env first (highest priority)
		envKey := "VANE_" + strings.ToUpper(configKey)
		if envVal := os.Getenv(envKey); envVal != "" {
			setColorField(&result, fieldName, envVal)
			continue
		}

		// Check config file
		if cfgVal, ok := cfg[configKey]; ok && cfgVal != "" {
			setColorField(&result, fieldName, cfgVal)
		}
	}

	return result
}

// setColorField sets a field on ColorConfig by name.
func setColorField(c *ColorConfig, field, value string) {
	switch field {
	case "Success":
		c.Success = value
	case "Warning":
		c.Warning = value
	case "Error":
		c.Error = value
	case "Info":
		c.Info = value
	case "Muted":
		c.Muted = value
	case "Header":
		c.Header = value
	case "Token":
		c.Token = value
	case "Usage":
		c.Usage = value
	case "Prompt":
		c.Prompt = value
	}
}

// Preview renders colored samples of a theme regardless of whether
// styling is enabled.
func Preview(cfg ColorConfig) string {
	colorize := func(text, color string) string {
		return makeStyle(color).Render(text)
	}

	return colorize("success ", cfg.Success) +
		colorize("warning ", cfg.Warning) +
		colorize("error ", cfg.Error) +
		colorize("info ", cfg.Info) +
		colorize("muted", cfg.Muted) +
		"   " +
		colorize("give ", cfg.Usage) +
		colorize("<item>", cfg.Token)
}
