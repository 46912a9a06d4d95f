package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // Section for grouping in config listings (Commands, Display, ...)
	Hidden      bool   // Hidden keys are not shown in help or config list
	HideIfEmpty bool   // Only show in config list if explicitly set
}

// ConfigKeys defines all available configuration keys.
// This is the single source of truth for configuration.
// Order determines display order in `config list`.
var ConfigKeys = []ConfigKey{
	// Commands
	{
		Name:        "diagnostic_policy",
		Default:     "deepest",
		Description: "Which failed alternative to report: deepest, first",
		Section:     "Commands",
	},
	{
		Name:        "hide_commands",
		Default:     "false",
		Description: "Report commands without permission as unknown (true/false)",
		Section:     "Commands",
	},
	{
		Name:        "show_usage",
		Default:     "true",
		Description: "List usage lines after a rejected command (true/false)",
		Section:     "Commands",
	},
	{
		Name:        "history_limit",
		Default:     "20",
		Description: "Default number of entries shown by history",
		Section:     "Commands",
	},
	// Display
	{
		Name:        "theme",
		Default:     "default",
		Description: "Color theme: default, mono, ocean",
		Section:     "Display",
	},
	{
		Name:        "display_date",
		Default:     "yyyy-mm-dd",
		Description: "Date format: yyyy-mm-dd, dd/mm/yyyy, mm/dd/yyyy or a Go layout",
		Section:     "Display",
	},
	{
		Name:        "display_time",
		Default:     "24h",
		Description: "Time format: 12h, 24h",
		Section:     "Display",
	},
	// Logging
	{
		Name:        "enable_log",
		Default:     "true",
		Description: "Enable logging to file (true/false)",
		Section:     "Logging",
	},
	{
		Name:        "log_level",
		Default:     "info",
		Description: "Minimum log level: debug, info, warn, error",
		Section:     "Logging",
	},
	// Storage
	{
		Name:        "db_path",
		Default:     "", // Set dynamically to paths.DBFilePath()
		Description: "Path to the actor and history database",
		Section:     "Storage",
	},
	// Color Overrides - override specific colors from the current theme (ANSI 0-255)
	{
		Name:        "color_error",
		Description: "Override error color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_info",
		Description: "Override info color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_muted",
		Description: "Override muted text color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_token",
		Description: "Override the highlighted token color in diagnostics (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_usage",
		Description: "Override usage line color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
}

// configKeyMap is a lookup map for configuration keys.
var configKeyMap map[string]ConfigKey

func init() {
	configKeyMap = make(map[string]ConfigKey, len(ConfigKeys))
	for _, key := range ConfigKeys {
		configKeyMap[key.Name] = key
	}
}

// GetConfigKey returns the ConfigKey for a given name.
func GetConfigKey(name string) (ConfigKey, bool) {
	key, ok := configKeyMap[name]
	return key, ok
}

// IsValidConfigKey checks if a key name is valid.
func IsValidConfigKey(name string) bool {
	_, ok := configKeyMap[name]
	return ok
}

// GetDefaultValue returns the default value for a config key.
func GetDefaultValue(name string) (string, bool) {
	if key, ok := configKeyMap[name]; ok {
		return key.Default, true
	}
	return "", false
}

// VisibleConfigKeys returns all non-hidden configuration keys.
func VisibleConfigKeys() []ConfigKey {
	var visible []ConfigKey
	for _, key := range ConfigKeys {
		if !key.Hidden {
			visible = append(visible, key)
		}
	}
	return visible
}

// ConfigSections returns the ordered list of section names.
func ConfigSections() []string {
	return []string{"Commands", "Display", "Logging", "Storage", "Color Overrides"}
}

// ConfigKeysBySection returns visible config keys grouped by section.
func ConfigKeysBySection() map[string][]ConfigKey {
	result := make(map[string][]ConfigKey)
	for _, key := range ConfigKeys {
		if !key.Hidden {
			result[key.Section] = append(result[key.Section], key)
		}
	}
	return result
}
