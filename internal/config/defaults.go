package config

import (
	"strconv"
	"strings"

	"github.com/vane-tools/vanectl/internal/domain"
	"github.com/vane-tools/vanectl/internal/paths"
)

// Defaults holds the in-code default for every declared key. Values are
// functions so that path defaults are resolved at read time.
var Defaults = map[string]func() string{}

func init() {
	for _, key := range domain.ConfigKeys {
		value := key.Default
		Defaults[key.Name] = func() string { return value }
	}
	Defaults["db_path"] = paths.DBFilePath
}

// Get returns the value for a config key.
// It checks the config file first, then falls back to the default.
// Returns the value and whether it was found (in file or defaults).
func Get(key string) (string, bool) {
	if cfg, err := load(); err == nil {
		if value, exists := cfg[key]; exists {
			return value, true
		}
	}

	if defaultFn, ok := Defaults[key]; ok {
		return defaultFn(), true
	}

	return "", false
}

// GetAll returns all config values (user overrides merged with defaults).
func GetAll() (map[string]string, error) {
	result := make(map[string]string, len(Defaults))
	for key, valueFn := range Defaults {
		result[key] = valueFn()
	}

	cfg, err := load()
	if err != nil {
		return result, nil
	}
	for key, value := range cfg {
		result[key] = value
	}

	return result, nil
}

// GetBool reads key as a boolean, falling back to fallback when the value
// is missing or malformed.
func GetBool(key string, fallback bool) bool {
	value, ok := Get(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return b
}

// GetInt reads key as an integer, falling back to fallback when the value
// is missing or malformed.
func GetInt(key string, fallback int) int {
	value, ok := Get(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func load() (map[string]string, error) {
	lines, err := ReadLines()
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}
