package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/vane-tools/vanectl/internal/domain"
	"github.com/vane-tools/vanectl/internal/log"
	"github.com/vane-tools/vanectl/internal/paths"
)

// ReadLines returns the raw lines of the config file, creating it with the
// visible defaults when it does not exist or is empty.
func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(configPath)
	isNew := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	if err := os.Chmod(configPath, 0600); err != nil {
		log.Warn("config: could not set permissions on config file: %v", err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if isNew && len(lines) == 0 {
		lines = initializeDefaults()
		if err := WriteLines(lines); err != nil {
			log.Warn("config: could not write default config: %v", err)
		}
	}

	return lines, nil
}

// initializeDefaults renders the visible keys with their defaults, grouped
// by section.
func initializeDefaults() []string {
	lines := []string{
		"# Vane configuration",
		"# Edit values below or run: config set <key> <value>",
	}

	bySection := domain.ConfigKeysBySection()
	for _, section := range domain.ConfigSections() {
		keys := bySection[section]
		if len(keys) == 0 {
			continue
		}

		lines = append(lines, "", "# "+section)
		for _, key := range keys {
			if key.HideIfEmpty {
				lines = append(lines, "# "+key.Name+"=")
				continue
			}

			value := key.Default
			if fn, ok := Defaults[key.Name]; ok {
				value = fn()
			}
			if strings.ContainsAny(value, " #") {
				value = `"` + value + `"`
			}
			lines = append(lines, key.Name+"="+value)
		}
	}

	return lines
}
