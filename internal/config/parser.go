package config

import (
	"fmt"
	"strings"
)

// Parse reads key=value lines. Blank lines and lines starting with # are
// skipped; a " #" sequence starts an inline comment. Values wrapped in
// double quotes are unquoted. Later keys override earlier ones.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string, len(lines))

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			return nil, fmt.Errorf("config: line %d: expected key=value", i+1)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}

		cfg[key] = parseValue(value)
	}

	return cfg, nil
}

func parseValue(raw string) string {
	value := strings.TrimSpace(raw)

	if len(value) >= 2 && value[0] == '"' {
		if end := strings.IndexByte(value[1:], '"'); end >= 0 {
			return value[1 : end+1]
		}
	}

	for _, sep := range []string{" #", "\t#"} {
		if idx := strings.Index(value, sep); idx >= 0 {
			value = strings.TrimSpace(value[:idx])
		}
	}

	return value
}
