package config

import "strings"

// Set replaces the value of key in lines, keeping any inline comment, or
// appends a new entry. It reports whether key was already present.
func Set(lines []string, key, value string) ([]string, bool) {
	rendered := quote(value)

	for i, line := range lines {
		k, rest, ok := entry(line)
		if !ok || k != key {
			continue
		}

		if idx := strings.Index(rest, " #"); idx >= 0 {
			lines[i] = key + "=" + rendered + " " + strings.TrimSpace(rest[idx:])
		} else {
			lines[i] = key + "=" + rendered
		}
		return lines, true
	}

	return append(lines, key+"="+rendered), false
}

// Unset drops every entry for key and reports whether one was removed.
func Unset(lines []string, key string) ([]string, bool) {
	out := make([]string, 0, len(lines))
	removed := false

	for _, line := range lines {
		if k, _, ok := entry(line); ok && k == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}

// entry splits a key=value line; comments and blank lines are not entries.
func entry(line string) (key, rest string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}
	key, rest, ok = strings.Cut(trimmed, "=")
	return strings.TrimSpace(key), rest, ok
}

func quote(value string) string {
	if strings.ContainsAny(value, " #") && !strings.HasPrefix(value, `"`) {
		return `"` + value + `"`
	}
	return value
}
