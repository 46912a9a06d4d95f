package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupConfig points the config file at a fresh temporary directory.
func setupConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".vanerc")
	t.Setenv("VANE_CONFIG", configPath)
	t.Setenv("XDG_CONFIG_HOME", dir)
	return configPath
}

func TestReadLines(t *testing.T) {
	tests := []struct {
		name         string
		setupContent string
		wantLines    []string
	}{
		{
			name:         "single line",
			setupContent: "theme=mono\n",
			wantLines:    []string{"theme=mono"},
		},
		{
			name:         "lines with comments",
			setupContent: "# Comment\ntheme=mono\n",
			wantLines:    []string{"# Comment", "theme=mono"},
		},
		{
			name:         "Windows CRLF line endings",
			setupContent: "theme=mono\r\nlog_level=debug\r\n",
			wantLines:    []string{"theme=mono", "log_level=debug"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := setupConfig(t)
			require.NoError(t, os.WriteFile(configPath, []byte(tt.setupContent), 0644))

			got, err := ReadLines()
			require.NoError(t, err)
			require.Equal(t, tt.wantLines, got)

			info, err := os.Stat(configPath)
			require.NoError(t, err)
			require.Equal(t, os.FileMode(0600), info.Mode().Perm())
		})
	}
}

func TestReadLines_InitializesDefaults(t *testing.T) {
	configPath := setupConfig(t)

	lines, err := ReadLines()
	require.NoError(t, err)
	require.Equal(t, "# Vane configuration", lines[0])
	require.Contains(t, lines, "# Commands")
	require.Contains(t, lines, "diagnostic_policy=deepest")
	require.Contains(t, lines, "# color_error=")

	cfg, err := Parse(lines)
	require.NoError(t, err)
	require.Equal(t, "deepest", cfg["diagnostic_policy"])
	require.NotContains(t, cfg, "color_error")

	_, err = os.Stat(configPath)
	require.NoError(t, err)
}

func TestWriteLines(t *testing.T) {
	configPath := setupConfig(t)

	require.NoError(t, WriteLines([]string{"theme=mono", "log_level=debug"}))
	require.NoError(t, WriteLines([]string{"theme=ocean"}))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	require.Equal(t, "theme=ocean\n", string(content))

	info, err := os.Stat(configPath)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(configPath), ".vanerc.tmp.*"))
	require.NoError(t, err)
	require.Empty(t, leftovers)
}

func TestSet(t *testing.T) {
	tests := []struct {
		name         string
		initialLines []string
		key          string
		value        string
		wantLines    []string
		wantUpdated  bool
	}{
		{
			name:         "add to empty",
			initialLines: []string{},
			key:          "theme",
			value:        "mono",
			wantLines:    []string{"theme=mono"},
		},
		{
			name:         "update existing key",
			initialLines: []string{"theme=default", "log_level=info"},
			key:          "theme",
			value:        "ocean",
			wantLines:    []string{"theme=ocean", "log_level=info"},
			wantUpdated:  true,
		},
		{
			name:         "keeps inline comment",
			initialLines: []string{"log_level=info # noisy"},
			key:          "log_level",
			value:        "warn",
			wantLines:    []string{"log_level=warn # noisy"},
			wantUpdated:  true,
		},
		{
			name:         "skips commented entries",
			initialLines: []string{"# theme=mono"},
			key:          "theme",
			value:        "ocean",
			wantLines:    []string{"# theme=mono", "theme=ocean"},
		},
		{
			name:         "quotes values with spaces",
			initialLines: []string{},
			key:          "db_path",
			value:        "/tmp/my vane.db",
			wantLines:    []string{`db_path="/tmp/my vane.db"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, updated := Set(tt.initialLines, tt.key, tt.value)
			require.Equal(t, tt.wantLines, got)
			require.Equal(t, tt.wantUpdated, updated)
		})
	}
}

func TestUnset(t *testing.T) {
	got, removed := Unset([]string{"# Comment", "", "  theme  =  mono  ", "log_level=info"}, "theme")
	require.True(t, removed)
	require.Equal(t, []string{"# Comment", "", "log_level=info"}, got)

	got, removed = Unset([]string{"theme=mono"}, "log_level")
	require.False(t, removed)
	require.Equal(t, []string{"theme=mono"}, got)
}

func TestSetParseRoundTrip_QuotedValue(t *testing.T) {
	lines, _ := Set(nil, "db_path", "/tmp/a #b.db")
	cfg, err := Parse(lines)
	require.NoError(t, err)
	require.Equal(t, "/tmp/a #b.db", cfg["db_path"])
}

func TestWithLock(t *testing.T) {
	configPath := setupConfig(t)
	lockPath := filepath.Join(filepath.Dir(configPath), lockFileName)

	ran := false
	err := WithLock(func() error {
		ran = true
		_, err := os.Stat(lockPath)
		return err
	})
	require.NoError(t, err)
	require.True(t, ran)

	_, err = os.Stat(lockPath)
	require.True(t, os.IsNotExist(err), "lock file must be released")
}
