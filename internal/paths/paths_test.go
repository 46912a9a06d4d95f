package paths

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppDataDir_ContainsAppName(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir := AppDataDir()
	require.NotEmpty(t, dir)
	require.Equal(t, "vane", filepath.Base(dir))
	require.DirExists(t, dir)
}

func TestConfigFilePath_Default(t *testing.T) {
	t.Setenv("VANE_CONFIG", "")

	path, err := ConfigFilePath()
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(path, ".vanerc"), "unexpected config path %s", path)
}

func TestConfigFilePath_EnvOverride(t *testing.T) {
	override := filepath.Join(t.TempDir(), "custom.rc")
	t.Setenv("VANE_CONFIG", override)

	path, err := ConfigFilePath()
	require.NoError(t, err)
	require.Equal(t, override, path)
}

func TestDBAndLogPathsLiveInAppDataDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.Equal(t, AppDataDir(), filepath.Dir(DBFilePath()))
	require.Equal(t, AppDataDir(), filepath.Dir(LogFilePath()))
	require.Equal(t, "vane.db", filepath.Base(DBFilePath()))
	require.Equal(t, "vane.log", filepath.Base(LogFilePath()))
}
