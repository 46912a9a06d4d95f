package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vane-tools/vanectl/internal/command"
	"github.com/vane-tools/vanectl/internal/config"
	"github.com/vane-tools/vanectl/internal/domain"
	"github.com/vane-tools/vanectl/internal/testutil"
)

func setupConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("VANE_CONFIG", filepath.Join(dir, "vanerc"))
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
}

func TestDefaultOptions(t *testing.T) {
	setupConfig(t)

	opts := DefaultOptions()

	require.True(t, opts.StyleEnabled)
	require.True(t, opts.LogEnabled)
	require.True(t, opts.ShowUsage)
	require.False(t, opts.HideCommands)
	require.Equal(t, command.PolicyDeepest, opts.Policy)
	require.NotEmpty(t, opts.DBPath)
}

func TestDefaultOptions_ReadsConfig(t *testing.T) {
	setupConfig(t)
	p := config.NewProvider()
	require.NoError(t, p.Set("diagnostic_policy", "first"))
	require.NoError(t, p.Set("hide_commands", "true"))
	require.NoError(t, p.Set("enable_log", "false"))

	opts := DefaultOptions()

	require.Equal(t, command.PolicyFirst, opts.Policy)
	require.True(t, opts.HideCommands)
	require.False(t, opts.LogEnabled)
}

func TestNew_WiresEverything(t *testing.T) {
	setupConfig(t)
	dir := t.TempDir()

	a, err := New(Options{
		DBPath:     filepath.Join(dir, "vane.db"),
		LogEnabled: true,
		LogPath:    filepath.Join(dir, "vane.log"),
		ShowUsage:  true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	res := a.Dispatcher.DispatchLine(domain.Console{}, "version")
	require.Equal(t, domain.OutcomeHandled, res.Outcome)
	require.Equal(t, "vanectl version dev\n", a.Output.Drain())

	history, err := a.Store.History(0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.FileExists(t, filepath.Join(dir, "vane.log"))
}

func TestNewWithStore_SenderResolution(t *testing.T) {
	setupConfig(t)
	s := testutil.NewTestStore(t)
	a, err := NewWithStore(Options{}, s, config.NewProvider())
	require.NoError(t, err)

	sender, err := a.Sender("")
	require.NoError(t, err)
	require.True(t, sender.IsConsole())

	_, err = a.Sender("steve")
	require.ErrorContains(t, err, "connect it first")

	a.Dispatcher.DispatchLine(domain.Console{}, "connect steve")
	sender, err = a.Sender("steve")
	require.NoError(t, err)
	require.Equal(t, "steve", sender.DisplayName())

	res := a.Dispatcher.DispatchLine(sender, "give stone 1")
	require.Equal(t, domain.OutcomeDenied, res.Outcome)
}

func TestClose_NilComponents(t *testing.T) {
	a := &App{}
	require.NoError(t, a.Close())
}
