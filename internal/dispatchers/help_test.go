package dispatchers

import (
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vane-tools/vanectl/internal/domain"
	"github.com/vane-tools/vanectl/internal/testutil"
)

func TestRender_MissingArgumentEchoesPlaceholder(t *testing.T) {
	d, _, _ := newTestDispatcher(t)

	out := d.Render(d.Dispatch(console, []string{"give", "stone"}))

	require.Equal(t, "missing argument: <amount>\n"+
		"  give stone <amount>\n"+
		"usage:\n"+
		"  give <item> <amount>\n", out)
}

func TestRender_InvalidChoice(t *testing.T) {
	d, _, _ := newTestDispatcher(t)

	out := d.Render(d.Dispatch(console, []string{"give", "mud", "5"}))

	lines := strings.Split(out, "\n")
	require.Equal(t, "invalid <item>: 'mud' (expected one of 'stone', 'dirt')", lines[0])
	require.Equal(t, "  give mud 5", lines[1])
}

func TestRender_UnknownCommandListsSuggestions(t *testing.T) {
	d, _, _ := newTestDispatcher(t)

	out := d.Render(d.Dispatch(console, []string{"gvie"}))

	require.Equal(t, "Unknown command 'gvie'. Type \"help\" for help.\n"+
		"The most similar commands are:\n\tgive\n\tg\n\ttime\n", out)
}

func TestRender_HandledIsEmpty(t *testing.T) {
	d, _, _ := newTestDispatcher(t)

	require.Empty(t, d.Render(d.Dispatch(console, []string{"give", "dirt", "2"})))
	require.Empty(t, d.Render(d.Dispatch(console, nil)))
}

func TestHelpText_GroupsAllowedCommands(t *testing.T) {
	perms := PermissionFunc(func(s domain.Sender, perm string) bool {
		return s.IsConsole() || perm == "vane.core.commands.time"
	})
	d, _, _ := newTestDispatcher(t, WithPermissions(perms))

	out := d.HelpText(console)
	require.True(t, strings.HasPrefix(out, "vane - command console\n\n"))
	require.Less(t, strings.Index(out, "general"), strings.Index(out, "world commands"))
	require.Less(t, strings.Index(out, "give"), strings.Index(out, "time"))
	require.Contains(t, out, "Give items")
	require.True(t, strings.HasSuffix(out, "See 'help <command>' for the syntax of a command.\n"))

	out = d.HelpText(actor("steve"))
	require.Contains(t, out, "Change the time")
	require.NotContains(t, out, "give")
	require.NotContains(t, out, "general")
}

func TestCommandHelp(t *testing.T) {
	d, _, _ := newTestDispatcher(t)

	out := d.CommandHelp(mustLookup(t, d, "give"))

	require.Equal(t, "give - Give items\n\n"+
		"USAGE\n"+
		"   give <item> <amount>\n\n"+
		"ALIASES\n"+
		"   g\n\n"+
		"permission: vane.core.commands.give\n", out)
}

func TestStorePermissions(t *testing.T) {
	s := testutil.NewTestStore(t)
	testutil.SeedActors(t, s, []string{"alex", "steve", "op"}, "gone")
	require.NoError(t, s.SetOp("op", true))
	require.NoError(t, s.Grant("steve", "vane.core.commands.*"))
	require.NoError(t, s.Grant("alex", "vane.[bad"))

	perms := StorePermissions{Store: s}

	tests := []struct {
		sender domain.Sender
		perm   string
		want   bool
	}{
		{console, "vane.portals.commands.portal", true},
		{domain.Actor{Name: "op"}, "vane.portals.commands.portal", true},
		{domain.Actor{Name: "steve"}, "vane.core.commands.give", true},
		{domain.Actor{Name: "steve"}, "vane.portals.commands.portal", false},
		{domain.Actor{Name: "alex"}, "vane.core.commands.give", false},
		{domain.Actor{Name: "nobody"}, "vane.core.commands.give", false},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, perms.Allowed(tt.sender, tt.perm), "%s %s", tt.sender.DisplayName(), tt.perm)
	}
}

func TestDispatch_StorePermissionsEndToEnd(t *testing.T) {
	s := testutil.NewTestStore(t)
	testutil.SeedActors(t, s, []string{"steve"})

	d, calls, _ := newTestDispatcher(t, WithPermissions(StorePermissions{Store: s}), WithRecorder(s))
	steve := domain.Actor{Name: "steve"}

	require.Equal(t, domain.OutcomeDenied, d.Dispatch(steve, []string{"give", "stone", "1"}).Outcome)

	require.NoError(t, s.Grant("steve", "vane.core.commands.give"))
	require.Equal(t, domain.OutcomeHandled, d.Dispatch(steve, []string{"give", "stone", "1"}).Outcome)
	require.Len(t, *calls, 1)

	history, err := s.History(0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, domain.OutcomeHandled, history[0].Outcome)
	require.Equal(t, domain.OutcomeDenied, history[1].Outcome)
	require.Equal(t, "steve", history[1].Sender)
}

func TestMatchPermission(t *testing.T) {
	require.True(t, MatchPermission([]string{"vane.*.commands.*"}, "vane.portals.commands.portal"))
	require.False(t, MatchPermission([]string{"vane.core.commands.g"}, "vane.core.commands.give"))
	require.False(t, MatchPermission(nil, "vane.core.commands.give"))
}

func TestValidatePattern(t *testing.T) {
	require.NoError(t, ValidatePattern("vane.*.commands.*"))
	require.Error(t, ValidatePattern(""))
	require.ErrorIs(t, ValidatePattern("vane.[bad"), path.ErrBadPattern)
}
