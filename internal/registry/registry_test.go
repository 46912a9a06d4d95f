package registry_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vane-tools/vanectl/internal/command"
	"github.com/vane-tools/vanectl/internal/domain"
	"github.com/vane-tools/vanectl/internal/registry"
	"github.com/vane-tools/vanectl/internal/testutil"
	"github.com/vane-tools/vanectl/internal/usage"
)

func TestModules_RegisterAndLookup(t *testing.T) {
	r := registry.NewModules()
	portals := r.MustRegister("Portals", "portal networks")
	r.MustRegister("core", "built-ins")

	m, ok := r.Lookup("portals")
	require.True(t, ok)
	require.Same(t, portals, m)

	_, ok = r.Lookup("port")
	require.False(t, ok)

	names := []string{}
	for _, m := range r.Candidates() {
		names = append(names, registry.ModuleName(m))
	}
	require.Equal(t, []string{"Portals", "core"}, names)

	_, err := r.Register("PORTALS", "")
	require.ErrorContains(t, err, "already registered")
	_, err = r.Register("", "")
	require.Error(t, err)
}

func TestModule_State(t *testing.T) {
	r := registry.NewModules()
	m := r.MustRegister("trifles", "small things")
	require.True(t, m.Enabled())
	require.Equal(t, "small things", m.Description())

	require.True(t, m.SetEnabled(false))
	require.False(t, m.SetEnabled(false))
	require.False(t, m.Enabled())

	before := m.LoadedAt()
	m.Reload(before.Add(time.Minute))
	r.Reload(m)
	require.Equal(t, 2, m.Reloads())
	require.False(t, m.LoadedAt().Before(before))
}

func TestModules_AsDynamicChoice(t *testing.T) {
	r := registry.NewModules()
	r.MustRegister("core", "")

	var got *registry.Module
	cmd := command.New("vane", nil)
	reload := cmd.Params().Fixed("reload")
	command.Exec2(command.DynamicChoice(reload, "module", r, registry.ModuleName), func(_ string, m *registry.Module) bool {
		got = m
		return true
	})

	_, err := cmd.ResolveAndExecute([]string{"vane", "reload", "portals"})
	require.ErrorIs(t, err, &usage.Diagnostic{Kind: usage.ErrInvalidArgument})

	portals := r.MustRegister("Portals", "")
	handled, err := cmd.ResolveAndExecute([]string{"vane", "reload", "PORTALS"})
	require.NoError(t, err)
	require.True(t, handled)
	require.Same(t, portals, got)
}

func TestActors_FollowStore(t *testing.T) {
	s := testutil.NewTestStore(t)
	actors := registry.NewActors(s, nil)

	require.Empty(t, actors.Candidates())

	testutil.SeedActors(t, s, []string{"steve"}, "alex")

	online := actors.Candidates()
	require.Len(t, online, 1)
	require.Equal(t, "steve", registry.ActorName(online[0]))

	_, ok := actors.Lookup("alex")
	require.False(t, ok, "offline actors are not choices")
	_, ok = actors.Lookup("Steve")
	require.False(t, ok, "actor names are exact")

	a, ok := actors.Lookup("steve")
	require.True(t, ok)
	require.Equal(t, "steve", a.Name)

	known, ok := actors.Known("alex")
	require.True(t, ok)
	require.False(t, known.Online)
}

type failingStore struct {
	domain.ActorStore
}

func (failingStore) Online() ([]domain.Actor, error) { return nil, errors.New("db locked") }
func (failingStore) FindByName(string) (domain.Actor, bool, error) {
	return domain.Actor{}, false, errors.New("db locked")
}

func TestActors_StoreErrorsMeanNoChoices(t *testing.T) {
	actors := registry.NewActors(failingStore{}, nil)

	require.Nil(t, actors.Candidates())
	_, ok := actors.Lookup("steve")
	require.False(t, ok)
	_, ok = actors.Known("steve")
	require.False(t, ok)
}
