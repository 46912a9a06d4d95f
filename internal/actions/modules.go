package actions

import (
	"fmt"

	"github.com/vane-tools/vanectl/internal/command"
	"github.com/vane-tools/vanectl/internal/registry"
)

// vane list
// vane reload <module>
// vane enable <module>
// vane disable <module>
func vaneCommand(deps Deps, owner *registry.Module) *command.Command {
	cmd := command.New("vane", owner, command.WithDescription("List, reload, enable or disable modules"))
	s := deps.Styler

	command.Exec1(cmd.Params().Fixed("list").IgnoreCase(), func(string) bool {
		f := deps.formatter()
		for _, m := range deps.Modules.Candidates() {
			state := s.Success("enabled ")
			if !m.Enabled() {
				state = s.Muted("disabled")
			}
			deps.printf("%-8s %s  %s %s\n", m.Name(), state, m.Description(),
				s.Muted(fmt.Sprintf("(loaded %s, %d reloads)", f.Time(m.LoadedAt()), m.Reloads())))
		}
		return true
	})

	module := func(verb string) *command.Param {
		return command.DynamicChoice(cmd.Params().Fixed(verb).IgnoreCase(), "module", deps.Modules, registry.ModuleName)
	}

	command.Exec2(module("reload"), func(_ string, m *registry.Module) bool {
		deps.Modules.Reload(m)
		deps.Logger.Info("modules: %s reloaded by %s", m.Name(), deps.sender().DisplayName())
		deps.println(s.Success("reloaded " + m.Name()))
		return true
	})

	command.Exec2(module("enable"), func(_ string, m *registry.Module) bool {
		return setEnabled(deps, m, true)
	})

	command.Exec2(module("disable"), func(_ string, m *registry.Module) bool {
		if m == owner {
			deps.println(s.Warning(m.Name() + " cannot be disabled"))
			return true
		}
		return setEnabled(deps, m, false)
	})

	return cmd
}

func setEnabled(deps Deps, m *registry.Module, enabled bool) bool {
	verb := "disabled"
	if enabled {
		verb = "enabled"
	}
	if !m.SetEnabled(enabled) {
		deps.println(deps.Styler.Muted(m.Name() + " is already " + verb))
		return true
	}
	deps.Logger.Info("modules: %s %s by %s", m.Name(), verb, deps.sender().DisplayName())
	deps.println(deps.Styler.Success(verb + " " + m.Name()))
	return true
}
