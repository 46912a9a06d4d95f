package actions

import (
	"strings"

	"github.com/vane-tools/vanectl/internal/command"
	"github.com/vane-tools/vanectl/internal/domain"
)

func configKeyNames() []string {
	var names []string
	for _, key := range domain.VisibleConfigKeys() {
		names = append(names, key.Name)
	}
	return names
}

// restyles reports whether changing key affects colors.
func restyles(key string) bool {
	return key == "theme" || strings.HasPrefix(key, "color_")
}

// config list
// config get <key>
// config set <key> <value>
// config unset <key>
func configCommand(deps Deps, owner command.Module) *command.Command {
	cmd := command.New("config", owner, command.WithDescription("Read and change settings"))
	s := deps.Styler
	keys := configKeyNames()

	command.Exec1(cmd.Params().Fixed("list"), func(string) bool {
		values, err := deps.Config.GetAll()
		if err != nil {
			return deps.fail("config list", err)
		}
		bySection := domain.ConfigKeysBySection()
		for _, section := range domain.ConfigSections() {
			var lines []string
			for _, key := range bySection[section] {
				value := values[key.Name]
				if key.HideIfEmpty && value == "" {
					continue
				}
				lines = append(lines, key.Name+"="+value)
			}
			if len(lines) == 0 {
				continue
			}
			deps.println(s.Header(section))
			for _, line := range lines {
				deps.println("  " + line)
			}
		}
		return true
	})

	command.Exec2(cmd.Params().Fixed("get").Choice("key", keys), func(_, key string) bool {
		value, ok := deps.Config.Get(key)
		if !ok || value == "" {
			deps.println(s.Muted(key + " is not set"))
			return true
		}
		deps.println(value)
		return true
	})

	command.Exec3(cmd.Params().Fixed("set").Choice("key", keys).AnyString("value"), func(_, key, value string) bool {
		if err := deps.Config.Set(key, value); err != nil {
			return deps.fail("config set", err)
		}
		deps.println(s.Success("set " + key + "=" + value))
		refreshStyle(deps, key)
		return true
	})

	command.Exec2(cmd.Params().Fixed("unset").Choice("key", keys), func(_, key string) bool {
		if err := deps.Config.Unset(key); err != nil {
			return deps.fail("config unset", err)
		}
		deps.println("unset " + key)
		refreshStyle(deps, key)
		return true
	})

	return cmd
}

func refreshStyle(deps Deps, key string) {
	if !restyles(key) {
		return
	}
	values, err := deps.Config.GetAll()
	if err != nil {
		deps.Logger.Warn("config: reload colors: %v", err)
		return
	}
	deps.ApplyTheme(values)
}
