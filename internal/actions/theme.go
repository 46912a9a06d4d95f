package actions

import (
	"github.com/vane-tools/vanectl/internal/command"
	"github.com/vane-tools/vanectl/internal/ui/style"
)

// theme list
// theme set <name>
func themeCommand(deps Deps, owner command.Module) *command.Command {
	cmd := command.New("theme", owner, command.WithDescription("List or switch color themes"))

	command.Exec1(cmd.Params().Fixed("list"), func(string) bool {
		current, _ := deps.Config.Get("theme")
		if current == "" {
			current = "default"
		}

		deps.println("Available themes (* = current)")
		deps.println("")
		for _, name := range append(append([]string(nil), style.BaseThemeNames...), style.ThemeNames...) {
			marker := "  "
			if name == current {
				marker = deps.Styler.Success("* ")
			}
			preview := ""
			if theme, ok := style.Themes[name]; ok && deps.Styler.Enabled() {
				preview = style.Preview(theme)
			}
			deps.printf("%s%-14s  %s\n", marker, name, preview)
		}
		deps.println("")
		deps.println("Use 'theme set <name>' to change")
		return true
	})

	names := append(append([]string(nil), style.BaseThemeNames...), style.ThemeNames...)
	command.Exec2(cmd.Params().Fixed("set").Choice("name", names), func(_, name string) bool {
		if err := deps.Config.Set("theme", name); err != nil {
			return deps.fail("theme set", err)
		}
		refreshStyle(deps, "theme")
		deps.println(deps.Styler.Success("theme set to " + name))
		return true
	})

	return cmd
}
