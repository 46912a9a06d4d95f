package dispatchers

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vane-tools/vanectl/internal/command"
	"github.com/vane-tools/vanectl/internal/domain"
)

// HelpText lists the commands sender may use, grouped by category.
func (d *Dispatcher) HelpText(sender domain.Sender) string {
	s := d.styler
	grouped := make(map[CommandCategory][]*command.Command)
	for _, e := range d.Entries() {
		if !d.Allowed(sender, e.Command) {
			continue
		}
		grouped[e.Category] = append(grouped[e.Category], e.Command)
	}

	var out strings.Builder
	out.WriteString(s.Header("vane - command console"))
	out.WriteString("\n\n")

	for _, cat := range categoryOrder {
		cmds := grouped[cat]
		if len(cmds) == 0 {
			continue
		}

		out.WriteString(s.Header(cat.String()))
		out.WriteString("\n")

		slices.SortFunc(cmds, func(a, b *command.Command) int {
			return strings.Compare(a.Name, b.Name)
		})
		for _, cmd := range cmds {
			fmt.Fprintf(&out, "   %s  %s\n", s.Info(fmt.Sprintf("%-12s", cmd.Name)), cmd.Description)
		}
		out.WriteString("\n")
	}

	out.WriteString("See 'help <command>' for the syntax of a command.\n")
	return out.String()
}

// CommandHelp describes one command: its description, usage lines,
// aliases and permission.
func (d *Dispatcher) CommandHelp(cmd *command.Command) string {
	s := d.styler

	var out strings.Builder
	out.WriteString(s.Header(cmd.Name))
	if cmd.Description != "" {
		out.WriteString(" - ")
		out.WriteString(cmd.Description)
	}
	out.WriteString("\n\n")

	out.WriteString(s.Header("USAGE"))
	out.WriteString("\n")
	for _, u := range cmd.Usages() {
		out.WriteString("   ")
		out.WriteString(s.Usage(u))
		out.WriteString("\n")
	}

	if len(cmd.Aliases) > 0 {
		out.WriteString("\n")
		out.WriteString(s.Header("ALIASES"))
		out.WriteString("\n   ")
		out.WriteString(strings.Join(cmd.Aliases, ", "))
		out.WriteString("\n")
	}

	out.WriteString("\n")
	out.WriteString(s.Muted("permission: " + cmd.Permission))
	out.WriteString("\n")
	return out.String()
}
