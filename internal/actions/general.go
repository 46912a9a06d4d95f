package actions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vane-tools/vanectl/internal/command"
	"github.com/vane-tools/vanectl/internal/dispatchers"
	"github.com/vane-tools/vanectl/internal/domain"
	"github.com/vane-tools/vanectl/internal/format"
)

const defaultHistoryLimit = 20

// visibleCommands offers the commands the current sender may run.
type visibleCommands struct {
	deps Deps
}

func (v visibleCommands) Candidates() []*command.Command {
	sender := v.deps.sender()
	var out []*command.Command
	for _, c := range v.deps.Dispatcher.Candidates() {
		if v.deps.Dispatcher.Allowed(sender, c) {
			out = append(out, c)
		}
	}
	return out
}

func (v visibleCommands) Lookup(label string) (*command.Command, bool) {
	c, ok := v.deps.Dispatcher.Lookup(label)
	if !ok || !v.deps.Dispatcher.Allowed(v.deps.sender(), c) {
		return nil, false
	}
	return c, true
}

// help <command>
// help
func helpCommand(deps Deps, owner command.Module) *command.Command {
	cmd := command.New("help", owner,
		command.WithAliases("?"),
		command.WithDescription("List commands or show how to use one"))

	// Declared first so an unknown name reports the command choices.
	target := command.DynamicChoice(cmd.Params(), "command", visibleCommands{deps}, dispatchers.CommandName)
	command.Exec1(target, func(c *command.Command) bool {
		deps.printf("%s", deps.Dispatcher.CommandHelp(c))
		return true
	})
	command.Exec0(cmd.Params(), func() bool {
		deps.printf("%s", deps.Dispatcher.HelpText(deps.sender()))
		return true
	})
	return cmd
}

// version
func versionCommand(deps Deps, owner command.Module) *command.Command {
	cmd := command.New("version", owner, command.WithDescription("Show the vanectl version"))
	command.Exec0(cmd.Params(), func() bool {
		deps.printf("vanectl version %v\n", deps.Version())
		return true
	})
	return cmd
}

// history
// history <count>
func historyCommand(deps Deps, owner command.Module) *command.Command {
	cmd := command.New("history", owner, command.WithDescription("Show recently dispatched command lines"))

	command.Exec0(cmd.Params(), func() bool {
		limit := defaultHistoryLimit
		if v, ok := deps.Config.Get("history_limit"); ok {
			if n, err := strconv.Atoi(v); err == nil {
				limit = n
			}
		}
		return showHistory(deps, limit)
	})
	command.Exec1(cmd.Params().Int("count"), func(n int) bool {
		if n <= 0 {
			return false
		}
		return showHistory(deps, n)
	})
	return cmd
}

func showHistory(deps Deps, limit int) bool {
	entries, err := deps.History.History(limit)
	if err != nil {
		return deps.fail("history", err)
	}
	if len(entries) == 0 {
		deps.println(deps.Styler.Muted("no commands recorded yet"))
		return true
	}

	f := deps.formatter()
	now := deps.Now()
	s := deps.Styler
	// Oldest first so the newest line ends up next to the prompt.
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		when := fmt.Sprintf("%s %-9s", f.DateTime(e.Timestamp), "("+format.Ago(now, e.Timestamp)+")")
		deps.printf("%s  %-10s %s %s\n", s.Muted(when), e.Sender, outcomeMark(s, e.Outcome), e.Line)
		if e.Diagnostic != "" {
			deps.printf("%s%s\n", strings.Repeat(" ", 4), s.Muted(e.Diagnostic))
		}
	}
	return true
}

func outcomeMark(s domain.Styler, o domain.Outcome) string {
	label := fmt.Sprintf("%-8s", o)
	switch o {
	case domain.OutcomeHandled:
		return s.Success(label)
	case domain.OutcomeDeclined:
		return s.Warning(label)
	default:
		return s.Error(label)
	}
}
