package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when no registered command answers to the label.
func UnknownCommand(command string, suggestions ...string) *Diagnostic {
	msg := fmt.Sprintf("Unknown command '%s'. Type \"help\" for help.", command)
	if len(suggestions) > 0 {
		msg += "\n\nThe most similar commands are:\n\t" + strings.Join(suggestions, "\n\t")
	}
	return &Diagnostic{
		Kind:     ErrUnknownCommand,
		Message:  msg,
		Position: 0,
		Token:    command,
		Choices:  suggestions,
	}
}

// HiddenCommand is the UnknownCommand shown instead of PermissionDenied
// when commands are hidden from actors without access.
func HiddenCommand(command string) *Diagnostic {
	return &Diagnostic{
		Kind:     ErrUnknownCommand,
		Message:  "Unknown command. Type \"help\" for help.",
		Position: 0,
		Token:    command,
	}
}

// PermissionDenied is returned when the sender lacks the command's permission.
func PermissionDenied(command, permission string) *Diagnostic {
	return &Diagnostic{
		Kind:     ErrPermissionDenied,
		Message:  fmt.Sprintf("You do not have permission to use '%s'.", command),
		Position: 0,
		Token:    command,
		Expected: permission,
	}
}

// NotHandled is returned when the input matched a path but the callback
// declined it. usages lists the command's syntax for the reader.
func NotHandled(command string, usages []string) *Diagnostic {
	msg := fmt.Sprintf("'%s' did not handle the input.", command)
	if len(usages) > 0 {
		msg += " Usage:\n\t" + strings.Join(usages, "\n\t")
	}
	return &Diagnostic{
		Kind:     ErrNotHandled,
		Message:  msg,
		Position: NoPosition,
		Token:    command,
		Choices:  usages,
	}
}

// InvalidFlag is returned when a command-line flag is not valid.
func InvalidFlag(flag string) *Diagnostic {
	return &Diagnostic{
		Kind:     ErrInvalidFlag,
		Message:  fmt.Sprintf("vanectl: invalid flag '%s'", flag),
		Position: NoPosition,
		Token:    flag,
	}
}
