package usage

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiagnostic_ExitCodes(t *testing.T) {
	tests := []struct {
		name string
		diag *Diagnostic
		want int
	}{
		{"missing argument", MissingArgument(1, "<amount>"), 2},
		{"invalid argument", InvalidArgument(1, "<amount>", "x"), 2},
		{"excess argument", ExcessArgument(3, "extra"), 2},
		{"invalid flag", InvalidFlag("--nope"), 2},
		{"unknown command", UnknownCommand("gvie"), 1},
		{"permission denied", PermissionDenied("give", "vane.core.commands.give"), 1},
		{"arity mismatch", ArityMismatch("give <item>", 1, 2), 1},
		{"not handled", NotHandled("give", nil), 1},
		{"explicit override", &Diagnostic{Kind: ErrMissingArgument, ExitCode: 7}, 7},
		{"zero value", &Diagnostic{}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.diag.GetExitCode())
		})
	}
}

func TestDiagnostic_Messages(t *testing.T) {
	require.Equal(t, "missing argument: <amount>", MissingArgument(2, "<amount>").Error())
	require.Equal(t, "invalid <amount>: 'five'", InvalidArgument(2, "<amount>", "five").Error())
	require.Equal(t, "excess argument: 'extra'", ExcessArgument(3, "extra").Error())
	require.Equal(t,
		"give <item>: callback takes 2 argument(s) but the path produces 1",
		ArityMismatch("give <item>", 1, 2).Error(),
	)
}

func TestInvalidChoice_ListsShortCandidateSets(t *testing.T) {
	d := InvalidChoice(1, "<item>", "gold", []string{"stone", "dirt"})

	require.Equal(t, ErrInvalidArgument, d.Kind)
	require.Equal(t, "invalid <item>: 'gold' (expected one of 'stone', 'dirt')", d.Message)
	require.Equal(t, []string{"stone", "dirt"}, d.Choices)
}

func TestInvalidChoice_OmitsLongCandidateSets(t *testing.T) {
	var many []string
	for i := 0; i < maxListedChoices+1; i++ {
		many = append(many, strconv.Itoa(i))
	}

	d := InvalidChoice(1, "<n>", "x", many)

	require.Equal(t, "invalid <n>: 'x'", d.Message)
	require.Len(t, d.Choices, maxListedChoices+1)
}

func TestUnknownCommand_WithSuggestions(t *testing.T) {
	d := UnknownCommand("gvie", "give")

	require.Contains(t, d.Message, "Unknown command 'gvie'")
	require.Contains(t, d.Message, "\tgive")
	require.Equal(t, []string{"give"}, d.Choices)
}

func TestDiagnostic_ErrorsIsMatchesKind(t *testing.T) {
	var err error = MissingArgument(1, "<item>")

	require.ErrorIs(t, err, &Diagnostic{Kind: ErrMissingArgument})
	require.NotErrorIs(t, err, &Diagnostic{Kind: ErrInvalidArgument})
}

func TestDiagnostic_UnwrapsCause(t *testing.T) {
	_, convErr := strconv.Atoi("five")
	d := InvalidArgument(1, "<amount>", "five").WithCause(convErr)

	var numErr *strconv.NumError
	require.True(t, errors.As(d, &numErr))
	require.Equal(t, "five", numErr.Num)
}

func TestNotHandled_ListsUsages(t *testing.T) {
	d := NotHandled("give", []string{"give <item> <amount>"})
	require.Equal(t, ErrNotHandled, d.Kind)
	require.Equal(t, "'give' did not handle the input. Usage:\n\tgive <item> <amount>", d.Error())
	require.Equal(t, NoPosition, d.Position)
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "not handled", ErrNotHandled.String())
	require.Equal(t, "missing argument", ErrMissingArgument.String())
	require.Equal(t, "unknown", Kind(99).String())
}
