package command

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vane-tools/vanectl/internal/usage"
)

type timePreset int

const (
	presetDay   timePreset = 1000
	presetNight timePreset = 13000
)

func (t timePreset) String() string {
	switch t {
	case presetDay:
		return "day"
	case presetNight:
		return "night"
	}
	return fmt.Sprint(int(t))
}

func TestDynamicChoice_ReevaluatesSourceOnEveryAttempt(t *testing.T) {
	current := []string{"a", "b"}
	supplierCalls := 0
	src := SourceFunc[string]{
		List: func() []string {
			supplierCalls++
			return current
		},
		Parse: func(name string) (string, bool) {
			return name, slices.Contains(current, name)
		},
	}

	cmd := New("kick", testModule("core"))
	Exec1(DynamicChoice(cmd.Params(), "actor", src, identity), func(string) bool { return true })

	handled, err := cmd.ResolveAndExecute([]string{"kick", "a"})
	require.NoError(t, err)
	require.True(t, handled)

	current = []string{"b", "c"}

	_, err = cmd.ResolveAndExecute([]string{"kick", "a"})
	ce, ok := AsCombined(err)
	require.True(t, ok)
	require.True(t, ce.Has(usage.ErrInvalidArgument))
	require.Equal(t, []string{"b", "c"}, ce.Deepest().Choices)

	require.Equal(t, 2, supplierCalls)
}

func TestDynamicChoice_SourcePanicBecomesDiagnostic(t *testing.T) {
	src := SourceFunc[string]{
		List:  func() []string { panic("registry gone") },
		Parse: func(string) (string, bool) { return "", false },
	}
	cmd := New("kick", nil)
	Exec1(DynamicChoice(cmd.Params(), "actor", src, identity), func(string) bool { return true })

	_, err := cmd.ResolveAndExecute([]string{"kick", "a"})

	require.ErrorIs(t, err, &usage.Diagnostic{Kind: usage.ErrInvalidArgument})
	require.Contains(t, errors.Unwrap(asDiag(t, err)).Error(), "registry gone")
}

func TestStaticSource(t *testing.T) {
	src := StaticSource([]timePreset{presetDay, presetNight}, timePreset.String)

	v, ok := src.Lookup("night")
	require.True(t, ok)
	require.Equal(t, presetNight, v)

	_, ok = src.Lookup("dusk")
	require.False(t, ok)
	require.Len(t, src.Candidates(), 2)
}

func TestAny_ConverterPanicBecomesDiagnostic(t *testing.T) {
	cmd := New("boom", nil)
	Exec1(Any(cmd.Params(), "value", func(string) (int, error) {
		panic("bad converter")
	}), func(int) bool { return true })

	require.NotPanics(t, func() {
		_, err := cmd.ResolveAndExecute([]string{"boom", "x"})
		require.ErrorIs(t, err, &usage.Diagnostic{Kind: usage.ErrInvalidArgument})
	})
}

func TestFixed_TypedLiteral(t *testing.T) {
	var got []timePreset
	cmd := New("time", nil)
	set := cmd.Params().Fixed("set")
	for _, preset := range []timePreset{presetDay, presetNight} {
		Exec2(Fixed(set, preset, timePreset.String), func(_ string, p timePreset) bool {
			got = append(got, p)
			return true
		})
	}

	_, err := cmd.ResolveAndExecute([]string{"time", "set", "night"})
	require.NoError(t, err)
	require.Equal(t, []timePreset{presetNight}, got)

	_, err = cmd.ResolveAndExecute([]string{"time", "set", "Night"})
	require.Error(t, err, "fixed literals are case-sensitive by default")
}

func TestFixed_IgnoreCase(t *testing.T) {
	cmd := New("vane", nil)
	Exec1(cmd.Params().Fixed("list").IgnoreCase(), func(s string) bool {
		require.Equal(t, "list", s, "the literal is produced, not the token")
		return true
	})

	handled, err := cmd.ResolveAndExecute([]string{"vane", "LiSt"})
	require.NoError(t, err)
	require.True(t, handled)
}

func TestChoice_ExactMatchNotPrefix(t *testing.T) {
	cmd := New("give", nil)
	Exec1(cmd.Params().Choice("item", []string{"stone"}), func(string) bool { return true })

	_, err := cmd.ResolveAndExecute([]string{"give", "sto"})
	require.ErrorIs(t, err, &usage.Diagnostic{Kind: usage.ErrInvalidArgument})
}

func TestChoice_CopiesInput(t *testing.T) {
	items := []string{"stone"}
	cmd := New("give", nil)
	Exec1(cmd.Params().Choice("item", items), func(string) bool { return true })
	items[0] = "dirt"

	_, err := cmd.ResolveAndExecute([]string{"give", "stone"})
	require.NoError(t, err)
}

func TestExec_AllArities(t *testing.T) {
	var got []any
	record := func(v ...any) bool {
		got = append([]any(nil), v...)
		return true
	}

	cmd := New("n", nil)
	p2 := cmd.Params().Fixed("2").Int("a")
	Exec2(p2, func(a string, b int) bool { return record(a, b) })
	p3 := cmd.Params().Fixed("3").Int("a").Int("b")
	Exec3(p3, func(a string, b, c int) bool { return record(a, b, c) })
	p4 := p3.Int("c")
	Exec4(p4, func(a string, b, c, d int) bool { return record(a, b, c, d) })
	p5 := p4.Int("d")
	Exec5(p5, func(a string, b, c, d, e int) bool { return record(a, b, c, d, e) })
	p6 := p5.Int("e")
	Exec6(p6, func(a string, b, c, d, e, f int) bool { return record(a, b, c, d, e, f) })
	Exec1(cmd.Params().Int("a"), func(a int) bool { return record(a) })

	tests := []struct {
		tokens []string
		want   []any
	}{
		{[]string{"n", "9"}, []any{9}},
		{[]string{"n", "2", "7"}, []any{"2", 7}},
		{[]string{"n", "3", "1", "2"}, []any{"3", 1, 2}},
		{[]string{"n", "3", "1", "2", "3"}, []any{"3", 1, 2, 3}},
		{[]string{"n", "3", "1", "2", "3", "4"}, []any{"3", 1, 2, 3, 4}},
		{[]string{"n", "3", "1", "2", "3", "4", "5"}, []any{"3", 1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.tokens, " "), func(t *testing.T) {
			got = nil
			handled, err := cmd.ResolveAndExecute(tt.tokens)
			require.NoError(t, err)
			require.True(t, handled)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestExec_ArityMismatchPanicsAtConstruction(t *testing.T) {
	cmd := New("give", nil)
	item := cmd.Params().Choice("item", []string{"stone"})

	defer func() {
		r := recover()
		require.NotNil(t, r)
		d, ok := r.(*usage.Diagnostic)
		require.True(t, ok, "panic value %T", r)
		require.Equal(t, usage.ErrArityMismatch, d.Kind)
		require.Contains(t, d.Message, "give <item>")
	}()

	Exec2(item, func(string, int) bool { return true })
}

func TestExec_TypeMismatchPanicsAtConstruction(t *testing.T) {
	cmd := New("give", nil)
	amount := cmd.Params().Int("amount")

	require.PanicsWithError(t,
		"give <amount>: argument 1 is int but the callback expects string",
		func() { Exec1(amount, func(string) bool { return true }) },
	)
}

func TestExec_InterfaceParametersAccepted(t *testing.T) {
	cmd := New("show", nil)
	var seen fmt.Stringer
	Exec1(Fixed(cmd.Params(), presetDay, timePreset.String), func(s fmt.Stringer) bool {
		seen = s
		return true
	})

	_, err := cmd.ResolveAndExecute([]string{"show", "day"})
	require.NoError(t, err)
	require.Equal(t, "day", seen.String())
}

func TestExec_ExecutorCannotHaveChildren(t *testing.T) {
	cmd := New("x", nil)
	Exec0(cmd.Params(), func() bool { return true })
	executorNode := cmd.Params().Children()[0]

	require.True(t, executorNode.IsExecutor())
	require.Panics(t, func() { executorNode.Fixed("more") })
}

func TestCheckAccept_SiblingValuesAreIsolated(t *testing.T) {
	var results [][]any
	cmd := New("tp", nil)
	x := cmd.Params().Int("x")
	// Both alternatives append to the same parent slice; neither may see the other's value.
	Exec2(x.Fixed("here"), func(a int, b string) bool {
		results = append(results, []any{a, b})
		return false
	})
	Exec2(x.Int("y"), func(a, b int) bool {
		results = append(results, []any{a, b})
		return true
	})

	m, ok := cmd.Check([]string{"tp", "1", "2"}).(*Match)
	require.True(t, ok)
	require.Equal(t, []any{1, 2}, m.Values)

	m, ok = cmd.Check([]string{"tp", "1", "here"}).(*Match)
	require.True(t, ok)
	require.Equal(t, []any{1, "here"}, m.Values)
	require.False(t, m.Execute())
}

func TestParam_Accessors(t *testing.T) {
	cmd := New("give", nil)
	item := cmd.Params().Choice("item", []string{"stone"})
	amount := item.Int("amount")

	require.Same(t, cmd, amount.Command())
	require.Equal(t, "give", cmd.Params().Describe())
	require.Equal(t, "<item>", item.Describe())
	require.Equal(t, 2, amount.Arity())
	require.Equal(t, 0, cmd.Params().Arity())
	require.Len(t, item.Children(), 1)
}

func asDiag(t *testing.T, err error) *usage.Diagnostic {
	t.Helper()
	var d *usage.Diagnostic
	require.True(t, errors.As(err, &d))
	return d
}

func TestIgnoreCase_OnlyFixedAndChoice(t *testing.T) {
	cmd := New("vane", nil)
	require.NotPanics(t, func() { cmd.Params().Choice("verb", []string{"list"}).IgnoreCase() })

	src := StaticSource([]string{"core"}, identity)
	require.Panics(t, func() { DynamicChoice(cmd.Params(), "module", src, identity).IgnoreCase() })
	require.Panics(t, func() { cmd.Params().AnyString("text").IgnoreCase() })
	require.Panics(t, func() { cmd.Params().IgnoreCase() })
}
