package command

import (
	"reflect"

	"github.com/vane-tools/vanectl/internal/usage"
)

// executor is the terminal strategy: it accepts only at the end of input.
type executor struct {
	invoke func([]any) bool
}

func (e *executor) checkAccept(cmd *Command, tokens []string, offset int, acc []any) CheckResult {
	if offset < len(tokens) {
		return &Failure{Diagnostic: usage.ExcessArgument(offset, tokens[offset])}
	}
	values := acc
	if values == nil {
		values = []any{}
	}
	return &Match{Values: values, Command: cmd, invoke: e.invoke}
}

// bind checks the callback signature against the path and appends the
// executor. Mismatches panic with an ArityMismatch diagnostic: they are
// programming errors in the command definition.
func (p *Param) bind(params []reflect.Type, invoke func([]any) bool) {
	if p.exec != nil {
		panic(usage.ArityMismatch(p.parent.path(), len(p.parent.types), len(params)))
	}
	if len(params) != len(p.types) {
		panic(usage.ArityMismatch(p.path(), len(p.types), len(params)))
	}
	for i, produced := range p.types {
		if !produced.AssignableTo(params[i]) {
			panic(usage.ArgumentTypeMismatch(p.path(), i, produced.String(), params[i].String()))
		}
	}

	p.children = append(p.children, &Param{
		command: p.command,
		parent:  p,
		exec:    &executor{invoke: invoke},
		types:   p.types,
	})
}

// arg asserts v to T. A nil v yields the zero value.
func arg[T any](v any) T {
	t, _ := v.(T)
	return t
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// Exec0 terminates a path that produces no values.
func Exec0(p *Param, f func() bool) {
	p.bind(nil, func([]any) bool { return f() })
}

// Exec1 terminates a path that produces one value.
func Exec1[T1 any](p *Param, f func(T1) bool) {
	p.bind([]reflect.Type{typeOf[T1]()}, func(v []any) bool {
		return f(arg[T1](v[0]))
	})
}

// Exec2 terminates a path that produces two values.
func Exec2[T1, T2 any](p *Param, f func(T1, T2) bool) {
	p.bind([]reflect.Type{typeOf[T1](), typeOf[T2]()}, func(v []any) bool {
		return f(arg[T1](v[0]), arg[T2](v[1]))
	})
}

// Exec3 terminates a path that produces three values.
func Exec3[T1, T2, T3 any](p *Param, f func(T1, T2, T3) bool) {
	p.bind([]reflect.Type{typeOf[T1](), typeOf[T2](), typeOf[T3]()}, func(v []any) bool {
		return f(arg[T1](v[0]), arg[T2](v[1]), arg[T3](v[2]))
	})
}

// Exec4 terminates a path that produces four values.
func Exec4[T1, T2, T3, T4 any](p *Param, f func(T1, T2, T3, T4) bool) {
	p.bind([]reflect.Type{typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4]()}, func(v []any) bool {
		return f(arg[T1](v[0]), arg[T2](v[1]), arg[T3](v[2]), arg[T4](v[3]))
	})
}

// Exec5 terminates a path that produces five values.
func Exec5[T1, T2, T3, T4, T5 any](p *Param, f func(T1, T2, T3, T4, T5) bool) {
	p.bind([]reflect.Type{typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5]()}, func(v []any) bool {
		return f(arg[T1](v[0]), arg[T2](v[1]), arg[T3](v[2]), arg[T4](v[3]), arg[T5](v[4]))
	})
}

// Exec6 terminates a path that produces six values.
func Exec6[T1, T2, T3, T4, T5, T6 any](p *Param, f func(T1, T2, T3, T4, T5, T6) bool) {
	p.bind([]reflect.Type{typeOf[T1](), typeOf[T2](), typeOf[T3](), typeOf[T4](), typeOf[T5](), typeOf[T6]()}, func(v []any) bool {
		return f(arg[T1](v[0]), arg[T2](v[1]), arg[T3](v[2]), arg[T4](v[3]), arg[T5](v[4]), arg[T6](v[5]))
	})
}
