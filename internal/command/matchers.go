package command

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/vane-tools/vanectl/internal/usage"
)

// matcher is the token strategy of a non-executor Param.
type matcher interface {
	// match converts the token at position, or explains why it cannot.
	match(token string, position int, ignoreCase bool) (any, *usage.Diagnostic)
	// describe names the parameter in usage lines and diagnostics.
	describe() string
	// valueType is the static type of the produced value, nil if none.
	valueType() reflect.Type
}

// caseFolder is implemented by matchers that honour IgnoreCase.
type caseFolder interface {
	foldsCase()
}

func placeholder(name string) string {
	return "<" + name + ">"
}

func sameToken(a, b string, ignoreCase bool) bool {
	if ignoreCase {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// labelMatcher accepts the command's own name or one of its aliases.
// It produces no value.
type labelMatcher struct {
	cmd *Command
}

func (m labelMatcher) match(token string, position int, _ bool) (any, *usage.Diagnostic) {
	if m.cmd.Matches(token) {
		return nil, nil
	}
	return nil, usage.InvalidChoice(position, "command", token, m.cmd.Labels())
}

func (m labelMatcher) describe() string        { return m.cmd.Name }
func (m labelMatcher) valueType() reflect.Type { return nil }

type anyMatcher[T any] struct {
	name    string
	convert func(string) (T, error)
}

func (m anyMatcher[T]) match(token string, position int, _ bool) (value any, diag *usage.Diagnostic) {
	if token == "" {
		return nil, usage.InvalidArgument(position, m.describe(), token)
	}
	defer func() {
		if r := recover(); r != nil {
			value = nil
			diag = usage.InvalidArgument(position, m.describe(), token).
				WithCause(fmt.Errorf("converter panicked: %v", r))
		}
	}()

	v, err := m.convert(token)
	if err != nil {
		return nil, usage.InvalidArgument(position, m.describe(), token).WithCause(err)
	}
	return v, nil
}

func (m anyMatcher[T]) describe() string        { return placeholder(m.name) }
func (m anyMatcher[T]) valueType() reflect.Type { return reflect.TypeFor[T]() }

type fixedMatcher[T any] struct {
	literal  T
	rendered string
}

func (m fixedMatcher[T]) match(token string, position int, ignoreCase bool) (any, *usage.Diagnostic) {
	if !sameToken(token, m.rendered, ignoreCase) {
		return nil, usage.InvalidChoice(position, m.rendered, token, []string{m.rendered})
	}
	return m.literal, nil
}

func (m fixedMatcher[T]) foldsCase() {}

func (m fixedMatcher[T]) describe() string        { return m.rendered }
func (m fixedMatcher[T]) valueType() reflect.Type { return reflect.TypeFor[T]() }

type choiceMatcher[T any] struct {
	name    string
	choices []T
	render  func(T) string
}

func (m choiceMatcher[T]) match(token string, position int, ignoreCase bool) (any, *usage.Diagnostic) {
	names := make([]string, 0, len(m.choices))
	for _, c := range m.choices {
		rendered := m.render(c)
		if sameToken(token, rendered, ignoreCase) {
			return c, nil
		}
		names = append(names, rendered)
	}
	return nil, usage.InvalidChoice(position, m.describe(), token, names)
}

func (m choiceMatcher[T]) foldsCase() {}

func (m choiceMatcher[T]) describe() string        { return placeholder(m.name) }
func (m choiceMatcher[T]) valueType() reflect.Type { return reflect.TypeFor[T]() }

type dynamicChoiceMatcher[T any] struct {
	name   string
	source Source[T]
	render func(T) string
}

func (m dynamicChoiceMatcher[T]) match(token string, position int, _ bool) (value any, diag *usage.Diagnostic) {
	defer func() {
		if r := recover(); r != nil {
			value = nil
			diag = usage.InvalidArgument(position, m.describe(), token).
				WithCause(fmt.Errorf("choice source panicked: %v", r))
		}
	}()

	candidates := m.source.Candidates()
	if v, ok := m.source.Lookup(token); ok {
		return v, nil
	}

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = m.render(c)
	}
	return nil, usage.InvalidChoice(position, m.describe(), token, names)
}

func (m dynamicChoiceMatcher[T]) describe() string        { return placeholder(m.name) }
func (m dynamicChoiceMatcher[T]) valueType() reflect.Type { return reflect.TypeFor[T]() }
