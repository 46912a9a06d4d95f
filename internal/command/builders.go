package command

import (
	"strconv"
	"time"
)

// Any adds a parameter that accepts any token convert accepts.
func Any[T any](p *Param, name string, convert func(string) (T, error)) *Param {
	return p.add(anyMatcher[T]{name: name, convert: convert})
}

// Fixed adds a parameter that accepts only the rendered form of literal
// and produces literal itself.
func Fixed[T any](p *Param, literal T, render func(T) string) *Param {
	return p.add(fixedMatcher[T]{literal: literal, rendered: render(literal)})
}

// Choice adds a parameter that accepts the rendered form of one of choices.
// The slice is copied; later changes to it are not seen.
func Choice[T any](p *Param, name string, choices []T, render func(T) string) *Param {
	own := make([]T, len(choices))
	copy(own, choices)
	return p.add(choiceMatcher[T]{name: name, choices: own, render: render})
}

// DynamicChoice adds a parameter whose accepted values come from src at
// match time.
func DynamicChoice[T any](p *Param, name string, src Source[T], render func(T) string) *Param {
	return p.add(dynamicChoiceMatcher[T]{name: name, source: src, render: render})
}

func identity(s string) string { return s }

func asIs(s string) (string, error) { return s, nil }

// AnyString adds a parameter accepting any token as a string.
func (p *Param) AnyString(name string) *Param {
	return Any(p, name, asIs)
}

// Int adds a parameter accepting a base-10 integer.
func (p *Param) Int(name string) *Param {
	return Any(p, name, strconv.Atoi)
}

// Float adds a parameter accepting a floating point number.
func (p *Param) Float(name string) *Param {
	return Any(p, name, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

// Bool adds a parameter accepting the values strconv.ParseBool accepts.
func (p *Param) Bool(name string) *Param {
	return Any(p, name, strconv.ParseBool)
}

// Duration adds a parameter accepting a Go duration such as 90s or 1h30m.
func (p *Param) Duration(name string) *Param {
	return Any(p, name, time.ParseDuration)
}

// Fixed adds a string literal parameter.
func (p *Param) Fixed(literal string) *Param {
	return Fixed(p, literal, identity)
}

// Choice adds a parameter accepting one of the given strings.
func (p *Param) Choice(name string, choices []string) *Param {
	return Choice(p, name, choices, identity)
}
