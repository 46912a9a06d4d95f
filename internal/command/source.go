package command

// Source is the capability a dynamic choice queries at match time.
//
// Implementations read live, externally owned state. Candidates and Lookup
// are called on every match attempt; the engine never caches their results
// and never locks the underlying state.
type Source[T any] interface {
	// Candidates returns the values currently accepted.
	Candidates() []T
	// Lookup maps a token to a value, or reports false if the name is not
	// currently known.
	Lookup(name string) (T, bool)
}

// SourceFunc adapts a supplier and a parser to a Source.
type SourceFunc[T any] struct {
	List  func() []T
	Parse func(name string) (T, bool)
}

// Candidates calls List.
func (s SourceFunc[T]) Candidates() []T {
	if s.List == nil {
		return nil
	}
	return s.List()
}

// Lookup calls Parse.
func (s SourceFunc[T]) Lookup(name string) (T, bool) {
	if s.Parse == nil {
		var zero T
		return zero, false
	}
	return s.Parse(name)
}

// StaticSource serves a fixed list, for tests and for registries that are
// filled once at startup.
func StaticSource[T any](values []T, render func(T) string) Source[T] {
	return SourceFunc[T]{
		List: func() []T { return values },
		Parse: func(name string) (T, bool) {
			for _, v := range values {
				if render(v) == name {
					return v, true
				}
			}
			var zero T
			return zero, false
		},
	}
}
