package usage

import "fmt"

// MissingArgument is returned when the tokens ran out before a required parameter.
func MissingArgument(position int, expected string) *Diagnostic {
	return &Diagnostic{
		Kind:     ErrMissingArgument,
		Message:  fmt.Sprintf("missing argument: %s", expected),
		Position: position,
		Expected: expected,
	}
}

// InvalidArgument is returned when a token is present but rejected by a converter or lookup.
func InvalidArgument(position int, expected, token string) *Diagnostic {
	return &Diagnostic{
		Kind:     ErrInvalidArgument,
		Message:  fmt.Sprintf("invalid %s: '%s'", expected, token),
		Position: position,
		Token:    token,
		Expected: expected,
	}
}

// InvalidChoice is an InvalidArgument that also carries the accepted values.
func InvalidChoice(position int, expected, token string, choices []string) *Diagnostic {
	d := InvalidArgument(position, expected, token)
	d.Choices = choices
	if len(choices) > 0 && len(choices) <= maxListedChoices {
		d.Message = fmt.Sprintf("invalid %s: '%s' (expected one of %s)", expected, token, quoteList(choices))
	}
	return d
}

// ExcessArgument is returned when a complete path was found but tokens remain.
func ExcessArgument(position int, token string) *Diagnostic {
	return &Diagnostic{
		Kind:     ErrExcessArgument,
		Message:  fmt.Sprintf("excess argument: '%s'", token),
		Position: position,
		Token:    token,
	}
}

// ArityMismatch describes a callback whose signature does not fit its grammar path.
// It is raised while a command tree is assembled, never during resolution.
func ArityMismatch(path string, want, got int) *Diagnostic {
	return &Diagnostic{
		Kind:     ErrArityMismatch,
		Message:  fmt.Sprintf("%s: callback takes %d argument(s) but the path produces %d", path, got, want),
		Position: NoPosition,
		Expected: path,
	}
}

// ArgumentTypeMismatch is an ArityMismatch for a parameter whose type cannot be passed to the callback.
func ArgumentTypeMismatch(path string, index int, produced, accepted string) *Diagnostic {
	return &Diagnostic{
		Kind:     ErrArityMismatch,
		Message:  fmt.Sprintf("%s: argument %d is %s but the callback expects %s", path, index+1, produced, accepted),
		Position: NoPosition,
		Expected: path,
	}
}

const maxListedChoices = 8
