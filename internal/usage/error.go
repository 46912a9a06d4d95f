package usage

import "strings"

// Kind represents the type of diagnostic.
type Kind int

const (
	ErrUnknown Kind = iota
	ErrMissingArgument
	ErrInvalidArgument
	ErrExcessArgument
	ErrArityMismatch
	ErrUnknownCommand
	ErrPermissionDenied
	ErrInvalidFlag
	ErrNotHandled
)

func (k Kind) String() string {
	switch k {
	case ErrMissingArgument:
		return "missing argument"
	case ErrInvalidArgument:
		return "invalid argument"
	case ErrExcessArgument:
		return "excess argument"
	case ErrArityMismatch:
		return "arity mismatch"
	case ErrUnknownCommand:
		return "unknown command"
	case ErrPermissionDenied:
		return "permission denied"
	case ErrInvalidFlag:
		return "invalid flag"
	case ErrNotHandled:
		return "not handled"
	default:
		return "unknown"
	}
}

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Unknown command
//	  - Permission denied
//	  - Arity mismatch (a broken command definition)
//	  - Not handled (the callback declined)
//
//	Exit 2: User input errors
//	  - Missing argument
//	  - Invalid argument
//	  - Excess argument
//	  - Invalid flag
var exitCodes = map[Kind]int{
	ErrUnknown:          1,
	ErrMissingArgument:  2,
	ErrInvalidArgument:  2,
	ErrExcessArgument:   2,
	ErrArityMismatch:    1,
	ErrUnknownCommand:   1,
	ErrPermissionDenied: 1,
	ErrInvalidFlag:      2,
	ErrNotHandled:       1,
}

// NoPosition marks a diagnostic that is not tied to a token.
const NoPosition = -1

// Diagnostic is a user-facing description of why input was rejected.
//
// Message is plain text. Styling is applied by the renderer from the
// structured fields, never baked into Message.
type Diagnostic struct {
	Kind     Kind
	Message  string
	Position int      // token offset the diagnostic refers to, or NoPosition
	Token    string   // offending token, empty when the input ran out
	Expected string   // description of the parameter that was expected
	Choices  []string // candidates known at the time of the failure
	ExitCode int      // computed from Kind if zero
	cause    error
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	return d.Message
}

// Unwrap returns the converter or lookup error that caused the diagnostic, if any.
func (d *Diagnostic) Unwrap() error {
	return d.cause
}

// GetExitCode returns the appropriate exit code for this diagnostic.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (d *Diagnostic) GetExitCode() int {
	if d.ExitCode != 0 {
		return d.ExitCode
	}
	if code, ok := exitCodes[d.Kind]; ok {
		return code
	}
	return 1
}

// WithCause attaches the underlying error and returns d.
func (d *Diagnostic) WithCause(err error) *Diagnostic {
	d.cause = err
	return d
}

// Is reports whether target is a *Diagnostic of the same Kind.
// A zero-value Message in target matches any message.
func (d *Diagnostic) Is(target error) bool {
	t, ok := target.(*Diagnostic)
	if !ok {
		return false
	}
	return t.Kind == d.Kind && (t.Message == "" || t.Message == d.Message)
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = "'" + it + "'"
	}
	return strings.Join(quoted, ", ")
}

// Verify Diagnostic implements the error interface.
var _ error = (*Diagnostic)(nil)
