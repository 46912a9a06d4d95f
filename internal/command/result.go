package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vane-tools/vanectl/internal/usage"
)

// CheckResult is the outcome of matching a subtree at an offset.
// It is one of *Match, *Failure or *CombinedError.
type CheckResult interface {
	// Good reports whether the result is a complete match.
	Good() bool
	isCheckResult()
}

// Match is a complete path ending in an executor at the end of input.
type Match struct {
	Values  []any
	Command *Command
	invoke  func([]any) bool
}

func (*Match) Good() bool     { return true }
func (*Match) isCheckResult() {}

// Execute invokes the bound callback with the accumulated values and
// returns its consumed signal.
func (m *Match) Execute() bool {
	if m.invoke == nil {
		return false
	}
	return m.invoke(m.Values)
}

// Failure is a single rejected token (or missing token) at one node.
type Failure struct {
	Diagnostic *usage.Diagnostic
}

func (*Failure) Good() bool     { return false }
func (*Failure) isCheckResult() {}

// CombinedError aggregates the diagnostics of every alternative tried at a
// decision point, in declaration order.
type CombinedError struct {
	Diagnostics []*usage.Diagnostic
}

func (*CombinedError) Good() bool     { return false }
func (*CombinedError) isCheckResult() {}

// Error reports the deepest diagnostic.
func (e *CombinedError) Error() string {
	best := e.Deepest()
	if best == nil {
		return "no matching command syntax"
	}
	return best.Error()
}

// Unwrap exposes every diagnostic to errors.Is and errors.As.
func (e *CombinedError) Unwrap() []error {
	errs := make([]error, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		errs[i] = d
	}
	return errs
}

// Has reports whether any diagnostic is of the given kind.
func (e *CombinedError) Has(kind usage.Kind) bool {
	for _, d := range e.Diagnostics {
		if d.Kind == kind {
			return true
		}
	}
	return false
}

// At returns the diagnostics reported for the token at position.
func (e *CombinedError) At(position int) []*usage.Diagnostic {
	var out []*usage.Diagnostic
	for _, d := range e.Diagnostics {
		if d.Position == position {
			out = append(out, d)
		}
	}
	return out
}

// Deepest returns the diagnostic from the alternative that got furthest
// into the input. Ties go to the alternative declared first.
func (e *CombinedError) Deepest() *usage.Diagnostic {
	var best *usage.Diagnostic
	for _, d := range e.Diagnostics {
		if best == nil || d.Position > best.Position {
			best = d
		}
	}
	return best
}

// Best selects the diagnostic to show the user according to policy.
func (e *CombinedError) Best(policy Policy) *usage.Diagnostic {
	if policy == PolicyFirst {
		if len(e.Diagnostics) == 0 {
			return nil
		}
		return e.Diagnostics[0]
	}
	return e.Deepest()
}

// Policy decides which diagnostic of a CombinedError is shown to the user.
type Policy int

const (
	// PolicyDeepest prefers the alternative that consumed the most tokens.
	PolicyDeepest Policy = iota
	// PolicyFirst prefers the first alternative in declaration order.
	PolicyFirst
)

func (p Policy) String() string {
	switch p {
	case PolicyFirst:
		return "first"
	default:
		return "deepest"
	}
}

// ParsePolicy converts a config value to a Policy.
// Valid values: "deepest", "first" (case insensitive).
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "deepest":
		return PolicyDeepest, nil
	case "first":
		return PolicyFirst, nil
	default:
		return PolicyDeepest, fmt.Errorf("unknown diagnostic policy %q", s)
	}
}

// combine flattens the failed results of sibling alternatives.
func combine(results []CheckResult) *CombinedError {
	var diags []*usage.Diagnostic
	for _, r := range results {
		switch r := r.(type) {
		case *Failure:
			diags = append(diags, r.Diagnostic)
		case *CombinedError:
			diags = append(diags, r.Diagnostics...)
		}
	}
	return &CombinedError{Diagnostics: diags}
}

// AsCombined extracts a *CombinedError from err.
func AsCombined(err error) (*CombinedError, bool) {
	var ce *CombinedError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

var (
	_ CheckResult = (*Match)(nil)
	_ CheckResult = (*Failure)(nil)
	_ CheckResult = (*CombinedError)(nil)
	_ error       = (*CombinedError)(nil)
)
