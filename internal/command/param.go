package command

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/vane-tools/vanectl/internal/usage"
)

// Param is one node of a command grammar: a matcher and the ordered
// alternatives that may follow it, or a terminal executor.
//
// Params are created through the builder functions (Any, Fixed, Choice,
// DynamicChoice, Exec0..Exec6) and are immutable once the command is
// registered.
type Param struct {
	command    *Command
	parent     *Param
	matcher    matcher
	exec       *executor
	children   []*Param
	types      []reflect.Type // value types produced from the root down to this node
	ignoreCase bool
}

// Command returns the command the node belongs to.
func (p *Param) Command() *Command {
	return p.command
}

// Children returns the alternatives that follow this node, in declaration order.
func (p *Param) Children() []*Param {
	out := make([]*Param, len(p.children))
	copy(out, p.children)
	return out
}

// IsExecutor reports whether the node is a terminal executor.
func (p *Param) IsExecutor() bool {
	return p.exec != nil
}

// Arity returns the number of values produced on the path ending at this node.
func (p *Param) Arity() int {
	return len(p.types)
}

// Describe returns the display form of the node: a literal or <name>.
func (p *Param) Describe() string {
	if p.matcher == nil {
		return ""
	}
	return p.matcher.describe()
}

// IgnoreCase makes literal and choice matching at this node case-insensitive.
// It returns p so it can be chained after a builder call. It panics on
// nodes other than Fixed and Choice: Any tokens go to the converter as
// typed and a DynamicChoice source decides its own lookup rules.
func (p *Param) IgnoreCase() *Param {
	if _, ok := p.matcher.(caseFolder); !ok {
		panic(fmt.Errorf("command: %s: IgnoreCase applies only to fixed and choice parameters", p.path()))
	}
	p.ignoreCase = true
	return p
}

// path renders the grammar from the command label down to p.
func (p *Param) path() string {
	var parts []string
	for n := p; n != nil; n = n.parent {
		if d := n.Describe(); d != "" {
			parts = append(parts, d)
		}
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, " ")
}

// add appends a child built around m and returns it.
func (p *Param) add(m matcher) *Param {
	if p.exec != nil {
		panic(fmt.Errorf("command: %s: executor nodes cannot have children", p.parent.path()))
	}

	types := p.types[:len(p.types):len(p.types)]
	if t := m.valueType(); t != nil {
		types = append(types, t)
	}

	child := &Param{
		command: p.command,
		parent:  p,
		matcher: m,
		types:   types,
	}
	p.children = append(p.children, child)
	return child
}

// checkAccept matches the subtree rooted at p against tokens[offset:].
// acc holds the values produced by the ancestors of p.
func (p *Param) checkAccept(tokens []string, offset int, acc []any) CheckResult {
	if p.exec != nil {
		return p.exec.checkAccept(p.command, tokens, offset, acc)
	}

	if offset >= len(tokens) {
		return &Failure{Diagnostic: usage.MissingArgument(offset, p.matcher.describe())}
	}

	value, diag := p.matcher.match(tokens[offset], offset, p.ignoreCase)
	if diag != nil {
		return &Failure{Diagnostic: diag}
	}

	if p.matcher.valueType() != nil {
		// Full slice expression: siblings must never share a backing array.
		acc = append(acc[:len(acc):len(acc)], value)
	}

	return p.checkChildren(tokens, offset, acc)
}

// checkChildren tries every child at offset+1 in declaration order and
// returns the first match, or all failures combined.
func (p *Param) checkChildren(tokens []string, offset int, acc []any) CheckResult {
	failures := make([]CheckResult, 0, len(p.children))
	for _, child := range p.children {
		result := child.checkAccept(tokens, offset+1, acc)
		if result.Good() {
			return result
		}
		failures = append(failures, result)
	}
	return combine(failures)
}

// walk visits p and its subtree depth-first in declaration order.
func (p *Param) walk(visit func(*Param)) {
	visit(p)
	for _, c := range p.children {
		c.walk(visit)
	}
}
