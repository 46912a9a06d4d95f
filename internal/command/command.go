// Package command implements declarative command grammars.
//
// A Command owns a tree of Params. Each Param matches one token (a literal,
// a choice, a dynamic choice or any convertible token) and lists the
// alternatives that may follow it; executors terminate a path and receive
// the typed values produced along it:
//
//	give := command.New("give", core)
//	item := command.Choice(give.Params(), "item", items, Item.Name)
//	command.Exec2(item.Int("amount"), func(it Item, n int) bool { ... })
//
// Resolution is an ordered depth-first search: the first complete path in
// declaration order wins, so specific literals must be declared before
// generic fallbacks.
package command

import (
	"fmt"
	"strings"
)

// Module is the subsystem that owns a command. Callbacks use it for
// identity and permission lookups; the engine itself never calls it.
type Module interface {
	Name() string
}

// Command is the root of a grammar tree.
type Command struct {
	Name        string
	Aliases     []string
	Description string
	Permission  string
	Module      Module

	root *Param
}

// Option configures a Command.
type Option func(*Command)

// WithAliases adds alternative labels for the command.
func WithAliases(aliases ...string) Option {
	return func(c *Command) {
		c.Aliases = append(c.Aliases, aliases...)
	}
}

// WithDescription sets the one-line description shown by help.
func WithDescription(description string) Option {
	return func(c *Command) {
		c.Description = description
	}
}

// WithPermission overrides the default permission string.
func WithPermission(permission string) Option {
	return func(c *Command) {
		c.Permission = permission
	}
}

// New creates a command owned by module. Unless overridden, the permission
// is "vane.<module>.commands.<name>".
func New(name string, module Module, opts ...Option) *Command {
	c := &Command{
		Name:   name,
		Module: module,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.Permission == "" {
		owner := "core"
		if module != nil {
			owner = strings.ToLower(module.Name())
		}
		c.Permission = fmt.Sprintf("vane.%s.commands.%s", owner, strings.ToLower(name))
	}

	c.root = &Param{command: c}
	c.root.matcher = labelMatcher{cmd: c}
	return c
}

// Params returns the root node; the command's grammar is built from it.
func (c *Command) Params() *Param {
	return c.root
}

// Labels returns the name followed by the aliases.
func (c *Command) Labels() []string {
	return append([]string{c.Name}, c.Aliases...)
}

// Matches reports whether label names this command, ignoring case.
func (c *Command) Matches(label string) bool {
	for _, l := range c.Labels() {
		if strings.EqualFold(l, label) {
			return true
		}
	}
	return false
}

// Check resolves tokens against the grammar without executing anything.
// tokens[0] is the command label. The result is either a *Match or a
// *CombinedError.
func (c *Command) Check(tokens []string) CheckResult {
	result := c.root.checkAccept(tokens, 0, nil)
	if f, ok := result.(*Failure); ok {
		return combine([]CheckResult{f})
	}
	return result
}

// ResolveAndExecute resolves tokens and, on a match, runs the callback.
// It returns the callback's consumed signal, or false and a *CombinedError
// when no path matched.
func (c *Command) ResolveAndExecute(tokens []string) (bool, error) {
	switch r := c.Check(tokens).(type) {
	case *Match:
		return r.Execute(), nil
	case *CombinedError:
		return false, r
	default:
		return false, fmt.Errorf("command %s: unexpected check result %T", c.Name, r)
	}
}

// Validate reports grammar branches that can never match: nodes other
// than executors that have no children.
func (c *Command) Validate() error {
	var dead []string
	c.root.walk(func(p *Param) {
		if p.exec == nil && len(p.children) == 0 {
			dead = append(dead, p.path())
		}
	})
	if len(dead) > 0 {
		return fmt.Errorf("command %s: branches without an executor: %s", c.Name, strings.Join(dead, "; "))
	}
	return nil
}

// Usages lists one line per complete path, in declaration order.
func (c *Command) Usages() []string {
	var out []string
	c.root.walk(func(p *Param) {
		if p.exec != nil {
			out = append(out, p.parent.path())
		}
	})
	return out
}
