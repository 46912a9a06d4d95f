package dispatchers

import (
	"errors"
	"fmt"
	"path"

	"github.com/vane-tools/vanectl/internal/domain"
)

// PermissionChecker decides whether a sender may run a command.
type PermissionChecker interface {
	Allowed(sender domain.Sender, permission string) bool
}

// PermissionFunc adapts a function to PermissionChecker.
type PermissionFunc func(sender domain.Sender, permission string) bool

func (f PermissionFunc) Allowed(sender domain.Sender, permission string) bool {
	return f(sender, permission)
}

// AllowAll grants everything; used when no store is configured.
var AllowAll = PermissionFunc(func(domain.Sender, string) bool { return true })

// StorePermissions grants the console and operators everything, and other
// actors the permissions matched by their stored patterns. Patterns use
// path.Match syntax, so "vane.*.commands.*" covers every module's commands.
type StorePermissions struct {
	Store  domain.ActorStore
	Logger domain.Logger
}

func (p StorePermissions) Allowed(sender domain.Sender, permission string) bool {
	if sender.IsConsole() {
		return true
	}

	name := sender.DisplayName()
	actor, found, err := p.Store.FindByName(name)
	if err != nil {
		p.logf("permissions: find %s: %v", name, err)
		return false
	}
	if !found {
		return false
	}
	if actor.Op {
		return true
	}

	patterns, err := p.Store.Permissions(name)
	if err != nil {
		p.logf("permissions: list %s: %v", name, err)
		return false
	}
	return MatchPermission(patterns, permission)
}

func (p StorePermissions) logf(format string, args ...any) {
	if p.Logger != nil {
		p.Logger.Error(format, args...)
	}
}

// MatchPermission reports whether any pattern matches permission.
// Malformed patterns match nothing.
func MatchPermission(patterns []string, permission string) bool {
	for _, pattern := range patterns {
		if ok, err := path.Match(pattern, permission); err == nil && ok {
			return true
		}
	}
	return false
}

// ValidatePattern reports whether pattern can be used as a grant.
func ValidatePattern(pattern string) error {
	if pattern == "" {
		return errors.New("empty permission pattern")
	}
	if _, err := path.Match(pattern, ""); err != nil {
		return fmt.Errorf("permission pattern %q: %w", pattern, err)
	}
	return nil
}
