// Package actions defines the built-in commands: help and history, module
// control, actor management, world commands and configuration.
package actions

import (
	"fmt"
	"time"

	"github.com/vane-tools/vanectl/internal/dispatchers"
	"github.com/vane-tools/vanectl/internal/domain"
	"github.com/vane-tools/vanectl/internal/format"
	"github.com/vane-tools/vanectl/internal/log"
	"github.com/vane-tools/vanectl/internal/registry"
	"github.com/vane-tools/vanectl/internal/ui/style"
	"github.com/vane-tools/vanectl/internal/world"
)

// Deps is everything the built-in commands act on.
type Deps struct {
	Out        domain.OutputWriter
	Styler     domain.Styler
	Dispatcher *dispatchers.Dispatcher
	Modules    *registry.Modules
	Actors     *registry.Actors
	Store      domain.ActorStore
	History    domain.CommandRecorder
	Config     domain.ConfigProvider
	World      *world.World
	Logger     domain.Logger

	// ApplyTheme restyles output after the theme changes.
	ApplyTheme func(cfg map[string]string)
	Version    func() string
	Now        func() time.Time
}

// withDefaults fills the optional fields.
func (d Deps) withDefaults() Deps {
	if d.Styler == nil {
		d.Styler = style.NopStyler{}
	}
	if d.Logger == nil {
		d.Logger = log.NopLogger{}
	}
	if d.World == nil {
		d.World = world.New()
	}
	if d.ApplyTheme == nil {
		d.ApplyTheme = func(map[string]string) {}
	}
	if d.Version == nil {
		d.Version = func() string { return "dev" }
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

// sender is whoever typed the line being executed.
func (d Deps) sender() domain.Sender {
	if s := d.Dispatcher.Sender(); s != nil {
		return s
	}
	return domain.Console{}
}

func (d Deps) printf(format string, args ...any) {
	_, _ = d.Out.Printf(format, args...)
}

func (d Deps) println(args ...any) {
	_, _ = d.Out.Println(args...)
}

// fail reports an error from a collaborator. The command still counts as
// handled: its input was fine.
func (d Deps) fail(what string, err error) bool {
	d.Logger.Error("%s: %v", what, err)
	d.println(d.Styler.Error(fmt.Sprintf("%s: %v", what, err)))
	return true
}

func (d Deps) formatter() format.Formatter {
	if d.Config == nil {
		return format.New(func(string) (string, bool) { return "", false })
	}
	return format.New(d.Config.Get)
}
