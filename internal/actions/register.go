package actions

import (
	"errors"
	"fmt"

	"github.com/vane-tools/vanectl/internal/command"
	"github.com/vane-tools/vanectl/internal/dispatchers"
)

// Modules owning the built-in commands. Permissions follow them: "give"
// requires vane.world.commands.give.
const (
	ModuleCore  = "core"
	ModuleAdmin = "admin"
	ModuleWorld = "world"
)

// Register adds the built-in modules to deps.Modules and their commands
// to deps.Dispatcher.
func Register(deps Deps) error {
	if deps.Dispatcher == nil || deps.Modules == nil || deps.Out == nil ||
		deps.Store == nil || deps.Actors == nil || deps.History == nil || deps.Config == nil {
		return errors.New("register built-ins: missing dependency")
	}
	deps = deps.withDefaults()

	core, err := deps.Modules.Register(ModuleCore, "Help, history, modules and settings")
	if err != nil {
		return fmt.Errorf("register built-ins: %w", err)
	}
	admin, err := deps.Modules.Register(ModuleAdmin, "Connections, operators and grants")
	if err != nil {
		return fmt.Errorf("register built-ins: %w", err)
	}
	worldMod, err := deps.Modules.Register(ModuleWorld, "Items, positions, messages and time")
	if err != nil {
		return fmt.Errorf("register built-ins: %w", err)
	}

	byCategory := map[dispatchers.CommandCategory][]*command.Command{
		dispatchers.CategoryGeneral: {
			helpCommand(deps, core),
			versionCommand(deps, core),
			historyCommand(deps, core),
		},
		dispatchers.CategoryModules: {vaneCommand(deps, core)},
		dispatchers.CategoryConfig: {
			configCommand(deps, core),
			themeCommand(deps, core),
		},
		dispatchers.CategoryActors: append([]*command.Command{
			connectCommand(deps, admin),
			disconnectCommand(deps, admin),
			whoCommand(deps, admin),
		}, append(opCommands(deps, admin), grantCommands(deps, admin)...)...),
		dispatchers.CategoryWorld: {
			giveCommand(deps, worldMod),
			tpCommand(deps, worldMod),
			msgCommand(deps, worldMod),
			timeCommand(deps, worldMod),
		},
	}

	for _, category := range []dispatchers.CommandCategory{
		dispatchers.CategoryGeneral,
		dispatchers.CategoryModules,
		dispatchers.CategoryConfig,
		dispatchers.CategoryActors,
		dispatchers.CategoryWorld,
	} {
		for _, cmd := range byCategory[category] {
			if err := deps.Dispatcher.Register(cmd, category); err != nil {
				return fmt.Errorf("register built-ins: %w", err)
			}
		}
	}
	return nil
}
