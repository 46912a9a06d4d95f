package actions

import (
	"strconv"
	"strings"

	"github.com/vane-tools/vanectl/internal/command"
	"github.com/vane-tools/vanectl/internal/dispatchers"
	"github.com/vane-tools/vanectl/internal/domain"
	"github.com/vane-tools/vanectl/internal/registry"
)

// onlineActor adds a parameter choosing from the actors online at match time.
func onlineActor(deps Deps, p *command.Param) *command.Param {
	return command.DynamicChoice(p, "actor", deps.Actors, registry.ActorName)
}

// connect <name>
func connectCommand(deps Deps, owner command.Module) *command.Command {
	cmd := command.New("connect", owner, command.WithAliases("join"), command.WithDescription("Bring an actor online"))
	command.Exec1(cmd.Params().AnyString("name"), func(name string) bool {
		if strings.TrimSpace(name) == "" || strings.EqualFold(name, domain.Console{}.DisplayName()) {
			return false
		}
		actor, err := deps.Store.Connect(name)
		if err != nil {
			return deps.fail("connect", err)
		}
		deps.Logger.Info("actors: %s connected", actor.Name)
		deps.println(deps.Styler.Success(actor.Name + " connected"))
		return true
	})
	return cmd
}

// disconnect <actor>
func disconnectCommand(deps Deps, owner command.Module) *command.Command {
	cmd := command.New("disconnect", owner, command.WithAliases("kick"), command.WithDescription("Take an actor offline"))
	command.Exec1(onlineActor(deps, cmd.Params()), func(a domain.Actor) bool {
		if err := deps.Store.Disconnect(a.Name); err != nil {
			return deps.fail("disconnect", err)
		}
		deps.Logger.Info("actors: %s disconnected", a.Name)
		deps.println(a.Name + " disconnected")
		return true
	})
	return cmd
}

// who
func whoCommand(deps Deps, owner command.Module) *command.Command {
	cmd := command.New("who", owner, command.WithAliases("list"), command.WithDescription("List online actors"))
	command.Exec0(cmd.Params(), func() bool {
		online := deps.Actors.Candidates()
		s := deps.Styler
		deps.println(s.Header("online") + s.Muted(" ("+strconv.Itoa(len(online))+")"))
		for _, a := range online {
			name := a.Name
			if a.Op {
				name += s.Info(" [op]")
			}
			deps.println("  " + name)
		}
		return true
	})
	return cmd
}

// op <actor>
// deop <actor>
func opCommands(deps Deps, owner command.Module) []*command.Command {
	build := func(name, description string, op bool) *command.Command {
		cmd := command.New(name, owner, command.WithDescription(description))
		command.Exec1(onlineActor(deps, cmd.Params()), func(a domain.Actor) bool {
			if a.Op == op {
				deps.println(deps.Styler.Muted(a.Name + " is unchanged"))
				return true
			}
			if err := deps.Store.SetOp(a.Name, op); err != nil {
				return deps.fail(name, err)
			}
			deps.Logger.Info("actors: %s %s by %s", name, a.Name, deps.sender().DisplayName())
			if op {
				deps.println(deps.Styler.Success(a.Name + " is now an operator"))
			} else {
				deps.println(a.Name + " is no longer an operator")
			}
			return true
		})
		return cmd
	}
	return []*command.Command{
		build("op", "Make an actor an operator", true),
		build("deop", "Revoke operator status", false),
	}
}

// grant <actor> <permission>
// grant <actor>
// revoke <actor> <permission>
func grantCommands(deps Deps, owner command.Module) []*command.Command {
	s := deps.Styler

	grant := command.New("grant", owner, command.WithDescription("Grant a permission pattern or list an actor's grants"))
	actor := onlineActor(deps, grant.Params())
	command.Exec1(actor, func(a domain.Actor) bool {
		patterns, err := deps.Store.Permissions(a.Name)
		if err != nil {
			return deps.fail("grant", err)
		}
		if len(patterns) == 0 {
			deps.println(s.Muted(a.Name + " has no grants"))
			return true
		}
		for _, p := range patterns {
			deps.println("  " + p)
		}
		return true
	})
	command.Exec2(actor.AnyString("permission"), func(a domain.Actor, pattern string) bool {
		if err := dispatchers.ValidatePattern(pattern); err != nil {
			return false
		}
		if err := deps.Store.Grant(a.Name, pattern); err != nil {
			return deps.fail("grant", err)
		}
		deps.Logger.Info("actors: granted %s to %s", pattern, a.Name)
		deps.println(s.Success("granted " + pattern + " to " + a.Name))
		return true
	})

	revoke := command.New("revoke", owner, command.WithDescription("Remove a permission pattern"))
	command.Exec2(onlineActor(deps, revoke.Params()).AnyString("permission"), func(a domain.Actor, pattern string) bool {
		if err := deps.Store.Revoke(a.Name, pattern); err != nil {
			return deps.fail("revoke", err)
		}
		deps.Logger.Info("actors: revoked %s from %s", pattern, a.Name)
		deps.println("revoked " + pattern + " from " + a.Name)
		return true
	})

	return []*command.Command{grant, revoke}
}
