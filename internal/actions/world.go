package actions

import (
	"fmt"
	"time"

	"github.com/vane-tools/vanectl/internal/command"
	"github.com/vane-tools/vanectl/internal/domain"
	"github.com/vane-tools/vanectl/internal/world"
)

// give <item> <amount>
// give <actor> <item> <amount>
func giveCommand(deps Deps, owner command.Module) *command.Command {
	cmd := command.New("give", owner, command.WithDescription("Give items to yourself or another actor"))

	give := func(to string, item world.Item, amount int) bool {
		if amount <= 0 {
			return false
		}
		total, err := deps.World.Give(to, item, amount)
		if err != nil {
			return deps.fail("give", err)
		}
		deps.printf("gave %d %s to %s (now %d)\n", amount, item, to, total)
		return true
	}

	self := command.Choice(cmd.Params(), "item", world.Items, world.ItemName)
	command.Exec2(self.Int("amount"), func(item world.Item, amount int) bool {
		sender := deps.sender()
		if sender.IsConsole() {
			// The console has no inventory.
			return false
		}
		return give(sender.DisplayName(), item, amount)
	})

	other := command.Choice(onlineActor(deps, cmd.Params()), "item", world.Items, world.ItemName)
	command.Exec3(other.Int("amount"), func(a domain.Actor, item world.Item, amount int) bool {
		return give(a.Name, item, amount)
	})
	return cmd
}

// tp <x> <y> <z>
// tp <actor> <x> <y> <z>
// tp <actor> <target>
func tpCommand(deps Deps, owner command.Module) *command.Command {
	cmd := command.New("tp", owner, command.WithAliases("teleport"), command.WithDescription("Teleport an actor"))

	move := func(name string, to world.Position) bool {
		from := deps.World.Teleport(name, to)
		deps.printf("teleported %s from %s to %s\n", name, deps.Styler.Muted(from.String()), to)
		return true
	}

	command.Exec3(cmd.Params().Float("x").Float("y").Float("z"), func(x, y, z float64) bool {
		sender := deps.sender()
		if sender.IsConsole() {
			return false
		}
		return move(sender.DisplayName(), world.Position{X: x, Y: y, Z: z})
	})

	actor := onlineActor(deps, cmd.Params())
	command.Exec4(actor.Float("x").Float("y").Float("z"), func(a domain.Actor, x, y, z float64) bool {
		return move(a.Name, world.Position{X: x, Y: y, Z: z})
	})
	command.Exec2(onlineActor(deps, actor), func(a, target domain.Actor) bool {
		if a.Name == target.Name {
			return false
		}
		return move(a.Name, deps.World.Position(target.Name))
	})
	return cmd
}

// msg <actor> <message>
func msgCommand(deps Deps, owner command.Module) *command.Command {
	cmd := command.New("msg", owner, command.WithAliases("tell", "w"), command.WithDescription("Send a private message"))
	command.Exec2(onlineActor(deps, cmd.Params()).AnyString("message"), func(to domain.Actor, message string) bool {
		from := deps.sender().DisplayName()
		deps.Logger.Debug("msg: %s -> %s: %s", from, to.Name, message)
		deps.printf("%s %s\n", deps.Styler.Muted(fmt.Sprintf("[%s -> %s]", from, to.Name)), message)
		return true
	})
	return cmd
}

// time
// time set <day|noon|night|midnight>
// time add <duration>
func timeCommand(deps Deps, owner command.Module) *command.Command {
	cmd := command.New("time", owner, command.WithDescription("Show or change the time of day"))

	show := func() bool {
		tick := deps.World.Time()
		deps.printf("it is %s (tick %d)\n", deps.formatter().GameClock(tick), tick)
		return true
	}

	command.Exec0(cmd.Params(), show)

	set := cmd.Params().Fixed("set")
	for _, preset := range world.TimePresets {
		command.Exec2(command.Fixed(set, preset, world.TimePreset.String), func(_ string, p world.TimePreset) bool {
			deps.World.SetTime(p)
			return show()
		})
	}

	command.Exec2(cmd.Params().Fixed("add").Duration("duration"), func(_ string, d time.Duration) bool {
		if d == 0 {
			return false
		}
		deps.World.AddTime(d)
		return show()
	})
	return cmd
}
