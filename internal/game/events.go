package game

import (
	"fmt"

	"text-rpg/assets"
	"text-rpg/internal/factory"
	"text-rpg/internal/gamemap"
	"text-rpg/internal/system"
	"text-rpg/internal/world"
)

func (g *Game) handleFirstEncounter(choice int) Response {
	switch choice {
	case 1:
		return g.toMap("You reject the offering and move on. The old man looks disappointed as you walk away.")
	case 2:
		factory.GiveStarterKit(g.Player)
		g.run.GoldEarned += assets.StarterGold
		return g.toMap("You accept the offering and thank the old man. The old man smiles and wishes you good luck on your journey.")
	case 3:
		factory.GiveStarterKit(g.Player)
		g.run.GoldEarned += assets.StarterGold
		return g.startBattle(factory.NewBattle(assets.OldMan.Name), "You take the offering and then attack the old man!", false)
	}
	return g.toMap("Invalid choice. You hesitate and the old man walks away.")
}

// mapOptions lists the legal moves followed by the fixed map actions.
func (g *Game) mapOptions() []string {
	opts := g.World.MoveOptions()
	return append(opts, assets.OptionExplore, assets.OptionInventory, assets.OptionQuit)
}

func (g *Game) handleMap(choice int) Response {
	dirs := g.World.Directions()
	switch {
	case choice >= 1 && choice <= len(dirs):
		return g.move(dirs[choice-1])
	case choice == len(dirs)+1:
		return g.toLocation(g.World.Describe(g.World.CurrentCell()))
	case choice == len(dirs)+2:
		return g.toInventory("")
	case choice == len(dirs)+3:
		return g.Quit()
	}
	return g.reprompt("Invalid choice. Try again.")
}

func (g *Game) move(d world.Direction) Response {
	res, msg := g.World.Move(d)
	if res == world.MoveBlocked {
		return g.toMap(msg)
	}
	sun, died := g.actionTaken()
	msg = joinLines(msg, sun)
	if died {
		return g.die(msg)
	}
	return g.arrive(msg)
}

// arrive ambushes the player on an enemy cell, shows the location prompt
// for any other non-empty cell and the map otherwise.
func (g *Game) arrive(msg string) Response {
	switch g.World.CurrentCell() {
	case gamemap.Empty:
		return g.toMap(msg)
	case gamemap.Enemy:
		msg = joinLines(msg, "A goblin leaps out at you!")
		return g.startBattle(factory.NewBattle(assets.Goblin.Name), msg, true)
	}
	return g.toLocation(msg)
}

// locationOptions lists the three actions for the current cell, then
// "Continue exploring", then the portal exit where there is one.
func (g *Game) locationOptions() []string {
	cell := g.World.CurrentCell()
	opts := append(world.Actions(cell), assets.OptionContinue)
	if cell.IsPortal() {
		opts = append(opts, assets.OptionPortal)
	}
	return opts
}

func (g *Game) toLocation(msg string) Response {
	return g.respond(EventLocation, msg, g.locationOptions())
}

func (g *Game) handleLocation(choice int) Response {
	cell := g.World.CurrentCell()
	switch {
	case choice >= 1 && choice <= 3:
		return g.interact(cell, choice)
	case choice == 4:
		return g.toMap("You decide to continue exploring.")
	case choice == 5 && cell.IsPortal():
		return g.stepThroughPortal()
	}
	return g.reprompt("Invalid choice. Try again.")
}

func (g *Game) interact(cell gamemap.Content, choice int) Response {
	goldBefore := g.Player.Gold
	out, err := system.Interact(cell, choice, g.Player, g.rng)
	if err != nil {
		return g.reprompt("Invalid choice. Try again.")
	}
	if gained := g.Player.Gold - goldBefore; gained > 0 {
		g.run.GoldEarned += gained
	}
	if out.ClearCell {
		g.World.ClearCurrent()
	}

	sun, died := g.actionTaken()
	msg := joinLines(out.Message, sun)
	if died {
		return g.die(msg)
	}
	if out.Battle != nil {
		return g.startBattle(system.NewBattle(*out.Battle), msg, cell == gamemap.Enemy)
	}
	return g.toMap(msg)
}

func (g *Game) stepThroughPortal() Response {
	from := g.World.Current
	to := g.World.OtherTheme()
	g.World.ChangeWorld(to)
	g.logger.Debug("world changed", "from", from.String(), "to", to.String())

	msg := fmt.Sprintf("You step through the portal and arrive in %s.", to)
	sun, died := g.actionTaken()
	msg = joinLines(msg, g.World.Describe(g.World.CurrentCell()), sun)
	if died {
		return g.die(msg)
	}
	return g.arrive(msg)
}

func (g *Game) handleBattle(choice int) Response {
	if g.battle == nil {
		return g.toMap("")
	}
	act, err := system.ParseBattleAction(choice)
	if err != nil {
		return g.reprompt("Invalid choice. You hesitate.")
	}
	next, res, err := system.ResolveTurn(*g.battle, g.Player, act, g.rng)
	if err != nil {
		g.battle = nil
		return g.toMap("")
	}
	g.battle = &next
	g.run.DamageTaken += res.DamageTaken
	g.run.GoldEarned += res.Reward

	switch next.State {
	case system.Won:
		g.run.BattlesWon++
		if g.clearOnWin {
			g.World.ClearCurrent()
		}
		g.logger.Debug("battle won", "enemy", next.Enemy, "reward", res.Reward)
		g.battle = nil
		return g.toMap(res.Message)
	case system.Fled:
		g.run.BattlesFled++
		g.battle = nil
		return g.toMap(res.Message)
	case system.Lost:
		g.run.CauseOfDeath = next.Enemy
		return g.die(res.Message)
	}
	return g.respond(EventBattle, res.Message, assets.BattleOptions)
}

func (g *Game) handleDeath(choice int) Response {
	fate := Fate(choice)
	prefix := ""
	if fate != FateRestart && fate != FateVampire {
		if !g.interactive {
			return g.reprompt("Invalid choice. Choose your fate.")
		}
		fate = FateRestart
		prefix = "Invalid choice. Defaulting to option 1."
	}
	msg, err := g.ResolveDeath(fate)
	if isInvalid(err) {
		return g.reprompt("Invalid choice. Choose your fate.")
	}
	g.logger.Debug("death resolved", "fate", fate.String())
	g.endLife(fate.String())
	return g.toMap(joinLines(prefix, msg))
}
