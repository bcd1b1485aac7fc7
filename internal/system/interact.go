package system

import (
	"errors"
	"fmt"

	"text-rpg/assets"
	"text-rpg/internal/component"
	"text-rpg/internal/dice"
	"text-rpg/internal/gamemap"
)

// ErrInvalidChoice is returned for a choice outside the offered options.
var ErrInvalidChoice = errors.New("invalid choice")

// Outcome is the result of one location interaction.
type Outcome struct {
	Message string
	// Battle is set when the interaction starts a fight.
	Battle *assets.EnemyDef
	// ClearCell asks the caller to empty the cell the player stands on.
	ClearCell bool

	fight bool
}

// interaction resolves one (content, choice) pair.
type interaction func(p *component.Player, rng dice.Rand) Outcome

// Interact applies the 1-based choice for the given cell content to p.
func Interact(c gamemap.Content, choice int, p *component.Player, rng dice.Rand) (Outcome, error) {
	row, ok := interactions[c]
	if !ok {
		return Outcome{}, fmt.Errorf("interact with %v: %w", c, ErrInvalidChoice)
	}
	if choice < 1 || choice > len(row) {
		return Outcome{}, fmt.Errorf("interact with %v choice %d: %w", c, choice, ErrInvalidChoice)
	}
	out := row[choice-1](p, rng)
	if out.fight {
		def, ok := assets.EnemyFor(c)
		if !ok {
			return Outcome{}, fmt.Errorf("no enemy guards %v", c)
		}
		out.Battle = &def
	}
	return out, nil
}

var interactions = map[gamemap.Content][3]interaction{
	gamemap.Enemy: {
		func(p *component.Player, rng dice.Rand) Outcome {
			return fight("You charge at the Goblin!")
		},
		func(p *component.Player, rng dice.Rand) Outcome {
			if dice.Chance(rng, 0.6) {
				return say("You slip past the Goblin unnoticed.")
			}
			return fight("The Goblin spots you! Battle looms.")
		},
		func(p *component.Player, rng dice.Rand) Outcome {
			return say("You watch the Goblin from a distance. It scratches itself and grumbles.")
		},
	},
	gamemap.NPC: {
		func(p *component.Player, rng dice.Rand) Outcome {
			return say("The stranger tells you a long story about their goat.")
		},
		func(p *component.Player, rng dice.Rand) Outcome {
			return say("'Strange things lie beyond the portals,' the stranger warns.")
		},
		func(p *component.Player, rng dice.Rand) Outcome {
			g := dice.Between(rng, 3, 8)
			p.AddGold(g)
			return say(fmt.Sprintf("You help the stranger with a small quest and earn %d gold.", g))
		},
	},
	gamemap.Merchant: {
		func(p *component.Player, rng dice.Rand) Outcome {
			if !p.SpendGold(assets.PotionCost) {
				return say("The merchant shakes their head. 'Come back with 10 gold.'")
			}
			h := dice.Between(rng, 3, 7)
			p.Heal(h)
			return say(fmt.Sprintf("You drink the potion and recover %d health.", h))
		},
		func(p *component.Player, rng dice.Rand) Outcome {
			if !p.SpendGold(assets.UpgradeCost) {
				return say("The merchant laughs. 'Upgrades cost 15 gold, friend.'")
			}
			if !p.UpgradeWeapon(assets.UpgradeBonus) {
				return say("The merchant stitches a fine new strap onto your pack. You feel better equipped.")
			}
			return say(fmt.Sprintf("The merchant hones your %s. It now deals %d damage.", p.Equipped.Name, p.Equipped.Damage))
		},
		func(p *component.Player, rng dice.Rand) Outcome {
			g := dice.Between(rng, 2, 6)
			p.AddGold(g)
			return say(fmt.Sprintf("You sell some trinkets for %d gold.", g))
		},
	},
	gamemap.Treasure: {
		func(p *component.Player, rng dice.Rand) Outcome {
			g := dice.Between(rng, 8, 15)
			p.AddGold(g)
			out := say(fmt.Sprintf("You grab the treasure: %d gold!", g))
			out.ClearCell = true
			return out
		},
		func(p *component.Player, rng dice.Rand) Outcome {
			if dice.Chance(rng, 0.3) {
				g := dice.Between(rng, 12, 20)
				p.AddGold(g)
				return say(fmt.Sprintf("You find and disarm a trap, revealing a hidden stash of %d gold!", g))
			}
			g := dice.Between(rng, 8, 15)
			p.AddGold(g)
			return say(fmt.Sprintf("No traps here. You collect %d gold.", g))
		},
		func(p *component.Player, rng dice.Rand) Outcome {
			g := dice.Between(rng, 5, 10)
			p.AddGold(g)
			return say(fmt.Sprintf("You show restraint and take only %d gold.", g))
		},
	},
	gamemap.Portal: {
		func(p *component.Player, rng dice.Rand) Outcome {
			return say("You glimpse another world swirling beyond the portal.")
		},
		func(p *component.Player, rng dice.Rand) Outcome {
			return say("The portal hums a note you almost recognise.")
		},
		func(p *component.Player, rng dice.Rand) Outcome {
			h := dice.Between(rng, 1, 3)
			p.Heal(h)
			return say(fmt.Sprintf("The portal's glow soothes you. You recover %d health.", h))
		},
	},
	gamemap.Empty: {
		func(p *component.Player, rng dice.Rand) Outcome {
			h := dice.Between(rng, 1, 3)
			p.Heal(h)
			return say(fmt.Sprintf("You rest for a while and recover %d health.", h))
		},
		func(p *component.Player, rng dice.Rand) Outcome {
			if dice.Chance(rng, 0.3) {
				g := dice.Between(rng, 1, 4)
				p.AddGold(g)
				return say(fmt.Sprintf("You search the area and find %d gold.", g))
			}
			return say("You search the area but find nothing.")
		},
		func(p *component.Player, rng dice.Rand) Outcome {
			h := dice.Between(rng, 2, 5)
			p.Heal(h)
			return say(fmt.Sprintf("You set up camp and recover %d health.", h))
		},
	},
	gamemap.Dragon: {
		func(p *component.Player, rng dice.Rand) Outcome {
			return fight("You challenge the Ancient Dragon to combat!")
		},
		func(p *component.Player, rng dice.Rand) Outcome {
			if dice.Chance(rng, 0.3) {
				g := dice.Between(rng, 30, 50)
				p.AddGold(g)
				return say(fmt.Sprintf("The dragon is amused by your words and tosses you %d gold.", g))
			}
			return fight("Negotiation failed! The dragon roars and battle looms.")
		},
		func(p *component.Player, rng dice.Rand) Outcome {
			if dice.Chance(rng, 0.4) {
				return say("You sneak past the sleeping dragon.")
			}
			return fight("The dragon's eye snaps open. Battle is inevitable!")
		},
	},
	gamemap.TreasureVault: {
		func(p *component.Player, rng dice.Rand) Outcome {
			g := dice.Between(rng, 50, 100)
			p.AddGold(g)
			return say(fmt.Sprintf("The seal shatters! You haul out %d gold.", g))
		},
		func(p *component.Player, rng dice.Rand) Outcome {
			g := dice.Between(rng, 30, 60)
			p.AddGold(g)
			return say(fmt.Sprintf("You find the key hidden nearby and unlock %d gold.", g))
		},
		func(p *component.Player, rng dice.Rand) Outcome {
			h := dice.Between(rng, 5, 10)
			p.Heal(h)
			return say(fmt.Sprintf("Studying the locks fills you with ancient vigour. You recover %d health.", h))
		},
	},
	gamemap.MasterMerchant: {
		func(p *component.Player, rng dice.Rand) Outcome {
			if !p.SpendGold(assets.BladeCost) {
				return say("'The legendary blade costs 50 gold,' the master merchant says coolly.")
			}
			p.AddItem(assets.LegendaryBlade)
			// Equipping a registry weapon cannot fail.
			_ = p.Equip(assets.LegendaryBlade)
			return say("You buy the Legendary Blade and equip it. Power courses through your arm.")
		},
		func(p *component.Player, rng dice.Rand) Outcome {
			if !p.SpendGold(assets.ElixirCost) {
				return say("'The master elixir costs 30 gold,' the master merchant says coolly.")
			}
			p.RaiseMaxHealth(assets.ElixirMaxBonus)
			return say(fmt.Sprintf("You drink the master elixir. Your maximum health rises to %d and you are fully healed.", p.Max))
		},
		func(p *component.Player, rng dice.Rand) Outcome {
			g := dice.Between(rng, 20, 40)
			p.AddGold(g)
			return say(fmt.Sprintf("You trade rare items and earn %d gold.", g))
		},
	},
	gamemap.AncientPortal: {
		func(p *component.Player, rng dice.Rand) Outcome {
			return say("The portal flares to life, then flickers. It needs a traveller willing to step through.")
		},
		func(p *component.Player, rng dice.Rand) Outcome {
			h := dice.Between(rng, 3, 8)
			p.Heal(h)
			return say(fmt.Sprintf("The runes glow as you read them. You recover %d health.", h))
		},
		func(p *component.Player, rng dice.Rand) Outcome {
			g := dice.Between(rng, 10, 25)
			p.AddGold(g)
			return say(fmt.Sprintf("The portal answers your energy with a shower of %d gold.", g))
		},
	},
	gamemap.BossEnemy: {
		func(p *component.Player, rng dice.Rand) Outcome {
			return fight("You engage the Boss Monster in epic battle!")
		},
		func(p *component.Player, rng dice.Rand) Outcome {
			return say("You study the Boss Monster and spot a weakness in its guard. You feel you have the advantage.")
		},
		func(p *component.Player, rng dice.Rand) Outcome {
			if dice.Chance(rng, 0.6) {
				return say("You retreat in good order. The Boss Monster loses interest.")
			}
			return fight("Your retreat failed! Battle looms.")
		},
	},
}

func say(msg string) Outcome { return Outcome{Message: msg} }

// fight starts a battle with whatever guards the cell.
func fight(msg string) Outcome { return Outcome{Message: msg, fight: true} }
