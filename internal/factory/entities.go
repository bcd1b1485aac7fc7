package factory

import (
	"text-rpg/assets"
	"text-rpg/internal/component"
	"text-rpg/internal/system"
)

// Starting stats for a fresh adventurer.
const (
	StartHealth = 10
	StartGold   = 0
)

// NewPlayer returns a fresh adventurer: 10/10 health, no gold, nothing
// carried, human.
func NewPlayer() *component.Player {
	return &component.Player{
		Health: component.Health{Current: StartHealth, Max: StartHealth},
		Gold:   StartGold,
	}
}

// GiveStarterKit grants the old man's offering: gold and an equipped Stick.
func GiveStarterKit(p *component.Player) {
	p.AddGold(assets.StarterGold)
	p.AddItem(assets.Stick)
	// The registry Stick is always a weapon.
	_ = p.Equip(assets.Stick)
}

// NewBattle starts a battle against the named enemy. Unregistered names get
// the generic 2-health template.
func NewBattle(name string) system.Battle {
	return system.NewBattle(assets.EnemyByName(name))
}
