package assets

import "text-rpg/internal/component"

// Weapon registry. Values are copied into inventories when granted.
var (
	Stick          = component.NewWeapon("Stick", "A simple wooden stick", 1)
	LegendaryBlade = component.NewWeapon("Legendary Blade", "A blade forged before the worlds split apart", 3)
)

// Shop prices and rewards for the fixed-price interactions.
const (
	StarterGold = 10 // offered by the old man at the start

	PotionCost     = 10 // merchant choice 1
	UpgradeCost    = 15 // merchant choice 2
	UpgradeBonus   = 1
	BladeCost      = 50 // master merchant choice 1
	ElixirCost     = 30 // master merchant choice 2
	ElixirMaxBonus = 5
)

// Weapons lists every registered weapon by name.
var Weapons = map[string]component.Item{
	Stick.Name:          Stick,
	LegendaryBlade.Name: LegendaryBlade,
}
