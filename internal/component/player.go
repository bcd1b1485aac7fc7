package component

import "fmt"

// UnarmedDamage is dealt when no weapon is equipped.
const UnarmedDamage = 1

// Player is the mutable adventurer state owned by one game.
type Player struct {
	Health
	Gold      int
	Inventory []Item
	Equipped  Item // zero value when unarmed
	IsVampire bool
}

// PlayerSnapshot is the read-only view sent to front ends.
type PlayerSnapshot struct {
	Health    int  `json:"health"`
	MaxHealth int  `json:"max_health"`
	Gold      int  `json:"gold"`
	IsVampire bool `json:"is_vampire"`
}

// TakeDamage lowers health, never below 0.
func (p *Player) TakeDamage(amount int) { p.Health.Damage(amount) }

// Heal raises health, never above MaxHealth.
func (p *Player) Heal(amount int) { p.Health.Heal(amount) }

// AddGold adjusts gold by amount (either sign).
func (p *Player) AddGold(amount int) { p.Gold += amount }

// SpendGold deducts cost when the player can afford it.
func (p *Player) SpendGold(cost int) bool {
	if p.Gold < cost {
		return false
	}
	p.Gold -= cost
	return true
}

// AddItem appends a copy of item to the inventory.
func (p *Player) AddItem(item Item) { p.Inventory = append(p.Inventory, item) }

// Equip sets item as the equipped weapon.
func (p *Player) Equip(item Item) error {
	if !item.Weapon {
		return fmt.Errorf("equip %q: %w", item.Name, ErrNotWeapon)
	}
	p.Equipped = item
	return nil
}

// Armed reports whether a weapon is equipped.
func (p *Player) Armed() bool { return !p.Equipped.IsEmpty() }

// AttackDamage returns the equipped weapon's damage, or UnarmedDamage.
func (p *Player) AttackDamage() int {
	if p.Armed() {
		return p.Equipped.Damage
	}
	return UnarmedDamage
}

// UpgradeWeapon adds bonus damage to the equipped weapon and to the first
// inventory copy of it. It reports false when unarmed.
func (p *Player) UpgradeWeapon(bonus int) bool {
	if !p.Armed() {
		return false
	}
	for i, it := range p.Inventory {
		if it == p.Equipped {
			p.Inventory[i].Damage += bonus
			break
		}
	}
	p.Equipped.Damage += bonus
	return true
}

// RaiseMaxHealth lifts the health cap by amount and heals to full.
func (p *Player) RaiseMaxHealth(amount int) {
	p.Max += amount
	p.Full()
}

// ResurrectAsVampire turns the player and restores full health. Gold,
// inventory and equipment are kept.
func (p *Player) ResurrectAsVampire() {
	p.IsVampire = true
	p.Full()
}

// Dead reports whether health has reached 0.
func (p *Player) Dead() bool { return p.Depleted() }

// Weapons returns the inventory indices holding weapons, in order.
func (p *Player) Weapons() []int {
	var out []int
	for i, it := range p.Inventory {
		if it.Weapon {
			out = append(out, i)
		}
	}
	return out
}

// Snapshot returns the front-end view of the player.
func (p *Player) Snapshot() PlayerSnapshot {
	return PlayerSnapshot{
		Health:    p.Current,
		MaxHealth: p.Max,
		Gold:      p.Gold,
		IsVampire: p.IsVampire,
	}
}
