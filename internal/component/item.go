package component

import "errors"

// ErrNotWeapon is returned when a non-weapon item is equipped.
var ErrNotWeapon = errors.New("item is not a weapon")

// Item is a plain value struct representing one item. Inventories store
// copies, so granting the same registry item twice yields two independent
// entries with equal values.
type Item struct {
	Name        string
	Description string
	Weapon      bool
	Damage      int // only meaningful when Weapon is true; zero or negative is allowed
}

// IsEmpty returns true when this Item is the zero value (empty slot).
func (i Item) IsEmpty() bool { return i.Name == "" }

// NewWeapon builds a weapon value.
func NewWeapon(name, description string, damage int) Item {
	return Item{Name: name, Description: description, Weapon: true, Damage: damage}
}
