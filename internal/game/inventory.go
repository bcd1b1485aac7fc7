package game

import (
	"fmt"
	"strings"

	"text-rpg/assets"
)

// inventoryText renders the carried items, gold and equipped weapon.
func (g *Game) inventoryText() string {
	p := g.Player
	var b strings.Builder
	b.WriteString("===== INVENTORY =====\n")
	if len(p.Inventory) == 0 {
		b.WriteString("Your inventory is empty.\n")
	}
	for i, it := range p.Inventory {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, it.Name, it.Description)
	}
	fmt.Fprintf(&b, "\nGold: %d\n", p.Gold)
	equipped := "None"
	if p.Armed() {
		equipped = p.Equipped.Name
	}
	fmt.Fprintf(&b, "Equipped weapon: %s", equipped)
	return b.String()
}

// inventoryOptions offers one "Equip" entry per carried weapon, then "Back".
func (g *Game) inventoryOptions() []string {
	var opts []string
	for _, i := range g.Player.Weapons() {
		opts = append(opts, "Equip "+g.Player.Inventory[i].Name)
	}
	return append(opts, assets.OptionBack)
}

func (g *Game) toInventory(msg string) Response {
	return g.respond(EventInventory, joinLines(msg, g.inventoryText()), g.inventoryOptions())
}

func (g *Game) handleInventory(choice int) Response {
	weapons := g.Player.Weapons()
	switch {
	case choice >= 1 && choice <= len(weapons):
		item := g.Player.Inventory[weapons[choice-1]]
		if err := g.Player.Equip(item); err != nil {
			return g.toInventory(err.Error())
		}
		return g.toInventory(fmt.Sprintf("You equip the %s.", item.Name))
	case choice == len(weapons)+1:
		return g.toMap("You put your pack away.")
	}
	return g.reprompt("Invalid choice. Try again.")
}
