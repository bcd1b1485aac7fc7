package assets

import "text-rpg/internal/gamemap"

// EnemyDef is a battle template. Runtime battles copy these stats.
type EnemyDef struct {
	Name   string
	Health int
	Attack int
}

// Enemy templates.
var (
	Goblin        = EnemyDef{Name: "Goblin", Health: 3, Attack: 1}
	OldMan        = EnemyDef{Name: "Old Man", Health: 5, Attack: 1}
	AncientDragon = EnemyDef{Name: "Ancient Dragon", Health: 15, Attack: 1}
	BossMonster   = EnemyDef{Name: "Boss Monster", Health: 10, Attack: 1}
)

var enemiesByName = map[string]EnemyDef{
	Goblin.Name:        Goblin,
	OldMan.Name:        OldMan,
	AncientDragon.Name: AncientDragon,
	BossMonster.Name:   BossMonster,
}

// EnemyByName returns the registered template, or a weak 2-health enemy
// carrying the given name when none is registered.
func EnemyByName(name string) EnemyDef {
	if def, ok := enemiesByName[name]; ok {
		return def
	}
	return EnemyDef{Name: name, Health: 2, Attack: 1}
}

// EnemyFor returns the template fought at a cell of the given content.
func EnemyFor(c gamemap.Content) (EnemyDef, bool) {
	switch c {
	case gamemap.Enemy:
		return Goblin, true
	case gamemap.Dragon:
		return AncientDragon, true
	case gamemap.BossEnemy:
		return BossMonster, true
	}
	return EnemyDef{}, false
}
