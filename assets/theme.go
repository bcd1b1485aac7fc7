package assets

import (
	"text-rpg/internal/gamemap"
	"text-rpg/internal/generate"
)

// ThemeDef describes one world.
type ThemeDef struct {
	Theme       gamemap.Theme
	Description string // completes "You are in ..."
	Table       generate.Table
}

// ThemeDefs is indexed by gamemap.Theme.
var ThemeDefs = [...]ThemeDef{
	gamemap.Earth: {
		Theme:       gamemap.Earth,
		Description: "a modern landscape",
		Table: generate.Table{
			Enemy: 0.10, NPC: 0.05, Merchant: 0.04, Treasure: 0.03,
			Majors:     []gamemap.Content{gamemap.BossEnemy, gamemap.TreasureVault, gamemap.MasterMerchant},
			MaxPortals: generate.DefaultPortals,
		},
	},
	gamemap.HeavenlyMountains: {
		Theme:       gamemap.HeavenlyMountains,
		Description: "ethereal mountain peaks",
		Table: generate.Table{
			Enemy: 0.06, NPC: 0.08, Merchant: 0.03, Treasure: 0.05,
			Majors:     []gamemap.Content{gamemap.Dragon, gamemap.AncientPortal, gamemap.TreasureVault},
			MaxPortals: generate.DefaultPortals,
		},
	},
	gamemap.StoneCaverns: {
		Theme:       gamemap.StoneCaverns,
		Description: "dark stone caverns",
		Table: generate.Table{
			Enemy: 0.14, NPC: 0.02, Merchant: 0.02, Treasure: 0.06,
			Majors:     []gamemap.Content{gamemap.BossEnemy, gamemap.TreasureVault, gamemap.Dragon},
			MaxPortals: generate.DefaultPortals,
		},
	},
	gamemap.FutureCity: {
		Theme:       gamemap.FutureCity,
		Description: "a futuristic cityscape",
		Table: generate.Table{
			Enemy: 0.08, NPC: 0.06, Merchant: 0.08, Treasure: 0.02,
			Majors:     []gamemap.Content{gamemap.MasterMerchant, gamemap.AncientPortal, gamemap.BossEnemy},
			MaxPortals: generate.DefaultPortals,
		},
	},
	gamemap.PrehistoricJungle: {
		Theme:       gamemap.PrehistoricJungle,
		Description: "a dense prehistoric jungle",
		Table: generate.Table{
			Enemy: 0.18, NPC: 0.02, Merchant: 0.01, Treasure: 0.04,
			Majors:     []gamemap.Content{gamemap.Dragon, gamemap.BossEnemy, gamemap.TreasureVault},
			MaxPortals: generate.DefaultPortals,
		},
	},
	gamemap.Atlantis: {
		Theme:       gamemap.Atlantis,
		Description: "the underwater city of Atlantis",
		Table: generate.Table{
			Enemy: 0.08, NPC: 0.05, Merchant: 0.05, Treasure: 0.07,
			Majors:     []gamemap.Content{gamemap.AncientPortal, gamemap.TreasureVault, gamemap.Dragon},
			MaxPortals: generate.DefaultPortals,
		},
	},
}

// Theme returns the definition for t.
func Theme(t gamemap.Theme) ThemeDef {
	if int(t) < len(ThemeDefs) {
		return ThemeDefs[t]
	}
	return ThemeDefs[gamemap.Earth]
}
