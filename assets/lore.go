package assets

import "text-rpg/internal/gamemap"

// Glyphs drawn on the minimap.
const (
	GlyphPlayer  = "🧙"
	GlyphUnknown = "·"
)

// ContentGlyphs maps each cell kind to its minimap glyph.
var ContentGlyphs = map[gamemap.Content]string{
	gamemap.Empty:          " ",
	gamemap.Enemy:          "👹",
	gamemap.NPC:            "🧓",
	gamemap.Merchant:       "💰",
	gamemap.Treasure:       "💎",
	gamemap.Portal:         "🌀",
	gamemap.Dragon:         "🐉",
	gamemap.TreasureVault:  "🏛",
	gamemap.MasterMerchant: "🏪",
	gamemap.AncientPortal:  "⛩",
	gamemap.BossEnemy:      "💀",
}

// Opening is shown when the game begins.
const Opening = `An old man approaches you.
'Hello traveler! You look like you could use some help.'
'Take these, they might help you on your journey.'
The old man offers you 10 gold and a stick.`

// FirstEncounterOptions are offered with Opening.
var FirstEncounterOptions = []string{
	"Reject the offering and move on",
	"Take the goods and move on",
	"Take the goods and fight the NPC",
}

// BattleOptions are offered on every battle turn.
var BattleOptions = []string{"Attack", "Defend", "Flee"}

// DeathOptions are the two fates offered on death.
var DeathOptions = []string{
	"Lose everything and start new",
	"Resurrect as a vampire (keep items but take 5% damage during day)",
}

// ContentSuffix completes a location description after the theme sentence.
var ContentSuffix = map[gamemap.Content]string{
	gamemap.Empty:          "The area seems quiet.",
	gamemap.Enemy:          "You encounter a hostile creature!",
	gamemap.NPC:            "A weathered stranger waves you over.",
	gamemap.Merchant:       "A travelling merchant has laid out their wares.",
	gamemap.Treasure:       "Something glints on the ground nearby.",
	gamemap.Portal:         "A shimmering portal hangs in the air.",
	gamemap.Dragon:         "A massive dragon blocks your path, its eyes glowing with ancient fury!",
	gamemap.TreasureVault:  "You discover a legendary treasure vault, sealed with ancient magic.",
	gamemap.MasterMerchant: "A renowned master merchant has set up an exclusive trading post here.",
	gamemap.AncientPortal:  "An ancient portal radiates immense power, connecting to other realms.",
	gamemap.BossEnemy:      "A fearsome boss creature emerges, ready for battle!",
}

// Hints are surfaced on move options when a major event lies within two
// cells in that direction.
var Hints = map[gamemap.Content]string{
	gamemap.Dragon:         "ancient power stirs",
	gamemap.TreasureVault:  "great riches await",
	gamemap.MasterMerchant: "legendary trader nearby",
	gamemap.AncientPortal:  "otherworldly energy pulses",
	gamemap.BossEnemy:      "terrible danger approaches",
}

// Actions lists exactly three labels per cell kind. The 1-based position
// is the choice index the interaction table dispatches on.
var Actions = map[gamemap.Content][3]string{
	gamemap.Empty:    {"Rest and recover", "Search the area", "Set up camp"},
	gamemap.Enemy:    {"Attack the enemy", "Try to sneak past", "Observe from distance"},
	gamemap.NPC:      {"Chat with the stranger", "Ask about the land", "Offer to help with a quest"},
	gamemap.Merchant: {"Buy a healing potion (10 gold)", "Buy a weapon upgrade (15 gold)", "Sell some trinkets"},
	gamemap.Treasure: {"Grab the treasure", "Check for traps first", "Take only a modest share"},
	gamemap.Portal:   {"Peer into the portal", "Listen to the portal's hum", "Bask in its glow"},
	gamemap.Dragon: {
		"Challenge the dragon to combat",
		"Attempt to negotiate",
		"Try to sneak past",
	},
	gamemap.TreasureVault: {
		"Attempt to break the seal",
		"Search for the key",
		"Study the magical locks",
	},
	gamemap.MasterMerchant: {
		"Buy legendary weapon (50 gold)",
		"Buy master health elixir (30 gold)",
		"Trade rare items",
	},
	gamemap.AncientPortal: {
		"Activate the portal",
		"Study the ancient runes",
		"Channel your energy into it",
	},
	gamemap.BossEnemy: {
		"Engage in epic battle",
		"Try to find weakness",
		"Attempt tactical retreat",
	},
}

// Fixed menu labels.
const (
	OptionExplore   = "Explore this area"
	OptionInventory = "Check inventory"
	OptionQuit      = "Quit game"
	OptionContinue  = "Continue exploring"
	OptionPortal    = "Step through the portal"
	OptionBack      = "Back"
)
