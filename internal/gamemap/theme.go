package gamemap

// Theme selects one of the generated worlds.
type Theme uint8

const (
	Earth Theme = iota
	HeavenlyMountains
	StoneCaverns
	FutureCity
	PrehistoricJungle
	Atlantis
)

// Themes lists every world in generation order. Earth is the starting world.
var Themes = []Theme{Earth, HeavenlyMountains, StoneCaverns, FutureCity, PrehistoricJungle, Atlantis}

var themeNames = [...]string{
	Earth:             "Earth",
	HeavenlyMountains: "Heavenly Mountains",
	StoneCaverns:      "Stone Caverns",
	FutureCity:        "Future City",
	PrehistoricJungle: "Prehistoric Jungle",
	Atlantis:          "Atlantis",
}

func (t Theme) String() string {
	if int(t) < len(themeNames) {
		return themeNames[t]
	}
	return "Unknown"
}
