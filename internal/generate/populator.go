package generate

import (
	"text-rpg/internal/dice"
	"text-rpg/internal/gamemap"
)

// Placement records one major event.
type Placement struct {
	Kind gamemap.Content
	X, Y int
}

// PopulateResult reports what Populate placed beyond the base grid roll.
type PopulateResult struct {
	Majors  []Placement
	Portals []gamemap.Point
}

// Populate fills the base grid of m once, scatters portals and then places
// major events, which override whatever the base cell holds.
func Populate(m *gamemap.WorldMap, cfg *Config) PopulateResult {
	var result PopulateResult
	if m.Size <= 0 {
		return result
	}

	fillBase(m, cfg)
	result.Portals = scatterPortals(m, cfg)
	result.Majors = placeMajors(m, cfg)
	return result
}

// fillBase rolls every cell against the cumulative thresholds.
func fillBase(m *gamemap.WorldMap, cfg *Config) {
	t := cfg.Table
	for y := 0; y < m.Size; y++ {
		for x := 0; x < m.Size; x++ {
			m.Set(x, y, rollContent(t, cfg.Rand.Float64()))
		}
	}
}

func rollContent(t Table, roll float64) gamemap.Content {
	edge := t.Enemy
	if roll < edge {
		return gamemap.Enemy
	}
	edge += t.NPC
	if roll < edge {
		return gamemap.NPC
	}
	edge += t.Merchant
	if roll < edge {
		return gamemap.Merchant
	}
	edge += t.Treasure
	if roll < edge {
		return gamemap.Treasure
	}
	return gamemap.Empty
}

func scatterPortals(m *gamemap.WorldMap, cfg *Config) []gamemap.Point {
	if cfg.Table.MaxPortals <= 0 {
		return nil
	}
	n := dice.Between(cfg.Rand, 1, cfg.Table.MaxPortals)
	n = min(n, m.Size*m.Size)
	var placed []gamemap.Point
	for len(placed) < n {
		x, y := cfg.Rand.Intn(m.Size), cfg.Rand.Intn(m.Size)
		if c, _ := m.At(x, y); c == gamemap.Portal {
			continue
		}
		m.Set(x, y, gamemap.Portal)
		placed = append(placed, gamemap.Point{X: x, Y: y})
	}
	return placed
}

// placeMajors places MajorMin..MajorMax events inside the margin, rejecting
// collisions. The count is capped at the number of interior cells so the
// rejection loop always terminates.
func placeMajors(m *gamemap.WorldMap, cfg *Config) []Placement {
	if len(cfg.Table.Majors) == 0 {
		return nil
	}
	lo, hi := Interior(m.Size, cfg.Margin)
	span := hi - lo + 1
	n := dice.Between(cfg.Rand, cfg.MajorMin, cfg.MajorMax)
	n = min(n, span*span)

	placed := make([]Placement, 0, n)
	for len(placed) < n {
		x := dice.Between(cfg.Rand, lo, hi)
		y := dice.Between(cfg.Rand, lo, hi)
		if m.HasMajorAt(x, y) {
			continue
		}
		kind := cfg.Table.Majors[cfg.Rand.Intn(len(cfg.Table.Majors))]
		m.PlaceMajor(x, y, kind)
		placed = append(placed, Placement{Kind: kind, X: x, Y: y})
	}
	return placed
}
