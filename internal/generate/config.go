package generate

import (
	"text-rpg/internal/dice"
	"text-rpg/internal/gamemap"
)

// Default generation parameters.
const (
	DefaultSize     = 50
	DefaultMargin   = 5
	DefaultMajorMin = 5
	DefaultMajorMax = 10
	DefaultPortals  = 3
)

// Table holds the per-theme population parameters. The four probabilities
// are consumed cumulatively against one roll per cell; whatever remains is
// Empty.
type Table struct {
	Enemy    float64
	NPC      float64
	Merchant float64
	Treasure float64
	// Majors lists the candidate major-event kinds; each placement picks one
	// uniformly.
	Majors []gamemap.Content
	// MaxPortals > 0 scatters 1..MaxPortals portal cells.
	MaxPortals int
}

// Config holds the parameters for populating one WorldMap.
type Config struct {
	Margin   int // minimum distance of a major event from every edge
	MajorMin int
	MajorMax int
	Table    Table
	Rand     dice.Rand
}

// DefaultConfig returns a Config with the standard margin and event counts.
func DefaultConfig(t Table, r dice.Rand) *Config {
	return &Config{
		Margin:   DefaultMargin,
		MajorMin: DefaultMajorMin,
		MajorMax: DefaultMajorMax,
		Table:    t,
		Rand:     r,
	}
}

// Interior returns the inclusive coordinate range [lo, hi] that keeps margin
// cells from every edge of a size×size map. The margin shrinks on maps too
// small to honour it so the range is never empty.
func Interior(size, margin int) (lo, hi int) {
	if size <= 0 {
		return 0, -1
	}
	if maxMargin := (size - 1) / 2; margin > maxMargin {
		margin = maxMargin
	}
	if margin < 0 {
		margin = 0
	}
	return margin, size - 1 - margin
}
