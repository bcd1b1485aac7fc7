// Package world tracks the six generated maps and the player's position
// on the current one.
package world

import (
	"fmt"

	"text-rpg/assets"
	"text-rpg/internal/dice"
	"text-rpg/internal/gamemap"
	"text-rpg/internal/generate"
)

// MoveResult describes the outcome of a Move call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // out of bounds; nothing changed
)

// BlockedMessage is returned when a move would leave the map.
const BlockedMessage = "You can't move in that direction."

// hintReach is how many cells ahead a direction hint looks.
const hintReach = 2

// World owns one map per theme and the player's location.
type World struct {
	Maps    map[gamemap.Theme]*gamemap.WorldMap
	Current gamemap.Theme
	X, Y    int

	size    int
	rng     dice.Rand
	visited map[gamemap.Theme]map[gamemap.Point]bool
}

// New generates every themed map and places the player at the centre of
// Earth.
func New(rng dice.Rand, size int) *World {
	if size <= 0 {
		size = generate.DefaultSize
	}
	w := &World{
		Maps:    make(map[gamemap.Theme]*gamemap.WorldMap, len(gamemap.Themes)),
		Current: gamemap.Earth,
		X:       size / 2,
		Y:       size / 2,
		size:    size,
		rng:     rng,
		visited: make(map[gamemap.Theme]map[gamemap.Point]bool),
	}
	for _, t := range gamemap.Themes {
		m := gamemap.New(t, size)
		generate.Populate(m, generate.DefaultConfig(assets.Theme(t).Table, rng))
		w.Maps[t] = m
	}
	w.markVisited()
	return w
}

// Size returns the side length of every map.
func (w *World) Size() int { return w.size }

// Map returns the current map.
func (w *World) Map() *gamemap.WorldMap { return w.Maps[w.Current] }

// Position returns the player's coordinates.
func (w *World) Position() gamemap.Point { return gamemap.Point{X: w.X, Y: w.Y} }

// CurrentCell returns the content under the player. Repeated calls return
// the same value until the cell is cleared.
func (w *World) CurrentCell() gamemap.Content {
	c, _ := w.Map().At(w.X, w.Y)
	return c
}

// ClearCurrent empties the base cell under the player.
func (w *World) ClearCurrent() { w.Map().Clear(w.X, w.Y) }

// CanMove reports whether d stays on the map.
func (w *World) CanMove(d Direction) bool {
	dx, dy := d.Delta()
	return w.Map().InBounds(w.X+dx, w.Y+dy)
}

// Move steps one cell in d. A blocked move changes nothing and returns
// BlockedMessage; a successful one returns the new location's description.
func (w *World) Move(d Direction) (MoveResult, string) {
	if !w.CanMove(d) {
		return MoveBlocked, BlockedMessage
	}
	dx, dy := d.Delta()
	w.X += dx
	w.Y += dy
	w.markVisited()
	return MoveOK, w.Describe(w.CurrentCell())
}

// Directions returns the legal directions from the current position in
// north, east, south, west order.
func (w *World) Directions() []Direction {
	var out []Direction
	for _, d := range Directions {
		if w.CanMove(d) {
			out = append(out, d)
		}
	}
	return out
}

// Hint returns the flavour hint for the first major event within two cells
// in direction d, or "" when there is none.
func (w *World) Hint(d Direction) string {
	if !w.CanMove(d) {
		return ""
	}
	m := w.Map()
	dx, dy := d.Delta()
	for dist := 1; dist <= hintReach; dist++ {
		x, y := w.X+dx*dist, w.Y+dy*dist
		if !m.InBounds(x, y) {
			break
		}
		if kind, ok := m.Major[gamemap.Point{X: x, Y: y}]; ok {
			return assets.Hints[kind]
		}
	}
	return ""
}

// MoveOptions labels every legal direction, e.g. "Move North (great riches
// await)" or "Move East".
func (w *World) MoveOptions() []string {
	dirs := w.Directions()
	out := make([]string, 0, len(dirs))
	for _, d := range dirs {
		label := "Move " + d.Title()
		if hint := w.Hint(d); hint != "" {
			label = fmt.Sprintf("%s (%s)", label, hint)
		}
		out = append(out, label)
	}
	return out
}

// Actions returns the three action labels for c.
func Actions(c gamemap.Content) []string {
	acts := assets.Actions[c]
	return acts[:]
}

// Describe composes the theme sentence with the content suffix.
func (w *World) Describe(c gamemap.Content) string {
	return fmt.Sprintf("You are in %s. %s", assets.Theme(w.Current).Description, assets.ContentSuffix[c])
}

// ChangeWorld switches to theme t and drops the player at a random
// interior coordinate. Unknown themes are refused.
func (w *World) ChangeWorld(t gamemap.Theme) bool {
	if _, ok := w.Maps[t]; !ok {
		return false
	}
	w.Current = t
	lo, hi := generate.Interior(w.size, generate.DefaultMargin)
	w.X = dice.Between(w.rng, lo, hi)
	w.Y = dice.Between(w.rng, lo, hi)
	w.markVisited()
	return true
}

// OtherTheme picks a uniformly random theme different from the current one.
func (w *World) OtherTheme() gamemap.Theme {
	others := make([]gamemap.Theme, 0, len(gamemap.Themes)-1)
	for _, t := range gamemap.Themes {
		if t != w.Current {
			others = append(others, t)
		}
	}
	return others[w.rng.Intn(len(others))]
}

// Visited reports whether the player has stood on (x, y) in the current
// world.
func (w *World) Visited(x, y int) bool {
	return w.visited[w.Current][gamemap.Point{X: x, Y: y}]
}

func (w *World) markVisited() {
	seen := w.visited[w.Current]
	if seen == nil {
		seen = make(map[gamemap.Point]bool)
		w.visited[w.Current] = seen
	}
	seen[gamemap.Point{X: w.X, Y: w.Y}] = true
}
