package gamemap

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// WorldMap holds the base content grid and the major-event overlay for one
// world theme.
type WorldMap struct {
	Theme Theme
	Size  int
	Cells [][]Content // Cells[y][x]
	Major map[Point]Content
}

// New creates a size×size WorldMap filled with Empty.
func New(theme Theme, size int) *WorldMap {
	cells := make([][]Content, size)
	for y := range cells {
		cells[y] = make([]Content, size)
	}
	return &WorldMap{Theme: theme, Size: size, Cells: cells, Major: make(map[Point]Content)}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *WorldMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Size && y >= 0 && y < m.Size
}

// At returns the content at (x, y): the major event when one is placed
// there, else the base cell. Out-of-bounds coordinates report false.
func (m *WorldMap) At(x, y int) (Content, bool) {
	if !m.InBounds(x, y) {
		return Empty, false
	}
	if c, ok := m.Major[Point{x, y}]; ok {
		return c, true
	}
	return m.Cells[y][x], true
}

// Set replaces the base cell at (x, y). Panics if out of bounds.
func (m *WorldMap) Set(x, y int, c Content) {
	m.Cells[y][x] = c
}

// Clear resets the base cell at (x, y) to Empty. Major events are fixed and
// unaffected.
func (m *WorldMap) Clear(x, y int) {
	if m.InBounds(x, y) {
		m.Cells[y][x] = Empty
	}
}

// PlaceMajor records a major event at (x, y).
func (m *WorldMap) PlaceMajor(x, y int, c Content) {
	m.Major[Point{x, y}] = c
}

// HasMajorAt reports whether a major event sits at (x, y).
func (m *WorldMap) HasMajorAt(x, y int) bool {
	_, ok := m.Major[Point{x, y}]
	return ok
}

// Count returns how many cells (base or major) resolve to c.
func (m *WorldMap) Count(c Content) int {
	n := 0
	for y := 0; y < m.Size; y++ {
		for x := 0; x < m.Size; x++ {
			if got, _ := m.At(x, y); got == c {
				n++
			}
		}
	}
	return n
}
