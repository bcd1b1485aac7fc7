package tui

import (
	"text-rpg/assets"
	"text-rpg/internal/game"
	"text-rpg/internal/world"
)

// frame is everything the renderer needs, copied out of the game while the
// session lock is held so drawing never touches live state.
type frame struct {
	resp   game.Response
	weapon string
	// glyphs[row][col] is the minimap window starting at the camera offset.
	glyphs [][]string
}

// snapshot copies the state shown on screen. The camera is re-centred on
// the player.
func snapshot(g *game.Game, cam *Camera) frame {
	f := frame{resp: g.Current(), weapon: "None"}
	if !g.Player.Equipped.IsEmpty() {
		f.weapon = g.Player.Equipped.Name
	}
	pos := g.World.Position()
	cam.Center(pos.X, pos.Y)
	f.glyphs = minimap(g.World, cam)
	return f
}

// minimap renders the cells under the camera. Cells the player has stood on
// show their content; the rest of the map shows as unknown.
func minimap(w *world.World, cam *Camera) [][]string {
	rows := make([][]string, cam.ViewHeight)
	m := w.Map()
	pos := w.Position()
	for sy := range rows {
		row := make([]string, cam.Cols())
		for col := range row {
			wx, wy := cam.ScreenToWorld(col*2, sy)
			switch {
			case !m.InBounds(wx, wy):
				row[col] = ""
			case wx == pos.X && wy == pos.Y:
				row[col] = assets.GlyphPlayer
			case w.Visited(wx, wy):
				c, _ := m.At(wx, wy)
				row[col] = assets.ContentGlyphs[c]
			default:
				row[col] = assets.GlyphUnknown
			}
		}
		rows[sy] = row
	}
	return rows
}
