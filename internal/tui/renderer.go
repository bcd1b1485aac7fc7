package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Minimap bounds in world cells.
const (
	mapMinCols = 5
	mapMaxCols = 15
)

var (
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	logStyle    = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	optionStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	keyStyle    = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	mapStyle    = tcell.StyleDefault.Background(tcell.ColorBlack)
	nightStyle  = tcell.StyleDefault.Foreground(tcell.ColorMediumPurple).Bold(true)
	vampStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Renderer draws a frame onto a tcell screen:
//
//	status bar
//	──────────────
//	minimap │ message log
//	──────────────
//	options
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen, camera: &Camera{}}
	r.Layout(0)
	return r
}

// Camera returns the minimap camera sized by the last Layout call.
func (r *Renderer) Camera() *Camera { return r.camera }

// Layout sizes the minimap for a prompt with nOptions options.
func (r *Renderer) Layout(nOptions int) {
	w, h := r.screen.Size()
	bodyH := max(h-nOptions-3, 1)
	cols := min(max(w/4, mapMinCols), mapMaxCols)
	r.camera.ViewWidth = cols * 2
	r.camera.ViewHeight = bodyH
}

// Draw renders f and the message log, then shows the screen.
func (r *Renderer) Draw(f frame, log []string) {
	r.screen.Clear()
	w, h := r.screen.Size()
	opts := f.resp.Options

	r.drawStatus(f)
	r.drawHLine(1)

	bodyTop := 2
	bodyBottom := h - len(opts) - 1 // exclusive
	r.drawMinimap(f, bodyTop, bodyBottom)

	logX := r.camera.ViewWidth + 1
	for y := bodyTop; y < bodyBottom; y++ {
		r.screen.SetContent(logX, y, '│', nil, borderStyle)
	}
	r.drawLog(log, logX+2, bodyTop, w-logX-2, bodyBottom-bodyTop)

	r.drawHLine(bodyBottom)
	for i, opt := range opts {
		y := bodyBottom + 1 + i
		if y >= h {
			break
		}
		x := r.drawText(1, y, strconv.Itoa(i+1)+")", keyStyle)
		r.drawText(x+1, y, opt, optionStyle)
	}
	r.screen.Show()
}

func (r *Renderer) drawStatus(f frame) {
	p := f.resp.Player
	status := fmt.Sprintf("HP %d/%d  Gold %d  Weapon %s  %s (%d,%d)",
		p.Health, p.MaxHealth, p.Gold, f.weapon,
		f.resp.World, f.resp.Position.X, f.resp.Position.Y)
	x := r.drawText(0, 0, status, statusStyle)
	clock := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	if f.resp.Time != "Day" {
		clock = nightStyle
	}
	x = r.drawText(x+2, 0, f.resp.Time, clock)
	if p.IsVampire {
		r.drawText(x+2, 0, "VAMPIRE", vampStyle)
	}
	if f.resp.Enemy != nil {
		enemy := fmt.Sprintf("  vs %s (%d HP)", f.resp.Enemy.Name, f.resp.Enemy.Health)
		w, _ := r.screen.Size()
		r.drawText(w-runewidth.StringWidth(enemy)-1, 0, enemy, vampStyle)
	}
}

func (r *Renderer) drawMinimap(f frame, top, bottom int) {
	for sy, row := range f.glyphs {
		y := top + sy
		if y >= bottom {
			break
		}
		for col, glyph := range row {
			if glyph == "" {
				continue
			}
			r.putGlyph(col*2, y, glyph, mapStyle)
		}
	}
}

// drawLog writes the newest lines that fit, wrapped to width.
func (r *Renderer) drawLog(log []string, x, y, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	var lines []string
	for _, msg := range log {
		lines = append(lines, strings.Split(runewidth.Wrap(msg, width), "\n")...)
	}
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	for i, line := range lines {
		r.drawText(x, y+i, line, logStyle)
	}
}

func (r *Renderer) drawHLine(y int) {
	w, _ := r.screen.Size()
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, borderStyle)
	}
}

// drawText writes text starting at (x, y), clipped at the right edge, and
// returns the column after the last rune.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	sw, _ := r.screen.Size()
	for _, ch := range text {
		cw := runewidth.RuneWidth(ch)
		if x+cw > sw {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += max(cw, 1)
	}
	return x
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 1 {
		// Pad narrow glyphs to the two-column grid.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// drawBox draws a bordered box centred on the screen holding lines.
func drawBox(screen tcell.Screen, lines []string, style tcell.Style) {
	width := 0
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}
	width += 4
	boxH := len(lines) + 2
	sw, sh := screen.Size()
	x0 := (sw - width) / 2
	y0 := (sh - boxH) / 2

	for col := x0; col < x0+width; col++ {
		for row := y0 + 1; row < y0+boxH-1; row++ {
			screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
		}
		screen.SetContent(col, y0, '─', nil, borderStyle)
		screen.SetContent(col, y0+boxH-1, '─', nil, borderStyle)
	}
	for row := y0; row < y0+boxH; row++ {
		screen.SetContent(x0, row, '│', nil, borderStyle)
		screen.SetContent(x0+width-1, row, '│', nil, borderStyle)
	}
	screen.SetContent(x0, y0, '┌', nil, borderStyle)
	screen.SetContent(x0+width-1, y0, '┐', nil, borderStyle)
	screen.SetContent(x0, y0+boxH-1, '└', nil, borderStyle)
	screen.SetContent(x0+width-1, y0+boxH-1, '┘', nil, borderStyle)

	for i, line := range lines {
		x := x0 + 2
		for _, ch := range line {
			screen.SetContent(x, y0+1+i, ch, nil, style)
			x += max(runewidth.RuneWidth(ch), 1)
		}
	}
	screen.Show()
}

