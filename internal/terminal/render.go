package terminal

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/Garsondee/Tank-Arena/internal/game"
	"github.com/gdamore/tcell/v2"
)

// statusRows is the number of text rows under the arena.
const statusRows = 1

var (
	rgbBackground = tcell.NewRGBColor(18, 24, 18)
	rgbStatus     = tcell.NewRGBColor(170, 200, 170)
	rgbMuzzle     = tcell.NewRGBColor(220, 220, 220)
)

// Cell is one character of the projected frame.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Grid is a frame projected onto a cols x rows character grid. The arena
// fills every row except the status line at the bottom.
type Grid struct {
	Cols, Rows int
	Cells      []Cell
}

// At returns the cell at column x, row y.
func (g Grid) At(x, y int) Cell {
	return g.Cells[y*g.Cols+x]
}

func (g Grid) set(x, y int, c Cell) {
	if x < 0 || y < 0 || x >= g.Cols || y >= g.Rows {
		return
	}
	g.Cells[y*g.Cols+x] = c
}

func (g Grid) text(x, y int, s string, st tcell.Style) {
	for i, r := range s {
		g.set(x+i, y, Cell{Rune: r, Style: st})
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// scale maps arena coordinates to grid cells.
type scale struct {
	sx, sy float64
}

func newScale(v game.View, cols, rows int) scale {
	return scale{
		sx: float64(cols) / float64(v.Width),
		sy: float64(rows-statusRows) / float64(v.Height),
	}
}

func (s scale) cell(p game.Vec, cols, arenaRows int) (int, int) {
	x := min(max(int(p.X*s.sx), 0), cols-1)
	y := min(max(int(p.Y*s.sy), 0), arenaRows-1)
	return x, y
}

// ToArena maps a grid cell back to the arena point at its centre.
func ToArena(v game.View, cols, rows, x, y int) game.Vec {
	return game.Vec{
		X: (float64(x) + 0.5) * float64(v.Width) / float64(cols),
		Y: (float64(y) + 0.5) * float64(v.Height) / float64(rows-statusRows),
	}
}

// pickupRune is the glyph of a pickup kind.
func pickupRune(k game.PickupKind) rune {
	switch k {
	case game.PickupPower:
		return 'p'
	case game.PickupSpeed:
		return 's'
	default:
		return 'h'
	}
}

// opponentGlyphs gives opponents 1..35 a single distinct character each.
const opponentGlyphs = "123456789abcdefghijklmnopqrstuvwxyz"

// combatantRune is the glyph at a combatant's centre: P for the player, a
// digit then a letter by opponent number, and '#' past the last glyph.
func combatantRune(e game.EntityView) rune {
	if e.Player {
		return 'P'
	}
	n, err := strconv.Atoi(strings.TrimPrefix(e.Label, "E"))
	if err != nil || n < 1 {
		return 'E'
	}
	if n > len(opponentGlyphs) {
		return '#'
	}
	return rune(opponentGlyphs[n-1])
}

// Project renders v onto a cols x rows grid. It is pure so the frame can be
// checked without a terminal.
func Project(v game.View, cols, rows int, speed float64) Grid {
	g := Grid{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	arenaRows := rows - statusRows
	bg := rgbBackground
	if v.Lifecycle.State == game.StateStopped {
		bg = rgb(v.Lifecycle.Overlay)
	}
	base := tcell.StyleDefault.Background(bg)
	for i := range g.Cells {
		g.Cells[i] = Cell{Rune: ' ', Style: base}
	}
	status := tcell.StyleDefault.Foreground(rgbStatus)
	for x := 0; x < cols; x++ {
		for y := arenaRows; y < rows; y++ {
			g.set(x, y, Cell{Rune: ' ', Style: status})
		}
	}

	sc := newScale(v, cols, rows)
	if v.Lifecycle.State == game.StateRunning {
		// Hull, then muzzle, then centre glyph, so the glyph stays visible.
		for _, e := range v.Entities {
			switch e.Kind {
			case game.KindCombatant:
				drawHull(g, sc, e, arenaRows, base)
			case game.KindPickup:
				x, y := sc.cell(e.Pos, cols, arenaRows)
				g.set(x, y, Cell{Rune: pickupRune(e.Pickup), Style: base.Foreground(rgb(e.Color)).Bold(true)})
			}
		}
		for _, e := range v.Entities {
			switch e.Kind {
			case game.KindCombatant:
				mx, my := sc.cell(e.Muzzle, cols, arenaRows)
				g.set(mx, my, Cell{Rune: '+', Style: base.Foreground(rgbMuzzle)})
				x, y := sc.cell(e.Pos, cols, arenaRows)
				g.set(x, y, Cell{Rune: combatantRune(e), Style: base.Foreground(tcell.ColorBlack).Background(rgb(e.Color)).Bold(true)})
			case game.KindProjectile:
				x, y := sc.cell(e.Pos, cols, arenaRows)
				g.set(x, y, Cell{Rune: '*', Style: base.Foreground(rgb(e.Color))})
			}
		}
	} else {
		msg := "GAME OVER"
		if v.LivingOpponents == 0 {
			msg = "VICTORY"
		}
		msg += "  (q to quit)"
		g.text((cols-len(msg))/2, arenaRows/2, msg, base.Foreground(tcell.ColorBlack).Bold(true))
	}

	g.text(0, rows-1, statusLine(v, speed), status)
	return g
}

// drawHull fills the cells covered by a combatant's radius.
func drawHull(g Grid, sc scale, e game.EntityView, arenaRows int, base tcell.Style) {
	st := base.Foreground(rgb(e.Color))
	x0, y0 := sc.cell(game.Vec{X: e.Pos.X - e.Radius, Y: e.Pos.Y - e.Radius}, g.Cols, arenaRows)
	x1, y1 := sc.cell(game.Vec{X: e.Pos.X + e.Radius, Y: e.Pos.Y + e.Radius}, g.Cols, arenaRows)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			g.set(x, y, Cell{Rune: '█', Style: st})
		}
	}
}

// statusLine summarises the player and the match in one row.
func statusLine(v game.View, speed float64) string {
	hp, reload := 0, 0
	if p, ok := v.Player(); ok {
		hp = int(math.Round(p.HPRatio * 100))
		reload = int(math.Round(p.ReloadRatio * 100))
	}
	sp := fmt.Sprintf("%gx", speed)
	if speed == 0 {
		sp = "PAUSED"
	}
	return fmt.Sprintf("T=%d HP %d%% reload %d%% opponents %d %s | arrows/wasd move, space/click fire, p , . speed, q quit",
		v.Tick, hp, reload, v.LivingOpponents, sp)
}
