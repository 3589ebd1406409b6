package display

import (
	"image/color"

	"github.com/Garsondee/Tank-Arena/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	windowBg   = color.RGBA{R: 10, G: 12, B: 10, A: 255}
	arenaBg    = color.RGBA{R: 28, G: 42, B: 28, A: 255}
	borderCol  = color.RGBA{R: 60, G: 100, B: 60, A: 220}
	barrelCol  = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	barBackCol = color.RGBA{R: 40, G: 40, B: 40, A: 200}
	hpCol      = color.RGBA{R: 210, G: 60, B: 60, A: 255}
	reloadCol  = color.RGBA{R: 230, G: 200, B: 60, A: 255}
	hudTextCol = color.RGBA{R: 200, G: 230, B: 200, A: 255}
)

// barHeight is the thickness of the HP and reload bars over each hull.
const barHeight = 4

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(windowBg)
	v := g.driver.Arena().View()

	ox, oy := float32(g.offX), float32(g.offY)
	gw, gh := float32(v.Width), float32(v.Height)

	if v.Lifecycle.State == game.StateStopped {
		// The overlay replaces the whole arena.
		vector.FillRect(screen, ox, oy, gw, gh, v.Lifecycle.Overlay, false)
		g.drawBanner(screen, v)
	} else {
		vector.FillRect(screen, ox, oy, gw, gh, arenaBg, false)
		for _, e := range v.Entities {
			g.drawEntity(screen, e)
		}
	}
	vector.StrokeRect(screen, ox-1, oy-1, gw+2, gh+2, 2.0, borderCol, false)

	g.drawHUD(screen, v)
	g.drawFeed(screen, g.offX+v.Width+borderWidth, g.height)
}

func (g *Game) drawEntity(screen *ebiten.Image, e game.EntityView) {
	ox, oy := float64(g.offX), float64(g.offY)
	x, y := float32(ox+e.Pos.X), float32(oy+e.Pos.Y)
	r := float32(e.Radius)

	switch e.Kind {
	case game.KindCombatant:
		vector.FillCircle(screen, x, y, r, e.Color, true)
		mx, my := float32(ox+e.Muzzle.X), float32(oy+e.Muzzle.Y)
		vector.StrokeLine(screen, x, y, mx, my, 4, barrelCol, true)

		// HP bar above the hull, reload bar above that.
		bw := 2 * r
		bx := x - r
		hpY := y - r - 2*barHeight
		vector.FillRect(screen, bx, hpY, bw, barHeight, barBackCol, false)
		vector.FillRect(screen, bx, hpY, float32(game.ScaleLength(e.HPRatio, 1, float64(bw))), barHeight, hpCol, false)
		rlY := hpY - barHeight - 1
		vector.FillRect(screen, bx, rlY, bw, barHeight, barBackCol, false)
		vector.FillRect(screen, bx, rlY, float32(game.ScaleLength(e.ReloadRatio, 1, float64(bw))), barHeight, reloadCol, false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(x)-7, float64(y)-6)
		op.ColorScale.ScaleWithColor(color.Black)
		text.Draw(screen, e.Label, g.face, op)
	case game.KindProjectile:
		vector.FillCircle(screen, x, y, r, e.Color, true)
	case game.KindPickup:
		vector.FillRect(screen, x-r, y-r, 2*r, 2*r, e.Color, false)
	}
}

func (g *Game) drawBanner(screen *ebiten.Image, v game.View) {
	msg := bannerText(v)
	w, h := text.Measure(msg, g.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Scale(3, 3)
	op.GeoM.Translate(float64(g.offX)+(float64(v.Width)-3*w)/2, float64(g.offY)+(float64(v.Height)-3*h)/2)
	op.ColorScale.ScaleWithColor(color.Black)
	text.Draw(screen, msg, g.face, op)
}

func (g *Game) drawHUD(screen *ebiten.Image, v game.View) {
	lines := hudLines(v, g.driver.Speed(), g.autopilot, g.showHelp)
	if g.status != "" {
		lines = append(lines, g.status)
	}

	const lineH = 14
	const padX = 6
	const padY = 4
	bx := float32(g.offX + 4)
	by := float32(g.offY + 4)
	boxW := float32(0)
	for _, l := range lines {
		w, _ := text.Measure(l, g.face, 0)
		boxW = max(boxW, float32(w))
	}
	boxW += 2 * padX
	boxH := float32(len(lines)*lineH + 2*padY)

	vector.FillRect(screen, bx, by, boxW, boxH, color.RGBA{R: 6, G: 10, B: 6, A: 180}, false)
	vector.StrokeRect(screen, bx, by, boxW, boxH, 1.0, borderCol, false)
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(bx)+padX, float64(by)+padY+float64(i*lineH))
		op.ColorScale.ScaleWithColor(hudTextCol)
		text.Draw(screen, line, g.face, op)
	}
}
