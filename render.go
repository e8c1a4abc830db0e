package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var boomColor = color.RGBA{255, 255, 255, 255}

// Draw renders the sea, the boat with its boom, the wind indicator and the HUD.
func (g *Game) Draw(dst *ebiten.Image) {
	g.screen.draw(dst)
	g.drawBoat(dst)
	g.drawWind(dst)
	g.hud.draw(dst, g.boat, g.wind)

	if g.debug {
		msg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		ebitenutil.DebugPrintAt(dst, msg, 4, g.cfg.Window.Height-36)
	}
}

// Layout reports the fixed logical canvas size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// drawBoat rotates the hull sprite about its centre to the heading and
// draws the boom trailing aft at the sail's absolute angle.
func (g *Game) drawBoat(dst *ebiten.Image) {
	sp := g.cfg.Sprites
	dst.DrawImage(g.assets.boat, spriteOptions(g.assets.boat, sp.BoatX, sp.BoatY, g.boat.heading, 1))

	bx, by := compassOffset(g.boat.sailAbs+180, sp.BoomLength)
	vector.StrokeLine(dst, float32(sp.BoatX), float32(sp.BoatY), float32(sp.BoatX+bx), float32(sp.BoatY+by), 2, boomColor, true)
}

// drawWind points the arrow along the wind direction and grows it with speed.
func (g *Game) drawWind(dst *ebiten.Image) {
	sp := g.cfg.Sprites
	scale := g.wind.scale(sp.WindMinScale, sp.WindMaxScale)
	dst.DrawImage(g.assets.wind, spriteOptions(g.assets.wind, sp.WindX, sp.WindY, g.wind.direction, scale))
}

// spriteOptions builds a transform that scales and rotates img about its
// centre, then places that centre at (x, y).
func spriteOptions(img *ebiten.Image, x, y, bearing, scale float64) *ebiten.DrawImageOptions {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(radians(bearing))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	return op
}

// compassOffset converts a compass bearing (0 = up, clockwise) and length
// into a screen-space offset.
func compassOffset(bearing, length float64) (float64, float64) {
	r := radians(bearing)
	return math.Sin(r) * length, -math.Cos(r) * length
}
