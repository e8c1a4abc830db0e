package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// hudLabels are the instrument names, one per row, in display order.
var hudLabels = [...]string{
	"Heading",
	"Sail angle",
	"Sail abs",
	"Point of sail",
	"Wind dir",
	"Wind speed",
	"Beaufort",
}

// hudRow indices into hudLabels and hudReadings.
const (
	rowHeading = iota
	rowSailAngle
	rowSailAbs
	rowPointOfSail
	rowWindDir
	rowWindSpeed
	rowBeaufort
	hudRows
)

// hudReadings formats the current instrument values in hudLabels order.
func hudReadings(b *boat, wd *wind) [hudRows]string {
	var r [hudRows]string
	r[rowHeading] = fmt.Sprintf("%03.0f°", b.heading)
	r[rowSailAngle] = fmt.Sprintf("%+.0f°", b.sailAngle)
	r[rowSailAbs] = fmt.Sprintf("%03.0f°", b.sailAbs)
	r[rowPointOfSail] = b.pointOfSail
	r[rowWindDir] = fmt.Sprintf("%03.0f°", wd.direction)
	r[rowWindSpeed] = fmt.Sprintf("%.1f m/s", wd.speed)
	r[rowBeaufort] = wd.beaufort
	return r
}

// hud draws the instrument panel. Labels never change, so they are rendered
// once into their own layer; values are erased and redrawn every frame.
type hud struct {
	cfg    HudConfig
	colors ColorConfig
	face   text.Face

	// background, when set, is the sea image value boxes are restored from.
	background *ebiten.Image
	labels     *ebiten.Image
}

func newHud(cfg HudConfig, colors ColorConfig, face text.Face, background *ebiten.Image) *hud {
	return &hud{cfg: cfg, colors: colors, face: face, background: background}
}

func (h *hud) draw(dst *ebiten.Image, b *boat, wd *wind) {
	if h.labels == nil {
		bounds := dst.Bounds()
		h.labels = ebiten.NewImage(bounds.Dx(), bounds.Dy())
		for i, label := range hudLabels {
			h.drawText(h.labels, label+":", h.cfg.X, h.rowY(i), h.colors.Label.rgba())
		}
	}
	dst.DrawImage(h.labels, nil)

	for i, value := range hudReadings(b, wd) {
		h.erase(dst, h.valueRect(i))
		h.drawText(dst, value, h.cfg.X+h.cfg.ValueOffset, h.rowY(i), h.valueColor(i, b))
	}
}

// valueRect is the screen area holding the value of row i.
func (h *hud) valueRect(i int) image.Rectangle {
	x := h.cfg.X + h.cfg.ValueOffset
	y := h.rowY(i)
	return image.Rect(int(x), int(y), int(x+h.cfg.ValueWidth), int(y+h.cfg.RowHeight))
}

// erase restores r to the bare sea: the matching part of the background
// image if there is one, the background colour otherwise.
func (h *hud) erase(dst *ebiten.Image, r image.Rectangle) {
	if h.background != nil {
		if area := r.Intersect(h.background.Bounds()); !area.Empty() {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(area.Min.X), float64(area.Min.Y))
			dst.DrawImage(h.background.SubImage(area).(*ebiten.Image), op)
			return
		}
	}
	vector.FillRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), h.colors.Background.rgba(), false)
}

func (h *hud) rowY(i int) float64 {
	return h.cfg.Y + float64(i)*h.cfg.RowHeight
}

// valueColor highlights the point of sail while the boat is stalled head to wind.
func (h *hud) valueColor(row int, b *boat) color.RGBA {
	if row == rowPointOfSail && b.pointOfSail == inIrons {
		return h.colors.Highlight.rgba()
	}
	return h.colors.Text.rgba()
}

func (h *hud) drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, h.face, op)
}
