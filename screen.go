package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// screen paints the sea: a solid fill with an optional image over it.
type screen struct {
	fill  color.RGBA
	image *ebiten.Image
}

func newScreen(colors ColorConfig, background *ebiten.Image) *screen {
	return &screen{fill: colors.Background.rgba(), image: background}
}

func (s *screen) draw(dst *ebiten.Image) {
	dst.Fill(s.fill)
	if s.image != nil {
		dst.DrawImage(s.image, nil)
	}
}
