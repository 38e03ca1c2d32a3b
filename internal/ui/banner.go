// internal/ui/banner.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// Banner draws centred text: a large title and an optional hint line below it.
type Banner struct {
	screenWidth, screenHeight int
	scale                     float64
	fontFace                  font.Face
}

func NewBanner(screenWidth, screenHeight int, scale float64, fontFace font.Face) *Banner {
	return &Banner{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		scale:        scale,
		fontFace:     fontFace,
	}
}

func (b *Banner) Draw(screen *ebiten.Image, title, hint string, titleColor color.Color) {
	cy := float64(b.screenHeight) / 2

	bounds := text.BoundString(b.fontFace, title)
	w := float64(bounds.Dx()) * b.scale
	h := float64(bounds.Dy()) * b.scale

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(-bounds.Min.Y))
	op.GeoM.Scale(b.scale, b.scale)
	op.GeoM.Translate((float64(b.screenWidth)-w)/2, cy-h)
	op.ColorScale.ScaleWithColor(titleColor)
	text.DrawWithOptions(screen, title, b.fontFace, op)

	if hint == "" {
		return
	}
	hb := text.BoundString(b.fontFace, hint)
	x := (b.screenWidth - hb.Dx()) / 2
	y := int(cy) + 12 - hb.Min.Y
	text.Draw(screen, hint, b.fontFace, x, y, color.White)
}
