// internal/ui/wave_indicator.go
package ui

import (
	"image/color"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.RGBA
	OutlineColor     color.Color
	OutlineThickness int
	fontFace         font.Face
}

// NewWaveIndicator создает новый индикатор волны. X задает центр текста.
func NewWaveIndicator(x, y int, fontFace font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.UIColorBlue,
		OutlineColor:     color.White,
		OutlineThickness: 1,
		fontFace:         fontFace,
	}
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int) {
	if waveNumber <= 0 {
		return
	}

	label := utils.ToRoman(waveNumber)

	// Каждая третья волна добавляет скорость, подсвечиваем её
	textColor := i.Color
	if waveNumber%3 == 0 {
		textColor = config.GameOverColor
	}

	bounds := text.BoundString(i.fontFace, label)
	textX := i.X - bounds.Dx()/2
	textY := i.Y - bounds.Min.Y

	for y := -i.OutlineThickness; y <= i.OutlineThickness; y++ {
		for x := -i.OutlineThickness; x <= i.OutlineThickness; x++ {
			if x == 0 && y == 0 {
				continue
			}
			text.Draw(screen, label, i.fontFace, textX+x, textY+y, i.OutlineColor)
		}
	}
	text.Draw(screen, label, i.fontFace, textX, textY, textColor)
}
