// internal/ui/ammo_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// AmmoIndicator показывает перезарядку и число свободных снарядов.
type AmmoIndicator struct {
	X, Y float32
}

const (
	reloadBarWidth  = 118
	reloadBarHeight = 8
	pipWidth        = 16
	pipHeight       = 10
	pipGap          = 9
	borderWidth     = 1
)

var (
	reloadColorFill = color.RGBA{70, 100, 120, 220}
	borderColor     = color.White
)

func NewAmmoIndicator(x, y float32) *AmmoIndicator {
	return &AmmoIndicator{X: x, Y: y}
}

// Draw рисует полосу перезарядки и по прямоугольнику на каждый слот.
func (i *AmmoIndicator) Draw(screen *ebiten.Image, fireTimer, cooldown float64, live, maxLive int) {
	vector.StrokeRect(screen, i.X, i.Y, reloadBarWidth, reloadBarHeight, borderWidth, borderColor, true)

	fillRatio := 1.0
	if cooldown > 0 {
		fillRatio = fireTimer / cooldown
	}
	if fillRatio > 1.0 {
		fillRatio = 1.0
	}
	fillWidth := float32(float64(reloadBarWidth-borderWidth*2) * fillRatio)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, reloadBarHeight-borderWidth*2, reloadColorFill, true)
	}

	rectY := i.Y + reloadBarHeight + 6
	for j := 0; j < maxLive; j++ {
		rectX := i.X + float32(j)*(pipWidth+pipGap)
		vector.StrokeRect(screen, rectX, rectY, pipWidth, pipHeight, borderWidth, borderColor, true)
		// Заполнены свободные слоты
		if j < maxLive-live {
			vector.DrawFilledRect(screen, rectX+borderWidth, rectY+borderWidth, pipWidth-borderWidth*2, pipHeight-borderWidth*2, reloadColorFill, true)
		}
	}
}
