// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"go-space-invaders/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace: встроенный растровый шрифт, файлы шрифтов не нужны.
var DefaultFace font.Face = basicfont.Face7x13

// HUDData — данные оверлея на один кадр.
type HUDData struct {
	Score     int
	Wave      int
	Active    bool
	FireTimer float64
	Cooldown  float64
	Live      int
	MaxLive   int
}

// HUD собирает все индикаторы игрового экрана.
type HUD struct {
	fontFace font.Face
	wave     *WaveIndicator
	state    *StateIndicator
	ammo     *AmmoIndicator
	lastWave int
}

func NewHUD(screenWidth int, fontFace font.Face) *HUD {
	waveX := screenWidth - config.WaveIndicatorOffset
	return &HUD{
		fontFace: fontFace,
		wave:     NewWaveIndicator(waveX, config.HUDMarginY, fontFace),
		state:    NewStateIndicator(float32(waveX+30), config.HUDMarginY+6, 5),
		ammo:     NewAmmoIndicator(config.HUDMarginX, config.HUDMarginY+2*config.HUDLineHeight),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, d HUDData) {
	if d.Wave != h.lastWave {
		h.state.Pulse()
		h.lastWave = d.Wave
	}

	label := fmt.Sprintf("SCORE %d", d.Score)
	text.Draw(screen, label, h.fontFace, config.HUDMarginX, config.HUDMarginY+config.HUDLineHeight, config.TextLightColor)

	h.wave.Draw(screen, d.Wave)

	var stateColor color.RGBA
	if d.Active {
		stateColor = config.AlienColor
	} else {
		stateColor = config.GameOverColor
	}
	h.state.Draw(screen, stateColor)

	h.ammo.Draw(screen, d.FireTimer, d.Cooldown, d.Live, d.MaxLive)
}
