// internal/config/config.go
package config

import "image/color"

// World units: origin at the playfield centre, +y points up.
const (
	ScreenWidth  = 900
	ScreenHeight = 600
	MaxDeltaTime = 0.06

	AlienWidth   = 28.0
	AlienHeight  = 20.0
	AlienPadding = 4.0

	AlienSpeed             = 10.0
	ReversalThreshold      = 50.0 // distance from the spawn column to a reversal
	SwarmAnchorOffset      = 100.0
	DeathLineY             = -100.0
	DeathLineHeight        = 1.0
	TopEdgeY               = 300.0
	SwarmSpeedIncrement    = 5.0
	InitialRows            = 4
	InitialColumns         = 7
	DefenderOffsetFromLine = 50.0

	DefenderWidth  = 52.0
	DefenderHeight = 32.0
	DefenderSpeed  = 300.0

	ProjectileWidth  = 4.0
	ProjectileHeight = 12.0
	ProjectileSpeed  = 450.0 // units per second
	FireCooldown     = 0.25  // seconds, must be strictly exceeded
	MaxProjectiles   = 5

	PointsPerKill = 10

	HUDMarginX          = 12
	HUDMarginY          = 8
	HUDLineHeight       = 16
	BannerScale         = 3
	WaveIndicatorOffset = 60
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	AlienColor      = color.RGBA{120, 220, 120, 255}
	DefenderColor   = color.RGBA{80, 170, 255, 255}
	ProjectileColor = color.RGBA{255, 255, 255, 255}
	DeathLineColor  = color.RGBA{255, 0, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	UIColorBlue     = color.RGBA{70, 130, 180, 255}
	GameOverColor   = color.RGBA{220, 60, 60, 255}
	PauseOverlay    = color.RGBA{0, 0, 0, 128}
)
