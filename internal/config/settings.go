package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Settings holds the values fixed at startup. Missing keys in a TOML file keep
// the compiled-in defaults from Default.
type Settings struct {
	Playfield  PlayfieldConfig  `toml:"playfield"`
	Swarm      SwarmConfig      `toml:"swarm"`
	Defender   DefenderConfig   `toml:"defender"`
	Projectile ProjectileConfig `toml:"projectile"`
	Scoring    ScoringConfig    `toml:"scoring"`
	Difficulty DifficultyConfig `toml:"difficulty"`
	Logging    LoggingConfig    `toml:"logging"`
}

type PlayfieldConfig struct {
	Width           float64 `toml:"width"`
	Height          float64 `toml:"height"`
	DeathLineY      float64 `toml:"death_line_y"`
	DeathLineHeight float64 `toml:"death_line_height"`
	TopEdgeY        float64 `toml:"top_edge_y"`
}

type SwarmConfig struct {
	AlienWidth        float64 `toml:"alien_width"`
	AlienHeight       float64 `toml:"alien_height"`
	Padding           float64 `toml:"padding"`
	ReversalThreshold float64 `toml:"reversal_threshold"`
	AnchorOffset      float64 `toml:"anchor_offset"` // bottom row edge above the death line
}

type DefenderConfig struct {
	Width          float64 `toml:"width"`
	Height         float64 `toml:"height"`
	Speed          float64 `toml:"speed"`
	OffsetFromLine float64 `toml:"offset_from_line"`
}

type ProjectileConfig struct {
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	Speed    float64 `toml:"speed"`
	Cooldown float64 `toml:"cooldown"`
	MaxLive  int     `toml:"max_live"`
}

type ScoringConfig struct {
	PointsPerKill int `toml:"points_per_kill"`
}

type DifficultyConfig struct {
	Rows           int     `toml:"rows"`
	Columns        int     `toml:"columns"`
	Speed          float64 `toml:"speed"`
	SpeedIncrement float64 `toml:"speed_increment"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// RowHeight is the vertical step of one swarm descent.
func (s SwarmConfig) RowHeight() float64 {
	return s.AlienHeight + 2*s.Padding
}

// ColumnWidth is the horizontal pitch of the spawn grid.
func (s SwarmConfig) ColumnWidth() float64 {
	return s.AlienWidth + 2*s.Padding
}

// DefenderBounds returns the closed range the defender centre may occupy.
func (s *Settings) DefenderBounds() (minX, maxX float64) {
	half := s.Playfield.Width/2 - s.Defender.Width/2
	return -half, half
}

// ScreenSize is the window size in pixels; one world unit is one pixel.
func (s *Settings) ScreenSize() (width, height int) {
	return int(s.Playfield.Width), int(s.Playfield.Height)
}

// Default returns the stock ruleset.
func Default() *Settings {
	return &Settings{
		Playfield: PlayfieldConfig{
			Width:           ScreenWidth,
			Height:          ScreenHeight,
			DeathLineY:      DeathLineY,
			DeathLineHeight: DeathLineHeight,
			TopEdgeY:        TopEdgeY,
		},
		Swarm: SwarmConfig{
			AlienWidth:        AlienWidth,
			AlienHeight:       AlienHeight,
			Padding:           AlienPadding,
			ReversalThreshold: ReversalThreshold,
			AnchorOffset:      SwarmAnchorOffset,
		},
		Defender: DefenderConfig{
			Width:          DefenderWidth,
			Height:         DefenderHeight,
			Speed:          DefenderSpeed,
			OffsetFromLine: DefenderOffsetFromLine,
		},
		Projectile: ProjectileConfig{
			Width:    ProjectileWidth,
			Height:   ProjectileHeight,
			Speed:    ProjectileSpeed,
			Cooldown: FireCooldown,
			MaxLive:  MaxProjectiles,
		},
		Scoring: ScoringConfig{
			PointsPerKill: PointsPerKill,
		},
		Difficulty: DifficultyConfig{
			Rows:           InitialRows,
			Columns:        InitialColumns,
			Speed:          AlienSpeed,
			SpeedIncrement: SwarmSpeedIncrement,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a TOML settings file over the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parse config %s: unknown keys %v", path, undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (s *Settings) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positive("playfield.width", s.Playfield.Width)
	positive("playfield.height", s.Playfield.Height)
	positive("playfield.death_line_height", s.Playfield.DeathLineHeight)
	positive("swarm.alien_width", s.Swarm.AlienWidth)
	positive("swarm.alien_height", s.Swarm.AlienHeight)
	positive("swarm.reversal_threshold", s.Swarm.ReversalThreshold)
	positive("defender.width", s.Defender.Width)
	positive("defender.height", s.Defender.Height)
	positive("defender.speed", s.Defender.Speed)
	positive("projectile.width", s.Projectile.Width)
	positive("projectile.height", s.Projectile.Height)
	positive("projectile.speed", s.Projectile.Speed)
	positive("projectile.cooldown", s.Projectile.Cooldown)
	positive("difficulty.speed", s.Difficulty.Speed)
	if s.Swarm.Padding < 0 {
		errs = append(errs, fmt.Errorf("swarm.padding must not be negative, got %v", s.Swarm.Padding))
	}
	if s.Projectile.MaxLive < 1 {
		errs = append(errs, fmt.Errorf("projectile.max_live must be at least 1, got %d", s.Projectile.MaxLive))
	}
	if s.Difficulty.Rows < 1 || s.Difficulty.Columns < 1 {
		errs = append(errs, fmt.Errorf("difficulty grid must be at least 1x1, got %dx%d", s.Difficulty.Rows, s.Difficulty.Columns))
	}
	if s.Scoring.PointsPerKill < 0 {
		errs = append(errs, fmt.Errorf("scoring.points_per_kill must not be negative, got %d", s.Scoring.PointsPerKill))
	}
	if s.Difficulty.SpeedIncrement < 0 {
		errs = append(errs, fmt.Errorf("difficulty.speed_increment must not be negative, got %v", s.Difficulty.SpeedIncrement))
	}
	if s.Defender.Width >= s.Playfield.Width {
		errs = append(errs, fmt.Errorf("defender.width %v must be narrower than playfield.width %v", s.Defender.Width, s.Playfield.Width))
	}
	// the lowest row must spawn fully above the line
	if s.Swarm.AnchorOffset <= s.Swarm.AlienHeight/2 {
		errs = append(errs, fmt.Errorf("swarm.anchor_offset must exceed half the alien height, got %v", s.Swarm.AnchorOffset))
	}
	if s.Playfield.TopEdgeY <= s.Playfield.DeathLineY {
		errs = append(errs, errors.New("playfield.top_edge_y must be above death_line_y"))
	}
	return errors.Join(errs...)
}
