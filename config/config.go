// Package config loads game tuning from an optional TOML file and the environment
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/flappy/constants"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// CollisionMode selects the narrow-phase collision test
type CollisionMode string

const (
	CollisionMask CollisionMode = "mask"
	CollisionRect CollisionMode = "rect"
)

// Config is the complete game tuning
type Config struct {
	FPS       int           `toml:"fps"`
	Collision CollisionMode `toml:"collision"`
	Seed      int64         `toml:"seed"`

	Bird  BirdConfig  `toml:"bird"`
	Pipes PipeConfig  `toml:"pipes"`
	Audio AudioConfig `toml:"audio"`

	// Keys rebinds input: key name to action name, "none" unbinds
	Keys map[string]string `toml:"keys"`
}

// BirdConfig tunes bird physics, units per frame
type BirdConfig struct {
	X           float64 `toml:"x"`
	Gravity     float64 `toml:"gravity"`
	FlapImpulse float64 `toml:"flap_impulse"`
	SpriteScale int     `toml:"sprite_scale"`
}

// PipeConfig tunes obstacle generation
type PipeConfig struct {
	Width       float64 `toml:"width"`
	GapHeight   float64 `toml:"gap_height"`
	Margin      float64 `toml:"margin"`
	Spacing     float64 `toml:"spacing"`
	ScrollSpeed float64 `toml:"scroll_speed"`
}

// AudioConfig controls the sound manager
type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"` // 0.0-1.0
}

// Default returns the built-in tuning
func Default() *Config {
	return &Config{
		FPS:       constants.TargetFPS,
		Collision: CollisionMask,
		Bird: BirdConfig{
			X:           constants.BirdX,
			Gravity:     constants.Gravity,
			FlapImpulse: constants.FlapImpulse,
			SpriteScale: 2,
		},
		Pipes: PipeConfig{
			Width:       constants.PipeWidth,
			GapHeight:   constants.GapHeight,
			Margin:      constants.PipeMargin,
			Spacing:     constants.PipeSpacing,
			ScrollSpeed: constants.ScrollSpeed,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.6,
		},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates. An empty path skips the file
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from FLAPPY_* variables
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("FLAPPY_AUDIO_ENABLED"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: FLAPPY_AUDIO_ENABLED=%q", ErrInvalidConfig, v)
		}
		c.Audio.Enabled = b
	}

	// Master volume 0-100 converted to 0.0-1.0
	if v, ok := lookup("FLAPPY_MASTER_VOLUME"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: FLAPPY_MASTER_VOLUME=%q", ErrInvalidConfig, v)
		}
		c.Audio.MasterVolume = min(max(float64(n)/100.0, 0), 1)
	}

	if v, ok := lookup("FLAPPY_FPS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: FLAPPY_FPS=%q", ErrInvalidConfig, v)
		}
		c.FPS = n
	}

	if v, ok := lookup("FLAPPY_COLLISION"); ok && v != "" {
		c.Collision = CollisionMode(strings.ToLower(v))
	}
	return nil
}

// Validate checks ranges and the playable geometry
func (c *Config) Validate() error {
	switch {
	case c.FPS < 10 || c.FPS > 240:
		return fmt.Errorf("%w: fps %d out of range [10, 240]", ErrInvalidConfig, c.FPS)
	case c.Collision != CollisionMask && c.Collision != CollisionRect:
		return fmt.Errorf("%w: collision %q, want mask or rect", ErrInvalidConfig, c.Collision)
	case c.Bird.Gravity <= 0:
		return fmt.Errorf("%w: bird.gravity must be positive", ErrInvalidConfig)
	case c.Bird.FlapImpulse >= 0:
		return fmt.Errorf("%w: bird.flap_impulse must be negative (upward)", ErrInvalidConfig)
	case c.Bird.SpriteScale < 1 || c.Bird.SpriteScale > 4:
		return fmt.Errorf("%w: bird.sprite_scale %d out of range [1, 4]", ErrInvalidConfig, c.Bird.SpriteScale)
	case c.Bird.X <= 0 || c.Bird.X >= constants.WorldWidth/2:
		return fmt.Errorf("%w: bird.x %.1f out of range", ErrInvalidConfig, c.Bird.X)
	case c.Pipes.Width <= 0:
		return fmt.Errorf("%w: pipes.width must be positive", ErrInvalidConfig)
	case c.Pipes.ScrollSpeed <= 0:
		return fmt.Errorf("%w: pipes.scroll_speed must be positive", ErrInvalidConfig)
	case c.Pipes.Margin < 0:
		return fmt.Errorf("%w: pipes.margin must not be negative", ErrInvalidConfig)
	case c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1:
		return fmt.Errorf("%w: audio.master_volume %.2f out of range [0, 1]", ErrInvalidConfig, c.Audio.MasterVolume)
	}

	birdSize := float64(constants.BirdSpriteSize * c.Bird.SpriteScale)
	if c.Pipes.Spacing <= c.Pipes.Width+birdSize {
		return fmt.Errorf("%w: pipes.spacing %.1f must exceed pipes.width plus bird width %.1f", ErrInvalidConfig, c.Pipes.Spacing, c.Pipes.Width+birdSize)
	}
	if c.Pipes.GapHeight <= birdSize {
		return fmt.Errorf("%w: pipes.gap_height %.1f must exceed bird height %.1f", ErrInvalidConfig, c.Pipes.GapHeight, birdSize)
	}
	if c.Pipes.GapHeight+2*c.Pipes.Margin >= constants.GroundY {
		return fmt.Errorf("%w: pipes.gap_height plus margins leave no safe band", ErrInvalidConfig)
	}
	return nil
}
