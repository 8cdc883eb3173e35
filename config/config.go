// Package config loads game settings from a TOML file with environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/sugar-pop/constants"
)

// ErrInvalid is wrapped by every Validate failure
var ErrInvalid = errors.New("config: invalid value")

// Config is the full runtime configuration, one field per TOML section
type Config struct {
	Game    GameConfig    `toml:"game"`
	World   WorldConfig   `toml:"world"`
	Audio   AudioConfig   `toml:"audio"`
	Logging LoggingConfig `toml:"logging"`
}

// GameConfig holds session pacing: level files, delays and frame timing
type GameConfig struct {
	LevelPattern        string        `toml:"level_pattern" env:"SUGARPOP_LEVEL_PATTERN"` // "X" is replaced by the level number
	StartLevel          int           `toml:"start_level" env:"SUGARPOP_START_LEVEL"`     // first level loaded after the intro
	FPS                 int           `toml:"fps" env:"SUGARPOP_FPS"`
	MaxTimeStep         time.Duration `toml:"max_time_step" env:"SUGARPOP_MAX_TIME_STEP"`
	IntroDelay          time.Duration `toml:"intro_delay"`
	SpoutDelay          time.Duration `toml:"spout_delay"`
	AdvanceDelay        time.Duration `toml:"advance_delay"`
	RestartDelay        time.Duration `toml:"restart_delay"`
	FailRestartDelay    time.Duration `toml:"fail_restart_delay"`
	FreezeTimersOnPause bool          `toml:"freeze_timers_on_pause" env:"SUGARPOP_FREEZE_TIMERS_ON_PAUSE"`
	LineSampleEvery     int           `toml:"line_sample_every"`
}

// WorldConfig holds world size and physics parameters
type WorldConfig struct {
	Width            float64 `toml:"width"`
	Height           float64 `toml:"height"`
	Gravity          float64 `toml:"gravity" env:"SUGARPOP_GRAVITY"`
	Iterations       int     `toml:"iterations"` // contact solver passes per step
	GrainRadius      float64 `toml:"grain_radius"`
	GrainFriction    float64 `toml:"grain_friction"`
	GrainRestitution float64 `toml:"grain_restitution"`
	WallFriction     float64 `toml:"wall_friction"`
	WallRestitution  float64 `toml:"wall_restitution"`
}

// AudioConfig controls sound cue playback
type AudioConfig struct {
	Enabled bool    `toml:"enabled" env:"SUGARPOP_AUDIO"`
	Volume  float64 `toml:"volume" env:"SUGARPOP_VOLUME"` // log2 gain, 0 is unchanged
}

// LoggingConfig selects the log level, format and file location
type LoggingConfig struct {
	Level  string `toml:"level" env:"SUGARPOP_LOG_LEVEL"`
	Format string `toml:"format" env:"SUGARPOP_LOG_FORMAT"` // "json" or "console"
	Debug  bool   `toml:"debug" env:"SUGARPOP_DEBUG"`
	Dir    string `toml:"dir" env:"SUGARPOP_LOG_DIR"`
}

// Load reads path on top of Defaults, then applies SUGARPOP_* environment overrides.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseEnv overlays environment variables onto target
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func Defaults() *Config {
	return &Config{
		Game: GameConfig{
			LevelPattern:     "levels/levelX.json",
			StartLevel:       1,
			FPS:              constants.DefaultFPS,
			MaxTimeStep:      constants.DefaultMaxTimeStep,
			IntroDelay:       constants.IntroDelay,
			SpoutDelay:       constants.SpoutDelay,
			AdvanceDelay:     constants.AdvanceDelay,
			RestartDelay:     constants.RestartDelay,
			FailRestartDelay: constants.FailRestartDelay,
			LineSampleEvery:  constants.LineSampleEvery,
		},
		World: WorldConfig{
			Width:            constants.WorldWidth,
			Height:           constants.WorldHeight,
			Gravity:          constants.Gravity,
			Iterations:       constants.PhysicsIterations,
			GrainRadius:      constants.GrainRadius,
			GrainFriction:    constants.GrainFriction,
			GrainRestitution: constants.GrainRestitution,
			WallFriction:     constants.WallFriction,
			WallRestitution:  constants.WallRestitution,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Dir:    "logs",
		},
	}
}

// Validate rejects values the game loop cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Game.LevelPattern == "":
		return fmt.Errorf("%w: game.level_pattern is empty", ErrInvalid)
	case c.Game.StartLevel < 1:
		return fmt.Errorf("%w: game.start_level %d < 1", ErrInvalid, c.Game.StartLevel)
	case c.Game.FPS <= 0:
		return fmt.Errorf("%w: game.fps %d", ErrInvalid, c.Game.FPS)
	case c.Game.MaxTimeStep <= 0:
		return fmt.Errorf("%w: game.max_time_step %s", ErrInvalid, c.Game.MaxTimeStep)
	case c.Game.IntroDelay < 0, c.Game.SpoutDelay < 0, c.Game.AdvanceDelay < 0,
		c.Game.RestartDelay < 0, c.Game.FailRestartDelay < 0:
		return fmt.Errorf("%w: negative delay", ErrInvalid)
	case c.Game.LineSampleEvery <= 0:
		return fmt.Errorf("%w: game.line_sample_every %d", ErrInvalid, c.Game.LineSampleEvery)
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size %gx%g", ErrInvalid, c.World.Width, c.World.Height)
	case c.World.Iterations <= 0:
		return fmt.Errorf("%w: world.iterations %d", ErrInvalid, c.World.Iterations)
	case c.World.GrainRadius <= 0:
		return fmt.Errorf("%w: world.grain_radius %g", ErrInvalid, c.World.GrainRadius)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalid, c.Logging.Format)
	}
	return nil
}
