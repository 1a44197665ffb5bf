// Package config resolves runtime settings from GRIDCRAWLER_* environment variables
package config

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/samber/oops"

	"github.com/lixenwraith/gridcrawler/engine"
	"github.com/lixenwraith/gridcrawler/parameter"
)

// Prefix is prepended to every variable name
const Prefix = "GRIDCRAWLER_"

// Config is the complete runtime configuration
type Config struct {
	// Level is the first level played
	Level string `env:"LEVEL"`
	// LevelDir overrides the builtin levels with *.yaml files from a directory
	LevelDir  string `env:"LEVEL_DIR"`
	Seed      uint64 `env:"SEED"`
	FrameRate int    `env:"FRAME_RATE"`

	Grid  GridConfig  `envPrefix:"GRID_"`
	Audio AudioConfig `envPrefix:"AUDIO_"`
	Log   LogConfig   `envPrefix:"LOG_"`
}

// GridConfig holds movement and interaction tunables
type GridConfig struct {
	CellLength      float64       `env:"CELL_LENGTH"`
	AwarenessCells  int           `env:"AWARENESS_CELLS"`
	LinearEpsilon   float64       `env:"LINEAR_EPSILON"`
	AngularEpsilon  float64       `env:"ANGULAR_EPSILON"`
	MoveSpeed       float64       `env:"MOVE_SPEED"`
	RotateSpeed     float64       `env:"ROTATE_SPEED"`
	EnemyMoveSpeed  float64       `env:"ENEMY_MOVE_SPEED"`
	EnemyThinkDelay time.Duration `env:"ENEMY_THINK_DELAY"`
	DodgeChance     float64       `env:"DODGE_CHANCE"`
}

// AudioConfig controls cue playback
type AudioConfig struct {
	Enabled    bool    `env:"ENABLED"`
	Volume     float64 `env:"VOLUME"`
	SampleRate int     `env:"SAMPLE_RATE"`
}

// LogConfig controls the slog handler
type LogConfig struct {
	Level  string `env:"LEVEL"`
	Format string `env:"FORMAT"`
	// File receives log output, empty writes to stderr
	File string `env:"FILE"`
}

// Default returns compiled-in settings
func Default() Config {
	return Config{
		Level:     "crypt",
		Seed:      1,
		FrameRate: parameter.FrameRate,
		Grid: GridConfig{
			CellLength:      parameter.CellLength,
			AwarenessCells:  parameter.AwarenessCells,
			LinearEpsilon:   parameter.LinearEpsilon,
			AngularEpsilon:  parameter.AngularEpsilon,
			MoveSpeed:       parameter.MoveSpeed,
			RotateSpeed:     parameter.RotateSpeed,
			EnemyMoveSpeed:  parameter.EnemyMoveSpeed,
			EnemyThinkDelay: parameter.EnemyThinkDelay,
			DodgeChance:     parameter.DodgeChance,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     parameter.AudioMasterVolume,
			SampleRate: parameter.AudioSampleRate,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load overlays the process environment on the defaults
func Load() (Config, error) {
	return load(env.Options{Prefix: Prefix})
}

// LoadFrom overlays an explicit variable map on the defaults
func LoadFrom(vars map[string]string) (Config, error) {
	return load(env.Options{Prefix: Prefix, Environment: vars})
}

func load(opts env.Options) (Config, error) {
	cfg := Default()
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, oops.In("config").Wrapf(err, "parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the engine cannot run with
func (c Config) Validate() error {
	errb := oops.In("config")
	g := c.Grid
	switch {
	case g.CellLength <= 0:
		return errb.With("cell_length", g.CellLength).Errorf("cell length must be positive")
	case g.LinearEpsilon <= 0 || g.LinearEpsilon >= g.CellLength/2:
		return errb.With("linear_epsilon", g.LinearEpsilon).Errorf("linear epsilon must be within (0, cell/2)")
	case g.AngularEpsilon <= 0 || g.AngularEpsilon >= 45:
		return errb.With("angular_epsilon", g.AngularEpsilon).Errorf("angular epsilon must be within (0, 45)")
	case g.MoveSpeed <= 0 || g.RotateSpeed <= 0 || g.EnemyMoveSpeed <= 0:
		return errb.Errorf("speeds must be positive")
	case g.AwarenessCells < 1:
		return errb.With("awareness_cells", g.AwarenessCells).Errorf("awareness must be at least one cell")
	case g.DodgeChance < 0 || g.DodgeChance > 1:
		return errb.With("dodge_chance", g.DodgeChance).Errorf("dodge chance must be within [0, 1]")
	case c.FrameRate < 1:
		return errb.With("frame_rate", c.FrameRate).Errorf("frame rate must be positive")
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return errb.With("volume", c.Audio.Volume).Errorf("volume must be within [0, 1]")
	}
	if _, ok := parseLevel(c.Log.Level); !ok {
		return errb.With("log_level", c.Log.Level).Errorf("unknown log level")
	}
	if f := strings.ToLower(c.Log.Format); f != "text" && f != "json" {
		return errb.With("log_format", c.Log.Format).Errorf("log format must be text or json")
	}
	return nil
}

// Resource converts grid settings to the engine resource
func (c Config) Resource() *engine.ConfigResource {
	g := c.Grid
	return &engine.ConfigResource{
		CellLength:      g.CellLength,
		AwarenessCells:  g.AwarenessCells,
		LinearEpsilon:   g.LinearEpsilon,
		AngularEpsilon:  g.AngularEpsilon,
		ExactTolerance:  parameter.ExactMatchTolerance,
		MoveSpeed:       g.MoveSpeed,
		RotateSpeed:     g.RotateSpeed,
		EnemyMoveSpeed:  g.EnemyMoveSpeed,
		EnemyThinkDelay: g.EnemyThinkDelay,
		DodgeChance:     g.DodgeChance,
	}
}

// FrameDuration returns the tick period
func (c Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

// Logger builds a slog logger writing to w
func (l LogConfig) Logger(w io.Writer) *slog.Logger {
	lvl, _ := parseLevel(l.Level)
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, bool) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, false
	}
	return lvl, true
}
