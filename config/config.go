// Package config loads runtime settings from SNAKE_* environment variables and command-line flags.
// Flags take precedence; their defaults are the environment values.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/engine"
)

// Display backends
const (
	DisplayTerminal = "terminal"
	DisplayWindow   = "window"
)

// Barrier placements
const (
	PlacementRandom = "random"
	PlacementCenter = "center"
)

// Config holds every tunable of a run
type Config struct {
	Display string `env:"SNAKE_DISPLAY" envDefault:"terminal"`
	Audio   string `env:"SNAKE_AUDIO" envDefault:"beep"`

	// Panel size in pixels; the terminal backend shrinks it to fit the screen
	Width  int `env:"SNAKE_WIDTH" envDefault:"320"`
	Height int `env:"SNAKE_HEIGHT" envDefault:"240"`

	WindowScale int     `env:"SNAKE_WINDOW_SCALE" envDefault:"3"`
	Volume      float64 `env:"SNAKE_VOLUME" envDefault:"0.3"`

	// Seed 0 draws a seed from the clock
	Seed             uint64        `env:"SNAKE_SEED" envDefault:"0"`
	TickDelay        time.Duration `env:"SNAKE_TICK_DELAY" envDefault:"400ms"`
	MaxSpawnAttempts int           `env:"SNAKE_MAX_SPAWN_ATTEMPTS" envDefault:"1000"`
	BarrierPlacement string        `env:"SNAKE_BARRIER_PLACEMENT" envDefault:"random"`

	Locale string `env:"SNAKE_LOCALE" envDefault:"en"`
	Debug  bool   `env:"SNAKE_DEBUG" envDefault:"false"`
}

// Load parses the environment, then args as flags, then validates the result
func Load(name string, args []string) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Display, "display", c.Display, "Display backend: terminal, window")
	fs.StringVar(&c.Audio, "audio", c.Audio, "Audio backend: beep, oto, none")
	fs.IntVar(&c.Width, "width", c.Width, "Panel width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "Panel height in pixels")
	fs.IntVar(&c.WindowScale, "scale", c.WindowScale, "Window magnification")
	fs.Float64Var(&c.Volume, "volume", c.Volume, "Tone volume in [0, 1]")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Spawner seed, 0 for random")
	fs.DurationVar(&c.TickDelay, "tick", c.TickDelay, "Initial tick delay")
	fs.IntVar(&c.MaxSpawnAttempts, "spawn-attempts", c.MaxSpawnAttempts, "Samples per placement before fallback")
	fs.StringVar(&c.BarrierPlacement, "barrier", c.BarrierPlacement, "Barrier placement: random, center")
	fs.StringVar(&c.Locale, "locale", c.Locale, "Label locale (BCP 47)")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Write logs to logs/vi-snake.log")
}

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Validate rejects unknown backends and out-of-range values, normalizing names to lower case
func (c *Config) Validate() error {
	c.Display = strings.ToLower(strings.TrimSpace(c.Display))
	switch c.Display {
	case DisplayTerminal, DisplayWindow:
	default:
		return fmt.Errorf("%w: unknown display %q", ErrInvalid, c.Display)
	}

	if _, err := audio.ParseBackend(c.Audio); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	c.BarrierPlacement = strings.ToLower(strings.TrimSpace(c.BarrierPlacement))
	switch c.BarrierPlacement {
	case PlacementRandom, PlacementCenter:
	default:
		return fmt.Errorf("%w: unknown barrier placement %q", ErrInvalid, c.BarrierPlacement)
	}

	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: panel size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("%w: volume %v outside [0, 1]", ErrInvalid, c.Volume)
	}
	if c.TickDelay < time.Millisecond {
		return fmt.Errorf("%w: tick delay %v", ErrInvalid, c.TickDelay)
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("%w: locale %q: %v", ErrInvalid, c.Locale, err)
	}
	return nil
}

// AudioBackend returns the validated audio backend
func (c *Config) AudioBackend() audio.Backend {
	b, _ := audio.ParseBackend(c.Audio)
	return b
}

// Language returns the validated locale tag
func (c *Config) Language() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// Placement returns the spawner barrier placement
func (c *Config) Placement() engine.BarrierPlacement {
	if c.BarrierPlacement == PlacementCenter {
		return engine.BarrierCenter
	}
	return engine.BarrierRandom
}

// TickDelayMs returns the initial tick delay in whole milliseconds
func (c *Config) TickDelayMs() int {
	return int(c.TickDelay / time.Millisecond)
}
