package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// New reads the configuration from the process environment
func New(ctx context.Context) (*Config, error) {
	return NewWithLookuper(ctx, envconfig.OsLookuper())
}

// NewWithLookuper reads the configuration from an arbitrary source
func NewWithLookuper(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &cfg, l); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type Config struct {
	Window *Window
	Loop   *Loop

	ColorStep uint8 `env:"COLOR_STEP,default=5"`

	// Preferred SDL video driver, tried before the platform fallbacks
	VideoDriver string `env:"SDL_VIDEODRIVER"`
	// Optional TTF tried before the system font list
	FontPath string `env:"FONT_PATH"`
}

type Window struct {
	Title  string `env:"WINDOW_TITLE,default=SDL Tutorial"`
	Width  int32  `env:"WINDOW_WIDTH,default=800"`
	Height int32  `env:"WINDOW_HEIGHT,default=600"`
}

type Loop struct {
	PollInterval  time.Duration `env:"POLL_INTERVAL,default=16ms"`
	StatsInterval time.Duration `env:"STATS_INTERVAL,default=10s"`
}

// Validate rejects values the window and loop cannot work with
func (c *Config) Validate() error {
	if c.Window == nil || c.Loop == nil {
		return fmt.Errorf("config is incomplete")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Loop.PollInterval < 0 {
		return fmt.Errorf("poll interval must not be negative: %v", c.Loop.PollInterval)
	}
	if c.Loop.StatsInterval < 0 {
		return fmt.Errorf("stats interval must not be negative: %v", c.Loop.StatsInterval)
	}
	return nil
}
