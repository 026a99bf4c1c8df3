// Package config loads the kiosk configuration from a TOML file once at
// startup. Configuration never changes without a restart, so validation
// failures are fatal.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
)

const (
	defaultScreenWidth  = 800
	defaultScreenHeight = 480
	defaultFramebuffer  = "/dev/fb0"
	defaultOutputDir    = "/tmp/drastic-view"
	defaultMovieSection = "Movies"
	defaultShowSection  = "TV Shows"
)

// Config is the immutable process configuration
type Config struct {
	// ServerURL is the media server base URL, e.g. http://plex:32400
	ServerURL string `toml:"server_url"`
	// AuthToken authenticates every API and image request
	AuthToken string `toml:"auth_token"`
	// DisplaySeconds is the dwell time per slide and for the idle screen
	DisplaySeconds float64 `toml:"display_seconds"`
	// TimeFormat is a strftime-style format for the idle clock
	TimeFormat string `toml:"time_format"`
	// RecentItemCount caps the recently-added slideshow length
	RecentItemCount int `toml:"recent_item_count"`

	// ScreenWidth and ScreenHeight fix the kiosk surface size; zero
	// means detect from the attached display
	ScreenWidth  int `toml:"screen_width"`
	ScreenHeight int `toml:"screen_height"`

	// FramebufferDevice is the frame output device on Linux
	FramebufferDevice string `toml:"framebuffer_device"`
	// OutputDir receives frame files when no framebuffer is available
	OutputDir string `toml:"output_dir"`

	// MovieSection and ShowSection name the library sections counted on
	// the idle screen
	MovieSection string `toml:"movie_section"`
	ShowSection  string `toml:"show_section"`
}

// Dwell returns DisplaySeconds as a duration
func (c *Config) Dwell() time.Duration {
	return time.Duration(c.DisplaySeconds * float64(time.Second))
}

// Load reads and validates the configuration file at path. Environment
// variables DRASTIC_SERVER_URL and DRASTIC_AUTH_TOKEN override the file
// so tokens can stay out of it.
func Load(path string, logger *zap.Logger) (*Config, error) {
	cfg := Config{
		ScreenWidth:       0,
		ScreenHeight:      0,
		FramebufferDevice: defaultFramebuffer,
		OutputDir:         defaultOutputDir,
		MovieSection:      defaultMovieSection,
		ShowSection:       defaultShowSection,
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if v := os.Getenv("DRASTIC_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("DRASTIC_AUTH_TOKEN"); v != "" {
		cfg.AuthToken = v
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	logger.Info("Configuration loaded",
		zap.String("path", path),
		zap.String("serverURL", cfg.ServerURL),
		zap.Float64("displaySeconds", cfg.DisplaySeconds),
		zap.Int("recentItemCount", cfg.RecentItemCount))

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("server_url is required")
	}
	if c.AuthToken == "" {
		return fmt.Errorf("auth_token is required")
	}
	if c.DisplaySeconds <= 0 {
		return fmt.Errorf("display_seconds must be > 0, got %v", c.DisplaySeconds)
	}
	if c.TimeFormat == "" {
		return fmt.Errorf("time_format is required")
	}
	if c.RecentItemCount <= 0 {
		return fmt.Errorf("recent_item_count must be > 0, got %d", c.RecentItemCount)
	}
	if c.ScreenWidth < 0 || c.ScreenHeight < 0 {
		return fmt.Errorf("screen dimensions must not be negative")
	}
	return nil
}
