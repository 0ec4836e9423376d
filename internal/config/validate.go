package config

import (
	"fmt"

	"github.com/phanxgames/podium"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateWindow(); err != nil {
		return err
	}
	if err := c.validatePlayback(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateWindow() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window: width and height must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

func (c *Config) validatePlayback() error {
	if c.Playback.Transition == "" {
		return nil
	}
	if _, err := podium.ParseTransition(c.Playback.Transition); err != nil {
		return fmt.Errorf("playback.transition: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
