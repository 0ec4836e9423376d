package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeWindow()
	c.normalizePlayback()
	if err := c.normalizeDecks(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeWindow() {
	c.Window.Title = strings.TrimSpace(c.Window.Title)
	if c.Window.Title == "" {
		c.Window.Title = defaultTitle
	}
}

func (c *Config) normalizePlayback() {
	c.Playback.Transition = strings.ToLower(strings.TrimSpace(c.Playback.Transition))
	c.Playback.StartDeck = strings.TrimSpace(c.Playback.StartDeck)
}

func (c *Config) normalizeDecks() error {
	dirs := c.Decks.Dirs[:0]
	for i, dir := range c.Decks.Dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		expanded, err := expandPath(strings.TrimSpace(dir))
		if err != nil {
			return fmt.Errorf("decks.dirs[%d]: %w", i, err)
		}
		dirs = append(dirs, expanded)
	}
	c.Decks.Dirs = dirs
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
