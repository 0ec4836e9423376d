package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/phanxgames/podium"
	"github.com/phanxgames/podium/internal/config"
	"github.com/phanxgames/podium/internal/logging"
	"github.com/phanxgames/podium/manifest"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
	sessionID  string
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the run's logger from the config. Every record carries
// the run's session_id.
func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		level := cfg.Logging.Level
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			level = *c.logLevelFlag
		}
		c.sessionID = logging.NewSessionID()
		c.logger, c.loggerErr = logging.New(logging.Options{
			Level:     level,
			Format:    cfg.Logging.Format,
			SessionID: c.sessionID,
		})
	})
	return c.logger, c.loggerErr
}

// deckSource records where a registered deck came from, for `list`.
type deckSource struct {
	entry  podium.Entry
	origin string
}

// sources returns the built-in decks followed by manifests from the
// configured directories, in registration order. An extra manifest takes the
// place of any deck with the same ID.
func (c *commandContext) sources(ctx context.Context, extra ...*manifest.Manifest) ([]deckSource, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	builtin, err := builtinEntries()
	if err != nil {
		return nil, err
	}
	out := make([]deckSource, 0, len(builtin)+len(extra))
	for _, e := range builtin {
		out = append(out, deckSource{entry: e, origin: "builtin"})
	}
	dirs, err := manifest.LoadDirs(ctx, cfg.Decks.Dirs)
	if err != nil {
		return nil, err
	}
	for _, m := range dirs {
		out = append(out, deckSource{entry: m.Entry(), origin: m.Source})
	}
	for _, m := range extra {
		out = withSource(out, deckSource{entry: m.Entry(), origin: m.Source})
	}
	return out, nil
}

// withSource replaces the source registered under s's ID, or appends s when
// there is none. Decks named on the command line win over built-in and
// configured ones.
func withSource(srcs []deckSource, s deckSource) []deckSource {
	for i := range srcs {
		if srcs[i].entry.ID == s.entry.ID {
			srcs[i] = s
			return srcs
		}
	}
	return append(srcs, s)
}

func (c *commandContext) registry(ctx context.Context, extra ...*manifest.Manifest) (*podium.Registry, error) {
	srcs, err := c.sources(ctx, extra...)
	if err != nil {
		return nil, err
	}
	entries := make([]podium.Entry, len(srcs))
	for i, s := range srcs {
		entries[i] = s.entry
	}
	reg, err := podium.NewRegistry(entries...)
	if err != nil {
		return nil, fmt.Errorf("register decks: %w", err)
	}
	return reg, nil
}
