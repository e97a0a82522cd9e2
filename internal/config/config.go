// Package config provides YAML-based configuration loading for the snake
// game: colors, glyphs, logging and SSH server settings.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Config is the complete application configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Theme  ThemeConfig  `yaml:"theme"`
	Glyphs GlyphConfig  `yaml:"glyphs"`
	Server ServerConfig `yaml:"server"`
}

// LogConfig controls the application logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty: stderr for serve, discarded for play
}

// ThemeConfig names the color of each screen element (see core.ParseColor).
type ThemeConfig struct {
	Head    string `yaml:"head"`
	Body    string `yaml:"body"`
	Food    string `yaml:"food"`
	Border  string `yaml:"border"`
	Title   string `yaml:"title"`
	Score   string `yaml:"score"`
	Overlay string `yaml:"overlay"`
}

// GlyphConfig holds the single-character glyphs drawn on the board.
type GlyphConfig struct {
	Head string `yaml:"head"`
	Body string `yaml:"body"`
	Food string `yaml:"food"`
}

// ServerConfig defines the SSH server used by "snake serve".
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"` // Empty: ~/.snake/host_key
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// Validate checks that every value can be used as-is.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}

	colors := map[string]string{
		"head":    c.Theme.Head,
		"body":    c.Theme.Body,
		"food":    c.Theme.Food,
		"border":  c.Theme.Border,
		"title":   c.Theme.Title,
		"score":   c.Theme.Score,
		"overlay": c.Theme.Overlay,
	}
	for field, name := range colors {
		if _, err := core.ParseColor(name); err != nil {
			return fmt.Errorf("config: theme.%s: %w", field, err)
		}
	}

	glyphs := map[string]string{
		"head": c.Glyphs.Head,
		"body": c.Glyphs.Body,
		"food": c.Glyphs.Food,
	}
	for field, g := range glyphs {
		if utf8.RuneCountInString(g) != 1 {
			return fmt.Errorf("config: glyphs.%s must be a single character, got %q", field, g)
		}
	}

	if c.Server.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: server.idle_timeout_minutes must not be negative")
	}
	return nil
}

// Glyph returns the first rune of a validated glyph string.
func Glyph(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
