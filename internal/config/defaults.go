package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level: "info",
		},
		Theme: ThemeConfig{
			Head:    "bright_green",
			Body:    "green",
			Food:    "red",
			Border:  "gray",
			Title:   "white",
			Score:   "yellow",
			Overlay: "bright_white",
		},
		Glyphs: GlyphConfig{
			Head: "O",
			Body: "o",
			Food: "*",
		},
		Server: ServerConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
