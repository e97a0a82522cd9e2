package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Theme holds the resolved colors and glyphs used to paint a frame.
type Theme struct {
	Head    core.Color
	Body    core.Color
	Food    core.Color
	Border  core.Color
	Title   core.Color
	Score   core.Color
	Overlay core.Color

	HeadGlyph rune
	BodyGlyph rune
	FoodGlyph rune
}

// DefaultTheme returns the theme of the built-in configuration.
func DefaultTheme() Theme {
	t, err := ThemeFromConfig(config.DefaultConfig())
	if err != nil {
		panic(fmt.Sprintf("tui: default theme: %v", err))
	}
	return t
}

// ThemeFromConfig resolves color names and glyphs from cfg.
func ThemeFromConfig(cfg config.Config) (Theme, error) {
	var t Theme
	colors := []struct {
		name string
		dst  *core.Color
	}{
		{cfg.Theme.Head, &t.Head},
		{cfg.Theme.Body, &t.Body},
		{cfg.Theme.Food, &t.Food},
		{cfg.Theme.Border, &t.Border},
		{cfg.Theme.Title, &t.Title},
		{cfg.Theme.Score, &t.Score},
		{cfg.Theme.Overlay, &t.Overlay},
	}
	for _, c := range colors {
		col, err := core.ParseColor(c.name)
		if err != nil {
			return Theme{}, fmt.Errorf("tui: theme: %w", err)
		}
		*c.dst = col
	}

	t.HeadGlyph = config.Glyph(cfg.Glyphs.Head)
	t.BodyGlyph = config.Glyph(cfg.Glyphs.Body)
	t.FoodGlyph = config.Glyph(cfg.Glyphs.Food)
	return t, nil
}
