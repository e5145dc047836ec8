// Package config loads the tidying configuration from TOML files and
// environment variables.
//
// Lookup order is defaults, then the config file, then DRAWERTIDY_*
// environment variables. A missing config file is not an error; the
// defaults apply.
package config

import (
	"github.com/dshills/drawertidy/internal/logging"
	"github.com/dshills/drawertidy/internal/tidy"
)

// Config is the full application configuration.
type Config struct {
	Styles  Styles  `toml:"styles"`
	Logging Logging `toml:"logging"`
}

// Styles configures drawer decoration.
type Styles struct {
	// Top is the topmost-drawer style: "invisible" or "keep".
	Top string `toml:"top"`

	// General is the style for drawers under headlines:
	// "fringe-marker", "inline-symbol" or "invisible".
	General string `toml:"general"`

	// InlineSymbol is the glyph shown for the inline-symbol style.
	InlineSymbol string `toml:"inline_symbol"`
}

// Logging configures the logger.
type Logging struct {
	// Level is the minimum log level name.
	Level string `toml:"level"`
}

// Default returns the default configuration.
func Default() Config {
	styles := tidy.DefaultStyleConfig()
	return Config{
		Styles: Styles{
			Top:          styles.Top.String(),
			General:      styles.General.String(),
			InlineSymbol: styles.InlineSymbol,
		},
		Logging: Logging{
			Level: logging.LevelInfo.String(),
		},
	}
}

// StyleConfig resolves the configured style names into engine styles.
func (c Config) StyleConfig() (tidy.StyleConfig, error) {
	top, err := tidy.ParseTopStyle(c.Styles.Top)
	if err != nil {
		return tidy.StyleConfig{}, err
	}
	general, err := tidy.ParseGeneralStyle(c.Styles.General)
	if err != nil {
		return tidy.StyleConfig{}, err
	}

	symbol := c.Styles.InlineSymbol
	if symbol == "" {
		symbol = tidy.DefaultStyleConfig().InlineSymbol
	}

	return tidy.StyleConfig{
		Top:          top,
		General:      general,
		InlineSymbol: symbol,
	}, nil
}

// LogLevel resolves the configured log level.
func (c Config) LogLevel() logging.Level {
	return logging.ParseLevel(c.Logging.Level)
}
