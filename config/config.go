// Copyright (c) 2026, The WidgetZero Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the settings that control widget metrics
// and docking behavior, and their loading from TOML files.
package config

import (
	"io/fs"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"widgetzero.org/wz/base/errors"
	"widgetzero.org/wz/base/iox/tomlx"
)

// Config is the main config struct.
type Config struct {

	// LogLevel is the slog level name used by wz tools
	// ("debug", "info", "warn" or "error").
	LogLevel string

	// Metrics are the pixel metrics used to measure widgets.
	Metrics Metrics

	// Dock are the window docking settings.
	Dock Dock

	// KeyMap overrides the default key map: it maps key chords
	// such as "Control+A" to function names such as "Home".
	KeyMap map[string]string
}

// Metrics are the pixel sizes that widgets add around the text
// measured by the renderer when they size themselves.
type Metrics struct {
	WindowBorder        int
	WindowHeaderPadding int
	ButtonPaddingX      int
	ButtonPaddingY      int
	CheckboxBoxSize     int
	CheckboxSpacing     int
	RadioButtonSize     int
	ScrollerSize        int
	ScrollerMinNub      int
	ListItemPadding     int
	ListBorder          int
	ComboArrowWidth     int
	TextEditPadding     int
	TextEditWidth       int
	TabPaddingX         int
	TabPaddingY         int
	GroupBoxMargin      int
	DockIconSize        int
}

// Dock are the window docking settings.
type Dock struct {

	// StripWidth is the width of the strip along each main window
	// edge that a dragged window header must enter to preview docking.
	StripWidth int

	// Size is the width (west, east) or height (north, south)
	// that a dock edge takes when it holds docked windows.
	Size int

	// UndockDistance is how far a docked tab must be dragged away
	// from its tab bar before it is undocked.
	UndockDistance int

	// ShowIcons is whether to show a dock icon at the middle of each
	// edge while a window is dragged. Dropping on an icon also docks.
	ShowIcons bool
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		LogLevel: "warn",
		Metrics: Metrics{
			WindowBorder:        4,
			WindowHeaderPadding: 4,
			ButtonPaddingX:      8,
			ButtonPaddingY:      4,
			CheckboxBoxSize:     16,
			CheckboxSpacing:     8,
			RadioButtonSize:     16,
			ScrollerSize:        16,
			ScrollerMinNub:      8,
			ListItemPadding:     2,
			ListBorder:          1,
			ComboArrowWidth:     16,
			TextEditPadding:     4,
			TextEditWidth:       100,
			TabPaddingX:         8,
			TabPaddingY:         4,
			GroupBoxMargin:      8,
			DockIconSize:        48,
		},
		Dock: Dock{
			StripWidth:     32,
			Size:           200,
			UndockDistance: 16,
			ShowIcons:      true,
		},
		KeyMap: map[string]string{},
	}
}

// DefaultPath returns the default location of the user config file.
func DefaultPath() string {
	p, err := homedir.Expand(filepath.Join("~", ".config", "wz", "config.toml"))
	if err != nil {
		return "config.toml"
	}
	return p
}

// Open returns the [Default] config overlaid with the settings
// in the given TOML file.
func Open(filename string) (*Config, error) {
	cfg := Default()
	if err := tomlx.Open(cfg, filename); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// OpenDefault opens the config at [DefaultPath]. A missing file is
// not an error; the default config is returned.
func OpenDefault() (*Config, error) {
	cfg, err := Open(DefaultPath())
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	return cfg, err
}

// Save writes the config to the given TOML file.
func (c *Config) Save(filename string) error {
	return tomlx.Save(c, filename)
}
