// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme provides the visual theme for the block-editor caret,
// with TOML file storage and live reload.
package theme

import (
	"fmt"
	"time"

	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/colors"
)

// Theme holds the configurable visual parameters of the caret.
// The zero value is not usable: call [Theme.Defaults] or [Open].
type Theme struct {
	// FlashColor is the fill color the caret flashes with, as a hex string.
	FlashColor string

	// StrokeColor is the caret outline color, as a hex string.
	StrokeColor string

	// StrokeWidth is the caret outline width in user units.
	StrokeWidth float32

	// FlashPeriod is how long the caret fill stays in each phase of
	// the flash cycle.
	FlashPeriod time.Duration
}

// Defaults sets default theme values.
func (th *Theme) Defaults() {
	th.FlashColor = "#cc0a0a"
	th.StrokeColor = "#cc0a0a"
	th.StrokeWidth = 1
	th.FlashPeriod = 500 * time.Millisecond
}

// Validate checks that the theme is usable: colors parse and the
// period and width are positive.
func (th *Theme) Validate() error {
	if _, err := colors.FromHex(th.FlashColor); err != nil {
		return fmt.Errorf("theme: invalid flash color %q: %w", th.FlashColor, err)
	}
	if _, err := colors.FromHex(th.StrokeColor); err != nil {
		return fmt.Errorf("theme: invalid stroke color %q: %w", th.StrokeColor, err)
	}
	if th.StrokeWidth <= 0 {
		return fmt.Errorf("theme: stroke width must be positive, got %g", th.StrokeWidth)
	}
	if th.FlashPeriod <= 0 {
		return fmt.Errorf("theme: flash period must be positive, got %v", th.FlashPeriod)
	}
	return nil
}

// Open loads a theme from the given TOML file, on top of defaults,
// and validates it.
func Open(filename string) (*Theme, error) {
	th := &Theme{}
	th.Defaults()
	if err := tomlx.Open(th, filename); err != nil {
		return nil, err
	}
	if err := th.Validate(); err != nil {
		return nil, err
	}
	return th, nil
}

// Save saves the theme to the given TOML file.
func (th *Theme) Save(filename string) error {
	return tomlx.Save(th, filename)
}
