// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cursor

import "time"

// Flasher drives the caret's looping fill flash: the visible shape's
// fill alternates between the theme flash color and nothing, one
// Period per phase. The host ticks it from its animation loop; there
// is no internal timer.
type Flasher struct {
	// Period is how long each phase of the flash cycle lasts.
	Period time.Duration

	on   bool
	last time.Time
}

// On reports whether the flash is in its filled phase.
func (f *Flasher) On() bool { return f.on }

// Restart puts the flash back in its filled phase with a full period
// ahead of it, so the caret always reappears solid after a move.
func (f *Flasher) Restart() {
	f.on = true
	f.last = time.Time{}
}

// Tick advances the flash to the given time, reporting whether the
// phase flipped.
func (f *Flasher) Tick(now time.Time) bool {
	if f.Period <= 0 {
		return false
	}
	if f.last.IsZero() {
		f.last = now
		return false
	}
	if now.Sub(f.last) < f.Period {
		return false
	}
	f.on = !f.on
	f.last = now
	return true
}

// Flash advances the caret's fill flash to the given time; the host
// calls this from its animation tick. It only touches the scene when
// the flash phase flips.
func (cv *View) Flash(now time.Time) {
	if cv.root == nil {
		return
	}
	if cv.flash.Tick(now) {
		cv.applyFill()
	}
}

func (cv *View) applyFill() {
	fill := "none"
	if cv.flash.On() {
		fill = cv.theme.FlashColor
	}
	for _, sh := range cv.shapes() {
		sh.AsNodeBase().SetColorProperties("fill", fill)
	}
}
