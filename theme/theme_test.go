// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	th := &Theme{}
	th.Defaults()
	assert.Equal(t, "#cc0a0a", th.FlashColor)
	assert.Equal(t, 500*time.Millisecond, th.FlashPeriod)
	assert.NoError(t, th.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Theme)
	}{
		{"bad-flash-color", func(th *Theme) { th.FlashColor = "red-ish" }},
		{"bad-stroke-color", func(th *Theme) { th.StrokeColor = "" }},
		{"zero-width", func(th *Theme) { th.StrokeWidth = 0 }},
		{"negative-period", func(th *Theme) { th.FlashPeriod = -time.Second }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := &Theme{}
			th.Defaults()
			tt.mutate(th)
			assert.Error(t, th.Validate())
		})
	}
}

func TestSaveOpen(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "caret.toml")
	th := &Theme{}
	th.Defaults()
	th.FlashColor = "#3366ff"
	th.StrokeWidth = 2
	require.NoError(t, th.Save(fname))

	got, err := Open(fname)
	require.NoError(t, err)
	assert.Equal(t, th, got)
}

func TestOpenRejectsInvalid(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "caret.toml")
	th := &Theme{}
	th.Defaults()
	th.FlashColor = "not-a-color"
	require.NoError(t, th.Save(fname))

	_, err := Open(fname)
	assert.Error(t, err)
}

func TestWatchReloads(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "caret.toml")
	th := &Theme{}
	th.Defaults()
	require.NoError(t, th.Save(fname))

	var got atomic.Pointer[Theme]
	w, err := Watch(fname, func(th *Theme) { got.Store(th) })
	require.NoError(t, err)
	defer w.Close()

	th.FlashColor = "#112233"
	require.NoError(t, th.Save(fname))

	require.Eventually(t, func() bool {
		nt := got.Load()
		return nt != nil && nt.FlashColor == "#112233"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatchCloseIdempotent(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "caret.toml")
	th := &Theme{}
	th.Defaults()
	require.NoError(t, th.Save(fname))

	w, err := Watch(fname, func(*Theme) {})
	require.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
