// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package workspace

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSurface(t *testing.T) {
	ws := New(400, 300)
	require.NotNil(t, ws.SVG)
	require.NotNil(t, ws.Canvas())
	assert.Equal(t, "canvas", ws.Canvas().Name)
	assert.True(t, ws.Canvas().Parent == ws.SVG.Root)
	assert.Empty(t, ws.Blocks())
}

func TestNewBlock(t *testing.T) {
	ws := New(400, 300)
	b := ws.NewBlock("print")
	assert.Len(t, ws.Blocks(), 1)
	assert.True(t, b.Group().Parent == ws.Canvas())

	assert.True(t, ws.BlockByName("print") == b)
	assert.Nil(t, ws.BlockByName("missing"))
}

func TestWriteXML(t *testing.T) {
	ws := New(400, 300)
	ws.NewBlock("print")
	var buf bytes.Buffer
	require.NoError(t, ws.WriteXML(&buf, true))
	out := buf.String()
	assert.True(t, strings.Contains(out, "svg"))
	assert.True(t, strings.Contains(out, "canvas"))
}
