// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package block

import (
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/svg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCanvas() *svg.Group {
	sv := svg.NewSVG(math32.Vec2(400, 300))
	return svg.NewGroup(sv.Root)
}

func TestConnectionKindString(t *testing.T) {
	tests := []struct {
		kind ConnectionKind
		want string
	}{
		{Input, "input"},
		{Output, "output"},
		{Next, "next"},
		{Previous, "previous"},
		{ConnectionKind(99), "invalid"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestKindFromString(t *testing.T) {
	for _, kind := range []ConnectionKind{Input, Output, Next, Previous} {
		got, err := KindFromString(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, got)
	}
	_, err := KindFromString("sideways")
	assert.Error(t, err)
}

func TestNewBlock(t *testing.T) {
	canvas := newTestCanvas()
	b := New(canvas, "if")
	assert.Equal(t, "if", b.Name())
	assert.True(t, b.Group().Parent == canvas)
	assert.False(t, b.RTL())
	assert.Equal(t, math32.Vector2{}, b.Size())
}

func TestBlockPosSetsTransform(t *testing.T) {
	canvas := newTestCanvas()
	b := New(canvas, "if")
	b.SetPos(math32.Vec2(25, 40))
	assert.Equal(t, math32.Vec2(25, 40), b.Pos())
	assert.Equal(t, math32.Translate2D(25, 40), b.Group().Paint.Transform)
	assert.NotNil(t, b.Group().Property("transform"))
}

func TestFieldUnderBlock(t *testing.T) {
	canvas := newTestCanvas()
	b := New(canvas, "if")
	f := b.AddField("cond", math32.Vec2(40, 18))
	assert.True(t, f.Group().Parent == b.Group())
	assert.True(t, f.Owner() == b)
	assert.Equal(t, math32.Vec2(40, 18), f.BorderBox())
	assert.Equal(t, "cond", f.Name())
	assert.Len(t, b.Fields(), 1)

	f.SetPos(math32.Vec2(8, 4))
	assert.Equal(t, math32.Translate2D(8, 4), f.Group().Paint.Transform)
}

func TestConnections(t *testing.T) {
	canvas := newTestCanvas()
	b := New(canvas, "loop")
	b.AddConnection(Previous, math32.Vec2(16, 0))
	b.AddConnection(Next, math32.Vec2(16, 48))
	b.AddConnection(Input, math32.Vec2(80, 24))
	assert.Len(t, b.Connections(), 3)

	c := b.ConnectionOf(Next)
	require.NotNil(t, c)
	assert.Equal(t, Next, c.Kind())
	assert.Equal(t, math32.Vec2(16, 48), c.Offset())
	assert.True(t, c.Owner() == b)

	assert.Nil(t, b.ConnectionOf(Output))
}

func TestNestedBlocks(t *testing.T) {
	canvas := newTestCanvas()
	outer := New(canvas, "outer")
	inner := New(outer.Group(), "inner")
	assert.True(t, inner.Group().Parent == outer.Group())
}
