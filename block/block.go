// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package block provides the object model for a block-based visual
// programming surface: blocks, their fields, and their connections.
// Each block and field owns its own group in the SVG scene, so anything
// rendered relative to one (selection outlines, carets, drag shadows)
// can simply be parented under that group and use local coordinates.
package block

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/svg"
	"cogentcore.org/core/tree"
)

// Block is one block on the surface. It owns an [svg.Group] parented
// under the workspace canvas (or under a parent block's group for
// nested blocks), positioned via the group's translate transform.
// All block-relative geometry is in the group's local coordinates,
// with the block's top-left at the origin.
type Block struct {
	group *svg.Group

	// pos is the block position in its parent's coordinates.
	pos math32.Vector2

	// size is the rendered width and height of the block.
	size math32.Vector2

	// rtl is whether this block renders in right-to-left layout mode.
	rtl bool

	fields      []*Field
	connections []*Connection
}

// New creates a new block with its own group under the given parent,
// which is either the workspace canvas or another block's group.
func New(parent tree.Node, name string) *Block {
	b := &Block{}
	b.group = svg.NewGroup(parent)
	b.group.SetName(name)
	return b
}

// Group returns the block's SVG group, the anchor for anything
// rendered in the block's coordinate space.
func (b *Block) Group() *svg.Group { return b.group }

// Name returns the block's name, which is the name of its group.
func (b *Block) Name() string { return b.group.Name }

// Pos returns the block position in its parent's coordinates.
func (b *Block) Pos() math32.Vector2 { return b.pos }

// SetPos positions the block in its parent's coordinates by setting
// the translate transform on the block's group.
func (b *Block) SetPos(pos math32.Vector2) *Block {
	b.pos = pos
	b.group.Paint.Transform = math32.Translate2D(pos.X, pos.Y)
	b.group.SetTransformProperty()
	return b
}

// Size returns the rendered width and height of the block.
func (b *Block) Size() math32.Vector2 { return b.size }

// SetSize sets the rendered width and height of the block.
func (b *Block) SetSize(sz math32.Vector2) *Block {
	b.size = sz
	return b
}

// RTL returns whether this block renders in right-to-left layout mode.
func (b *Block) RTL() bool { return b.rtl }

// SetRTL sets right-to-left layout mode for this block.
// It is a per-block property: nested blocks do not inherit it.
func (b *Block) SetRTL(rtl bool) *Block {
	b.rtl = rtl
	return b
}

// Fields returns the block's fields in order.
func (b *Block) Fields() []*Field { return b.fields }

// Connections returns the block's connections in order.
func (b *Block) Connections() []*Connection { return b.connections }

// ConnectionOf returns the first connection of the given kind,
// or nil if the block has none.
func (b *Block) ConnectionOf(kind ConnectionKind) *Connection {
	for _, c := range b.connections {
		if c.kind == kind {
			return c
		}
	}
	return nil
}

// AddField adds a field with the given name and rendered border box
// size, creating its group under the block's group.
func (b *Block) AddField(name string, border math32.Vector2) *Field {
	f := &Field{owner: b, border: border}
	f.group = svg.NewGroup(b.group)
	f.group.SetName(name)
	b.fields = append(b.fields, f)
	return f
}

// AddConnection adds a connection of the given kind at the given
// offset in block-local coordinates.
func (b *Block) AddConnection(kind ConnectionKind, offset math32.Vector2) *Connection {
	c := &Connection{owner: b, kind: kind, offset: offset}
	b.connections = append(b.connections, c)
	return c
}
