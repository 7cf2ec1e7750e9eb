// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package workspace provides the editor surface for a block-based
// visual programming editor: an SVG document with a root canvas group
// that all blocks (and block-relative decorations such as the caret)
// live under.
package workspace

import (
	"io"

	"cogentcore.org/blocks/block"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/svg"
)

// Surface is one editor surface. It owns the [svg.SVG] document and
// the canvas group at its root. A surface is created once per editor
// and lives as long as the editor does.
type Surface struct {
	// SVG is the underlying SVG document.
	SVG *svg.SVG

	canvas *svg.Group
	blocks []*block.Block
}

// New creates a new surface of the given size, with an empty canvas
// group at the root of the SVG document.
func New(width, height float32) *Surface {
	s := &Surface{}
	s.SVG = svg.NewSVG(math32.Vec2(width, height))
	s.canvas = svg.NewGroup(s.SVG.Root)
	s.canvas.SetName("canvas")
	return s
}

// Canvas returns the root canvas group. It is the parent of all
// top-level blocks, and the anchor of last resort for decorations
// that have no block or field to attach to.
func (s *Surface) Canvas() *svg.Group { return s.canvas }

// Blocks returns the top-level blocks on the surface in order.
func (s *Surface) Blocks() []*block.Block { return s.blocks }

// NewBlock adds a new top-level block with the given name,
// parented under the canvas.
func (s *Surface) NewBlock(name string) *block.Block {
	b := block.New(s.canvas, name)
	s.blocks = append(s.blocks, b)
	return b
}

// BlockByName returns the top-level block with the given name,
// or nil if there is none.
func (s *Surface) BlockByName(name string) *block.Block {
	for _, b := range s.blocks {
		if b.Name() == name {
			return b
		}
	}
	return nil
}

// WriteXML writes the surface as SVG XML to the given writer.
func (s *Surface) WriteXML(w io.Writer, indent bool) error {
	return s.SVG.WriteXML(w, indent)
}

// SaveXML saves the surface as an SVG XML file.
func (s *Surface) SaveXML(filename string) error {
	return s.SVG.SaveXML(filename)
}
