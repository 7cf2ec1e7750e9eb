// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package block

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/svg"
)

// Field is an editable slot on a block (a label, text input, dropdown,
// etc). It owns an [svg.Group] under its block's group and reports the
// size of its rendered border box. The field's top-left is at the
// origin of its group.
type Field struct {
	owner *Block
	group *svg.Group

	// border is the size of the field's rendered border box.
	border math32.Vector2

	// pos is the field position in block-local coordinates.
	pos math32.Vector2
}

// Owner returns the block this field belongs to.
func (f *Field) Owner() *Block { return f.owner }

// Group returns the field's SVG group, the anchor for anything
// rendered in the field's coordinate space.
func (f *Field) Group() *svg.Group { return f.group }

// Name returns the field's name, which is the name of its group.
func (f *Field) Name() string { return f.group.Name }

// BorderBox returns the size of the field's rendered border box.
// A field that has not been rendered yet reports a zero box.
func (f *Field) BorderBox() math32.Vector2 { return f.border }

// SetBorderBox sets the size of the field's rendered border box.
func (f *Field) SetBorderBox(sz math32.Vector2) *Field {
	f.border = sz
	return f
}

// Pos returns the field position in block-local coordinates.
func (f *Field) Pos() math32.Vector2 { return f.pos }

// SetPos positions the field within its block by setting the translate
// transform on the field's group.
func (f *Field) SetPos(pos math32.Vector2) *Field {
	f.pos = pos
	f.group.Paint.Transform = math32.Translate2D(pos.X, pos.Y)
	f.group.SetTransformProperty()
	return f
}
