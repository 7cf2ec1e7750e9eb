// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cursor renders the caret of a block-based visual programming
// editor: a highlighted marker drawn around whichever element of the
// surface currently has focus. It is purely presentational; deciding
// what has focus is the host editor's job.
package cursor

import (
	"fmt"

	"cogentcore.org/blocks/block"
	"cogentcore.org/blocks/theme"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/svg"
	"cogentcore.org/core/tree"
)

// Fixed caret geometry, in user units.
const (
	// LineHeight is the stroke width of the line caret.
	LineHeight float32 = 5

	// LineWidth is the length of the line caret for bare workspace
	// coordinate targets.
	LineWidth float32 = 100

	// NotchLength is the total horizontal extent of the connection
	// notch caret.
	NotchLength float32 = 24

	// VerticalPadding is the depth of the notch caret's tab.
	VerticalPadding float32 = 5

	// CornerRadius is the corner radius of the rectangle caret.
	CornerRadius float32 = 5
)

// View draws the caret. It owns three pre-built SVG shapes, all
// children of a single root group: a line for connection rows and bare
// coordinates, a rounded rectangle for blocks and fields, and a notch
// path for input/output connections. Updating to a new focus target
// re-parents the root group into the target's coordinate space,
// repositions the matching shape, and hides the other two. At most one
// shape is visible at any time.
//
// A View is not safe for concurrent use; like the rest of the scene
// graph it belongs to the UI event loop.
type View struct {
	theme *theme.Theme

	// canvas is the workspace canvas group, the anchor of last resort.
	canvas *svg.Group

	// anchor is the group the root is currently parented under.
	anchor *svg.Group

	root  *svg.Group
	line  *svg.Line
	rect  *svg.Rect
	notch *svg.Path

	flash Flasher
}

// New returns a new caret view for the surface whose canvas group is
// given. A nil theme selects the defaults. Call [View.Build] before
// anything else.
func New(canvas *svg.Group, th *theme.Theme) *View {
	if th == nil {
		th = &theme.Theme{}
		th.Defaults()
	}
	cv := &View{theme: th, canvas: canvas}
	cv.flash.Period = th.FlashPeriod
	return cv
}

// Build creates the root group and the three caret shapes under the
// canvas, all hidden. It is idempotent: calling it again returns the
// existing root without creating a second subtree.
func (cv *View) Build() (*svg.Group, error) {
	if cv.root != nil {
		return cv.root, nil
	}
	if cv.canvas == nil {
		return nil, fmt.Errorf("cursor: cannot build with nil canvas")
	}
	cv.root = svg.NewGroup(cv.canvas)
	cv.root.SetName("caret")
	cv.anchor = cv.canvas

	cv.line = svg.NewLine(cv.root)
	cv.line.SetName("caret-line")
	cv.line.SetProperty("stroke-width", LineHeight)

	cv.rect = svg.NewRect(cv.root)
	cv.rect.SetName("caret-rect")
	cv.rect.Radius = math32.Vec2(CornerRadius, CornerRadius)
	cv.rect.SetProperty("stroke-width", cv.theme.StrokeWidth)

	cv.notch = svg.NewPath(cv.root)
	cv.notch.SetName("caret-notch")
	if err := cv.notch.SetData(notchPath()); err != nil {
		return nil, fmt.Errorf("cursor: bad notch path: %w", err)
	}
	cv.notch.SetProperty("stroke-width", cv.theme.StrokeWidth)

	for _, sh := range cv.shapes() {
		sh.AsNodeBase().SetColorProperties("stroke", cv.theme.StrokeColor)
		sh.AsNodeBase().SetColorProperties("fill", cv.theme.FlashColor)
		hide(sh)
	}
	return cv.root, nil
}

// Root returns the root group holding the caret shapes,
// or nil if [View.Build] has not been called.
func (cv *View) Root() *svg.Group { return cv.root }

// Anchor returns the group the caret is currently parented under.
func (cv *View) Anchor() *svg.Group { return cv.anchor }

// Shown returns the currently visible caret shape, or nil if hidden.
func (cv *View) Shown() svg.Node {
	for _, sh := range cv.shapes() {
		if sh.AsNodeBase().Paint.Display {
			return sh
		}
	}
	return nil
}

// Update moves the caret to the given focus target. It hides all
// shapes first, then reveals and positions the one matching the target
// kind, re-parenting the caret into the target's coordinate space.
// A nil or unrecognized target, or a target whose geometry source has
// not been rendered yet, leaves the caret hidden and returns an error.
func (cv *View) Update(t Target) error {
	if cv.root == nil {
		return fmt.Errorf("cursor: Update called before Build")
	}
	cv.Hide()
	switch t.Kind {
	case KindBlock:
		return cv.updateBlock(t.Block)
	case KindField:
		return cv.updateField(t.Field)
	case KindConnection:
		return cv.updateConnection(t.Connection)
	case KindCoordinate:
		return cv.updateCoordinate(t.Coord)
	}
	return fmt.Errorf("cursor: cannot update to %v target", t.Kind)
}

// updateBlock outlines the whole block: the rectangle caret, sized to
// the block, at the origin of the block's own group.
func (cv *View) updateBlock(b *block.Block) error {
	if b == nil {
		return fmt.Errorf("cursor: block target with nil block")
	}
	sz := b.Size()
	if sz.X <= 0 || sz.Y <= 0 {
		return fmt.Errorf("cursor: block %q has no rendered size", b.Name())
	}
	cv.rect.Pos = math32.Vector2{}
	cv.rect.Size = sz
	cv.reparent(b.Group())
	cv.show(cv.rect)
	return nil
}

// updateField outlines the field's rendered border box, at the origin
// of the field's own group.
func (cv *View) updateField(f *block.Field) error {
	if f == nil {
		return fmt.Errorf("cursor: field target with nil field")
	}
	bb := f.BorderBox()
	if bb.X <= 0 || bb.Y <= 0 {
		return fmt.Errorf("cursor: field %q has no rendered border box", f.Name())
	}
	cv.rect.Pos = math32.Vector2{}
	cv.rect.Size = bb
	cv.reparent(f.Group())
	cv.show(cv.rect)
	return nil
}

// updateConnection shows the notch caret for input/output connections
// and the line caret for next/previous connections, in the owning
// block's coordinate space.
func (cv *View) updateConnection(c *block.Connection) error {
	if c == nil {
		return fmt.Errorf("cursor: connection target with nil connection")
	}
	b := c.Owner()
	if b == nil {
		return fmt.Errorf("cursor: connection target with no owning block")
	}
	switch c.Kind() {
	case block.Input, block.Output:
		off := c.Offset()
		xf := math32.Translate2D(off.X, off.Y)
		// mirroring follows the block's own layout direction only,
		// never the workspace's
		if b.RTL() {
			xf = xf.Mul(math32.Scale2D(-1, 1))
		}
		cv.notch.Paint.Transform = xf
		cv.notch.SetTransformProperty()
		cv.reparent(b.Group())
		cv.show(cv.notch)
	case block.Previous, block.Next:
		w := b.Size().X
		if w <= 0 {
			return fmt.Errorf("cursor: block %q has no rendered width", b.Name())
		}
		y := float32(0) // previous connections sit on the top edge
		if c.Kind() == block.Next {
			y = c.Offset().Y
		}
		cv.line.Start = math32.Vec2(0, y)
		cv.line.End = math32.Vec2(w, y)
		cv.reparent(b.Group())
		cv.show(cv.line)
	default:
		return fmt.Errorf("cursor: unknown connection kind %v", c.Kind())
	}
	return nil
}

// updateCoordinate shows a fixed-width line at the given point in
// workspace coordinates, parented to the canvas.
func (cv *View) updateCoordinate(pt math32.Vector2) error {
	cv.line.Start = pt
	cv.line.End = math32.Vec2(pt.X+LineWidth, pt.Y)
	cv.reparent(nil)
	cv.show(cv.line)
	return nil
}

// Hide hides all caret shapes. It is idempotent and safe to call
// before Build.
func (cv *View) Hide() {
	if cv.root == nil {
		return
	}
	for _, sh := range cv.shapes() {
		hide(sh)
	}
}

// SetTheme applies a new theme to the caret shapes, re-coloring them
// in place. Use with [theme.Watch] for live reload.
func (cv *View) SetTheme(th *theme.Theme) {
	cv.theme = th
	cv.flash.Period = th.FlashPeriod
	if cv.root == nil {
		return
	}
	for _, sh := range cv.shapes() {
		sh.AsNodeBase().SetColorProperties("stroke", th.StrokeColor)
	}
	cv.rect.SetProperty("stroke-width", th.StrokeWidth)
	cv.notch.SetProperty("stroke-width", th.StrokeWidth)
	cv.applyFill()
}

// reparent moves the caret subtree under the given anchor group.
// A nil anchor falls back to the workspace canvas. Moving to the
// anchor the caret is already under is a no-op, so consecutive
// updates within one block do not churn the scene tree.
func (cv *View) reparent(anchor *svg.Group) {
	if anchor == nil {
		anchor = cv.canvas
	}
	if anchor == cv.anchor {
		return
	}
	tree.MoveToParent(cv.root, anchor)
	cv.anchor = anchor
}

func (cv *View) shapes() []svg.Node {
	return []svg.Node{cv.line, cv.rect, cv.notch}
}

// show reveals the given shape, restarting the fill flash so the caret
// reappears solid immediately after every move.
func (cv *View) show(sh svg.Node) {
	cv.flash.Restart()
	cv.applyFill()
	nb := sh.AsNodeBase()
	nb.Paint.Display = true
	nb.SetProperty("display", "inline")
}

func hide(sh svg.Node) {
	nb := sh.AsNodeBase()
	nb.Paint.Display = false
	nb.SetProperty("display", "none")
}

// notchPath builds the path data for the connection caret: a straight
// lead-in, a puzzle-piece tab dropping VerticalPadding units, and a
// straight lead-out, NotchLength units wide in total, starting at the
// connection point.
func notchPath() string {
	lead := (NotchLength - 16) / 2
	return fmt.Sprintf("m 0,0 h %g l 4,%g h 8 l 4,-%g h %g",
		lead, VerticalPadding, VerticalPadding, lead)
}
