// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cursor

import (
	"cogentcore.org/blocks/block"
	"cogentcore.org/core/math32"
)

// Kind is the kind of element a [Target] points at.
type Kind uint8

const (
	// KindNone is an empty target; updating to it is an error.
	KindNone Kind = iota

	// KindCoordinate is a bare workspace coordinate.
	KindCoordinate

	// KindBlock is a whole block.
	KindBlock

	// KindField is a field on a block.
	KindField

	// KindConnection is a connection point on a block.
	KindConnection
)

// String returns the lowercase name of the target kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindCoordinate:
		return "coordinate"
	case KindBlock:
		return "block"
	case KindField:
		return "field"
	case KindConnection:
		return "connection"
	}
	return "invalid"
}

// Target is the editor element the caret currently represents.
// Exactly one of the payload fields is meaningful, selected by Kind;
// use the constructor functions rather than filling it in directly.
type Target struct {
	Kind Kind

	Block      *block.Block
	Field      *block.Field
	Connection *block.Connection

	// Coord is the workspace coordinate for [KindCoordinate] targets.
	Coord math32.Vector2
}

// CoordinateTarget returns a target for a bare workspace coordinate.
func CoordinateTarget(pt math32.Vector2) Target {
	return Target{Kind: KindCoordinate, Coord: pt}
}

// BlockTarget returns a target for the given block.
func BlockTarget(b *block.Block) Target {
	return Target{Kind: KindBlock, Block: b}
}

// FieldTarget returns a target for the given field.
func FieldTarget(f *block.Field) Target {
	return Target{Kind: KindField, Field: f}
}

// ConnectionTarget returns a target for the given connection.
func ConnectionTarget(c *block.Connection) Target {
	return Target{Kind: KindConnection, Connection: c}
}
