// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package block

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// ConnectionKind is the kind of a block connection point.
type ConnectionKind uint8

const (
	// Input is a value input socket on the block.
	Input ConnectionKind = iota

	// Output is the block's value output plug.
	Output

	// Next connects to the following block in a statement stack.
	Next

	// Previous connects to the preceding block in a statement stack.
	Previous
)

// String returns the lowercase name of the connection kind.
func (k ConnectionKind) String() string {
	switch k {
	case Input:
		return "input"
	case Output:
		return "output"
	case Next:
		return "next"
	case Previous:
		return "previous"
	}
	return "invalid"
}

// KindFromString returns the connection kind named by the given string,
// as produced by [ConnectionKind.String].
func KindFromString(s string) (ConnectionKind, error) {
	switch s {
	case "input":
		return Input, nil
	case "output":
		return Output, nil
	case "next":
		return Next, nil
	case "previous":
		return Previous, nil
	}
	return 0, fmt.Errorf("block: unknown connection kind %q", s)
}

// Connection is one connection point on a block. Its offset is in the
// owning block's local coordinates.
type Connection struct {
	owner  *Block
	kind   ConnectionKind
	offset math32.Vector2
}

// Owner returns the block this connection belongs to.
func (c *Connection) Owner() *Block { return c.owner }

// Kind returns the kind of this connection.
func (c *Connection) Kind() ConnectionKind { return c.kind }

// Offset returns the connection position in block-local coordinates.
func (c *Connection) Offset() math32.Vector2 { return c.offset }
