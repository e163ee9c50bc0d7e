package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/strata"
	"github.com/npillmayer/strata/grammar"
)

// A Cursor is a movable mark within a parse tree, intended for navigating
// over nodes. Clients move it between adjacent nodes or start a listener
// walk from wherever it currently points.
type Cursor struct {
	tree    *Tree
	current *Node
}

// SetCursor sets up a cursor at a given node of the tree. If n is nil,
// the cursor will be set up at the root node.
func (t *Tree) SetCursor(n *Node) *Cursor {
	if n == nil {
		if n = t.Root(); n == nil {
			return nil
		}
	}
	return &Cursor{tree: t, current: n}
}

// Node returns the node the cursor currently points at.
func (c *Cursor) Node() *Node {
	return c.current
}

// Up moves the cursor up to the parent node of the current node, if any.
func (c *Cursor) Up() (*Node, bool) {
	if c.current.parent == nil {
		return c.current, false
	}
	c.current = c.current.parent
	tracer().Debugf("UP cursor @ %v", c.current)
	return c.current, true
}

// Down moves the cursor down to the first child of the current node, if
// any. dir lets clients start at either the leftmost child (default) or
// the rightmost child.
func (c *Cursor) Down(dir Direction) (*Node, bool) {
	if len(c.current.children) == 0 {
		return c.current, false
	}
	if dir == RtoL {
		c.current = c.current.children[len(c.current.children)-1]
	} else {
		c.current = c.current.children[0]
	}
	tracer().Debugf("DOWN cursor @ %v", c.current)
	return c.current, true
}

// Sibling moves the cursor to the next sibling of the current node in
// walking direction, if any.
func (c *Cursor) Sibling(dir Direction) (*Node, bool) {
	parent := c.current.parent
	if parent == nil {
		return c.current, false
	}
	i := childIndex(parent, c.current) + int(dir)
	if i < 0 || i >= len(parent.children) {
		return c.current, false
	}
	c.current = parent.children[i]
	tracer().Debugf("SIBLING cursor @ %v", c.current)
	return c.current, true
}

func childIndex(parent, child *Node) int {
	for i, ch := range parent.children {
		if ch == child {
			return i
		}
	}
	return -1
}

// TopDown walks the subtree under the current node top-down, applying
// Listener methods for all nodes encountered. It returns a user-defined
// value, calculated by the listener. The cursor does not move.
func (c *Cursor) TopDown(listener Listener, dir Direction, breakmode Breakmode) interface{} {
	tracer().Debugf("TopDown starting at node %v", c.current)
	return traverseTopDown(c.current, listener, dir, breakmode, 0)
}

func traverseTopDown(n *Node, listener Listener, dir Direction, breakmode Breakmode, level int) interface{} {
	ctxt := RuleCtxt{Span: n.Span, Level: level, Rule: n.Rule}
	if n.IsLeaf() {
		return listener.Terminal(n, ctxt)
	}
	tracer().Debugf(">>> %v", n)
	values := make([]interface{}, len(n.children))
	if listener.EnterRule(n, ctxt) || breakmode == Continue {
		i := 0
		if dir == RtoL {
			i = len(n.children) - 1
		}
		for ; i >= 0 && i < len(n.children); i += int(dir) {
			values[i] = traverseTopDown(n.children[i], listener, dir, breakmode, level+1)
		}
	}
	tracer().Debugf("<<< %v", n)
	return listener.ExitRule(n, values, ctxt)
}

// Direction lets clients decide whether children nodes should be walked
// left-to-right (default) or right-to-left.
type Direction int

// Children nodes may be walked left-to-right (default) or right-to-left.
const (
	LtoR Direction = 1
	RtoL Direction = -1
)

// Breakmode is a client hint whether to stop walking on break-signals or
// not.
type Breakmode int

// Setting Continue will always walk a complete (sub-)tree. Break will
// skip the children of a node as soon as EnterRule signals a break.
const (
	Continue Breakmode = iota
	Break
)

// --- Listener --------------------------------------------------------------

// Listener is a type for walking a parse tree.
//
// EnterRule returns a boolean value indicating if the walk should descend
// to the children of this node. ExitRule and Terminal may return
// user-defined values, which the walk propagates upwards: ExitRule
// receives the values of the node's children, indexed left-to-right
// regardless of the walking direction. ExitRule is called even when the
// children have been skipped; the values slice then carries nils.
type Listener interface {
	EnterRule(*Node, RuleCtxt) bool
	ExitRule(*Node, []interface{}, RuleCtxt) interface{}
	Terminal(*Node, RuleCtxt) interface{}
}

// RuleCtxt is a context structure for Listeners.
type RuleCtxt struct {
	Span  strata.Span   // span of document offsets covered by this node
	Level int           // nesting level, starting at 0 at the walk's start node
	Rule  *grammar.Rule // derivation applied at this node; nil for leaves
}

// ---------------------------------------------------------------------------
