package menu

import (
	"keynav/navkit/focus"
	"keynav/navkit/gesture"
	"keynav/navkit/hscroll"
	"keynav/navkit/viewport"
)

// Config controls menu layout and behavior.
type Config struct {
	X, Y          int
	Width, Height int
	LineHeight    int
	Prefix        string

	// Focused labels wider than the row scroll by ScrollStep pixels every
	// ScrollInterval ms and dwell LabelPause ms at each end.
	ScrollInterval uint32
	ScrollStep     int
	LabelPause     uint32

	// ResetOnBack puts the cursor at the top of the parent list on Back
	// instead of restoring where it was before descending.
	ResetOnBack bool
}

// DefaultConfig matches a 128x64 panel with 10px rows.
func DefaultConfig() Config {
	return Config{
		Width:          128,
		Height:         64,
		LineHeight:     10,
		Prefix:         "> ",
		ScrollInterval: 80,
		ScrollStep:     1,
		LabelPause:     1500,
	}
}

type frame struct {
	parent  NodeID
	focused int
	first   int
}

// Navigator walks a Tree one list at a time.
type Navigator struct {
	tree *Tree
	keys focus.Keymap
	cfg  Config

	cur     NodeID
	focused int
	first   int
	stack   []frame

	label    hscroll.PingPong
	labelFor int
}

// New returns a navigator positioned at the root of tree.
func New(tree *Tree, keys focus.Keymap, cfg Config) *Navigator {
	if tree == nil {
		tree = NewTree()
	}
	if cfg.LineHeight <= 0 {
		cfg.LineHeight = DefaultConfig().LineHeight
	}
	n := &Navigator{
		tree:     tree,
		keys:     keys,
		cfg:      cfg,
		labelFor: -1,
		label: hscroll.PingPong{
			Step:     cfg.ScrollStep,
			Interval: cfg.ScrollInterval,
			Pause:    cfg.LabelPause,
		},
	}
	return n
}

// SetMenu makes parent's children the active list and clears the history.
func (n *Navigator) SetMenu(parent NodeID) {
	n.cur = parent
	n.stack = n.stack[:0]
	n.jump(0, 0)
}

// Current returns the node whose children are displayed.
func (n *Navigator) Current() NodeID { return n.cur }

// Items returns the active list.
func (n *Navigator) Items() []NodeID { return n.tree.Children(n.cur) }

// Focused returns the index of the selected entry in the active list.
func (n *Navigator) Focused() int { return n.focused }

// FocusedNode returns the selected node, or false for an empty list.
func (n *Navigator) FocusedNode() (NodeID, bool) {
	items := n.Items()
	if n.focused < 0 || n.focused >= len(items) {
		return 0, false
	}
	return items[n.focused], true
}

// First returns the index of the first visible row.
func (n *Navigator) First() int { return n.first }

// Rows returns how many rows fit in the view.
func (n *Navigator) Rows() int { return viewport.Rows(n.cfg.Height, n.cfg.LineHeight) }

// Depth returns the number of lists on the history stack.
func (n *Navigator) Depth() int { return len(n.stack) }

// CanGoBack reports whether Back has a list to return to.
func (n *Navigator) CanGoBack() bool { return len(n.stack) > 0 }

// MoveUp selects the previous entry. It is a no-op at the top.
func (n *Navigator) MoveUp() bool {
	if n.focused <= 0 {
		return false
	}
	n.focused--
	n.first = viewport.Follow(n.first, n.focused, n.Rows(), len(n.Items()))
	n.labelFor = -1
	return true
}

// MoveDown selects the next entry. It is a no-op at the bottom.
func (n *Navigator) MoveDown() bool {
	if n.focused >= len(n.Items())-1 {
		return false
	}
	n.focused++
	n.first = viewport.Follow(n.first, n.focused, n.Rows(), len(n.Items()))
	n.labelFor = -1
	return true
}

// Descend opens the submenu of the selected entry.
func (n *Navigator) Descend() bool {
	id, ok := n.FocusedNode()
	if !ok || !n.tree.HasChildren(id) {
		return false
	}
	n.stack = append(n.stack, frame{parent: n.cur, focused: n.focused, first: n.first})
	n.cur = id
	n.jump(0, 0)
	return true
}

// Back returns to the previous list.
func (n *Navigator) Back() bool {
	if len(n.stack) == 0 {
		return false
	}
	top := n.stack[len(n.stack)-1]
	n.stack = n.stack[:len(n.stack)-1]
	n.cur = top.parent
	if n.cfg.ResetOnBack {
		n.jump(0, 0)
	} else {
		n.jump(top.focused, top.first)
	}
	return true
}

// Activate runs the action of the selected leaf. Entries with children are
// never activated.
func (n *Navigator) Activate() bool {
	id, ok := n.FocusedNode()
	if !ok || n.tree.HasChildren(id) {
		return false
	}
	a := n.tree.nodes[id].action
	if a == nil {
		return false
	}
	a()
	return true
}

// Select descends into a submenu, or activates a leaf.
func (n *Navigator) Select() bool {
	if n.Descend() {
		return true
	}
	return n.Activate()
}

// Dispatch handles one gesture: up/down move, right descends, left goes
// back, select descends or activates.
func (n *Navigator) Dispatch(ev gesture.Event) {
	in := n.keys.Resolve(ev)
	if in.Kind != gesture.ShortClick {
		return
	}
	switch in.Key {
	case focus.KeyUp:
		n.MoveUp()
	case focus.KeyDown:
		n.MoveDown()
	case focus.KeyRight:
		n.Descend()
	case focus.KeyLeft:
		n.Back()
	case focus.KeySelect:
		n.Select()
	}
}

func (n *Navigator) jump(focused, first int) {
	count := len(n.Items())
	if count == 0 {
		n.focused, n.first = 0, 0
	} else {
		if focused >= count {
			focused = count - 1
		}
		if focused < 0 {
			focused = 0
		}
		n.focused = focused
		n.first = viewport.Follow(first, focused, n.Rows(), count)
	}
	n.labelFor = -1
}
