// Package menu implements hierarchical menu navigation.
//
// All nodes live in one Tree arena and are referenced by NodeID. The
// navigation history is a stack of handles into the arena, so descending
// never copies child lists.
package menu

// NodeID references a node in a Tree.
type NodeID int32

// Root is the implicit top-level node of every Tree.
const Root NodeID = 0

// Action runs synchronously from the poll loop when a leaf is activated.
// It must return quickly.
type Action func()

type node struct {
	label    string
	action   Action
	children []NodeID
}

// Tree is an arena of menu nodes.
type Tree struct {
	nodes []node
}

// NewTree returns a tree holding only the empty root.
func NewTree() *Tree {
	return &Tree{nodes: []node{{}}}
}

// Item adds a leaf with an optional action.
func (t *Tree) Item(label string, action Action) NodeID {
	t.nodes = append(t.nodes, node{label: label, action: action})
	return NodeID(len(t.nodes) - 1)
}

// Menu adds an interior node whose children are the given nodes.
func (t *Tree) Menu(label string, children ...NodeID) NodeID {
	id := t.Item(label, nil)
	t.Add(id, children...)
	return id
}

// Add appends children to parent. Unknown ids are skipped.
func (t *Tree) Add(parent NodeID, children ...NodeID) {
	if !t.valid(parent) {
		return
	}
	for _, c := range children {
		if !t.valid(c) || c == Root {
			continue
		}
		t.nodes[parent].children = append(t.nodes[parent].children, c)
	}
}

// SetAction attaches an action to an existing node.
func (t *Tree) SetAction(id NodeID, action Action) {
	if t.valid(id) {
		t.nodes[id].action = action
	}
}

// Len returns the number of nodes including the root.
func (t *Tree) Len() int { return len(t.nodes) }

// Label returns the node label, or "" for an unknown id.
func (t *Tree) Label(id NodeID) string {
	if !t.valid(id) {
		return ""
	}
	return t.nodes[id].label
}

// Children returns the ordered children of id. The slice must not be modified.
func (t *Tree) Children(id NodeID) []NodeID {
	if !t.valid(id) {
		return nil
	}
	return t.nodes[id].children
}

// HasChildren reports whether id opens a submenu.
func (t *Tree) HasChildren(id NodeID) bool {
	return len(t.Children(id)) > 0
}

// HasAction reports whether id carries an action.
func (t *Tree) HasAction(id NodeID) bool {
	return t.valid(id) && t.nodes[id].action != nil
}

// Ambiguous lists nodes with both an action and children. Navigation always
// descends into such nodes, so their action never runs.
func (t *Tree) Ambiguous() []NodeID {
	var out []NodeID
	for i := range t.nodes {
		if t.nodes[i].action != nil && len(t.nodes[i].children) > 0 {
			out = append(out, NodeID(i))
		}
	}
	return out
}

func (t *Tree) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}
