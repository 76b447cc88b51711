package ntr

import "fmt"

// A Node is one entry in an NTR hierarchy. It has a key, an opaque text
// value, and an ordered, key-unique list of children. Key and value are fixed
// at construction; children can only be appended.
type Node struct {
	key      string
	value    string
	children []*Node
	index    map[string]*Node
}

// NewNode creates a node with the given key and value. The key must be
// non-empty; the value may be empty. An empty value and an absent value are
// the same state in NTR.
func NewNode(key, value string) (*Node, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	return &Node{key: key, value: value}, nil
}

// Key returns the node's key.
func (n *Node) Key() string { return n.key }

// Value returns the node's value, which is the empty string for a node
// written without a separator.
func (n *Node) Value() string { return n.value }

// AddChild appends child to the node's children. It returns a
// *DuplicateKeyError if a child with the same key already exists; the
// existing child is left in place.
func (n *Node) AddChild(child *Node) error {
	if _, ok := n.index[child.key]; ok {
		return &DuplicateKeyError{Key: child.key}
	}
	if n.index == nil {
		n.index = make(map[string]*Node)
	}
	n.index[child.key] = child
	n.children = append(n.children, child)
	return nil
}

// Child returns the child with the given key, if any.
func (n *Node) Child(key string) (*Node, bool) {
	c, ok := n.index[key]
	return c, ok
}

// Children returns the node's children in insertion order. The returned
// slice is a copy; the nodes are not.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int { return len(n.children) }

// HasChildren reports whether the node has at least one child.
func (n *Node) HasChildren() bool { return len(n.children) > 0 }

// Equal reports whether n and other are structurally equal: same key, same
// value, and pairwise equal children in the same order.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.key != other.key || n.value != other.value || len(n.children) != len(other.children) {
		return false
	}
	for i, c := range n.children {
		if !c.Equal(other.children[i]) {
			return false
		}
	}
	return true
}

// String returns a short description of the node for debugging. It is not
// the node's NTR form; use a Writer for that.
func (n *Node) String() string {
	if n.value == "" {
		return fmt.Sprintf("%s (children: %d)", n.key, len(n.children))
	}
	return fmt.Sprintf("%s > %s (children: %d)", n.key, n.value, len(n.children))
}
