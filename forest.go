package ntr

// A Forest is the root set of an NTR document: a key-indexed collection of
// root nodes that preserves insertion order. Root order is the order roots
// first appeared in the input (or were first added), so writing a forest is
// deterministic.
type Forest struct {
	roots []*Node
	index map[string]*Node
}

// NewForest returns an empty forest.
func NewForest() *Forest {
	return &Forest{index: make(map[string]*Node)}
}

// Add inserts root into the forest. If a root with the same key already
// exists it is replaced in place, keeping its position; this mirrors the
// parser's and builder's behavior for repeated root keys.
func (f *Forest) Add(root *Node) {
	if old, ok := f.index[root.key]; ok {
		for i, r := range f.roots {
			if r == old {
				f.roots[i] = root
				break
			}
		}
	} else {
		f.roots = append(f.roots, root)
	}
	f.index[root.key] = root
}

// Root returns the root node with the given key, if any.
func (f *Forest) Root(key string) (*Node, bool) {
	r, ok := f.index[key]
	return r, ok
}

// Roots returns the root nodes in insertion order. The returned slice is a
// copy; the nodes are not.
func (f *Forest) Roots() []*Node {
	out := make([]*Node, len(f.roots))
	copy(out, f.roots)
	return out
}

// Len returns the number of roots.
func (f *Forest) Len() int { return len(f.roots) }

// Snapshot returns a copy of the forest's root mapping. The copy has
// independent root bookkeeping but shares the nodes themselves.
func (f *Forest) Snapshot() *Forest {
	s := &Forest{
		roots: make([]*Node, len(f.roots)),
		index: make(map[string]*Node, len(f.index)),
	}
	copy(s.roots, f.roots)
	for k, v := range f.index {
		s.index[k] = v
	}
	return s
}

// Equal reports whether f and other contain structurally equal roots in the
// same order.
func (f *Forest) Equal(other *Forest) bool {
	if f == nil || other == nil {
		return f == other
	}
	if len(f.roots) != len(other.roots) {
		return false
	}
	for i, r := range f.roots {
		if !r.Equal(other.roots[i]) {
			return false
		}
	}
	return true
}
