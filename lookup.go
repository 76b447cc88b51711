package ntr

import "strings"

// Lookup resolves a dot-separated key path against the forest: the first
// segment names a root, each further segment a child of the previous node.
// It reports false for an empty path or as soon as any segment fails to
// resolve.
func (f *Forest) Lookup(path string) (*Node, bool) {
	if path == "" {
		return nil, false
	}
	parts := strings.Split(path, ".")
	node, ok := f.Root(parts[0])
	if !ok {
		return nil, false
	}
	for _, part := range parts[1:] {
		node, ok = node.Child(part)
		if !ok {
			return nil, false
		}
	}
	return node, true
}

// Value resolves path like Lookup and returns the node's value. A found node
// with an empty value reports true with ""; an unresolved path reports
// false.
func (f *Forest) Value(path string) (string, bool) {
	node, ok := f.Lookup(path)
	if !ok {
		return "", false
	}
	return node.value, true
}
