package ntr

// A Builder constructs a Forest programmatically, producing the same shape
// the parser would. It keeps a cursor on the path from the active root down
// to the most recently added node; AddChild descends, Parent ascends, and
// Sibling moves across.
//
// Builder methods chain. The first failure (duplicate child key, missing
// current node, unknown root) is recorded and every later call is a no-op;
// the recorded error surfaces from Err, Build, and NewWriter.
type Builder struct {
	forest *Forest
	stack  []*Node
	err    error
}

// NewBuilder returns a builder with an empty forest.
func NewBuilder() *Builder {
	return &Builder{forest: NewForest()}
}

// AddRoot adds a new root node and moves the cursor to it. Adding a root
// with an existing key replaces that root in place, keeping its position.
func (b *Builder) AddRoot(key, value string) *Builder {
	if b.err != nil {
		return b
	}
	node, err := NewNode(key, value)
	if err != nil {
		b.err = err
		return b
	}
	b.forest.Add(node)
	b.stack = append(b.stack[:0], node)
	return b
}

// AddChild adds a child under the current node and moves the cursor to it.
// It records ErrNoCurrentNode if no root has been added yet, and a
// *DuplicateKeyError if the current node already has a child with that key.
func (b *Builder) AddChild(key, value string) *Builder {
	if b.err != nil {
		return b
	}
	if len(b.stack) == 0 {
		b.err = ErrNoCurrentNode
		return b
	}
	node, err := NewNode(key, value)
	if err != nil {
		b.err = err
		return b
	}
	top := b.stack[len(b.stack)-1]
	if err := top.AddChild(node); err != nil {
		b.err = err
		return b
	}
	b.stack = append(b.stack, node)
	return b
}

// Parent moves the cursor up one level. At a root it stays put.
func (b *Builder) Parent() *Builder {
	if b.err != nil {
		return b
	}
	if len(b.stack) > 1 {
		b.stack = b.stack[:len(b.stack)-1]
	}
	return b
}

// Sibling adds a node next to the current one and moves the cursor to it.
// At root depth this is the same as AddRoot.
func (b *Builder) Sibling(key, value string) *Builder {
	if b.err != nil {
		return b
	}
	if len(b.stack) <= 1 {
		return b.AddRoot(key, value)
	}
	node, err := NewNode(key, value)
	if err != nil {
		b.err = err
		return b
	}
	parent := b.stack[len(b.stack)-2]
	if err := parent.AddChild(node); err != nil {
		b.err = err
		return b
	}
	b.stack[len(b.stack)-1] = node
	return b
}

// NavigateToRoot resets the cursor to the named existing root. It records an
// *UnknownRootError if no root has that key.
func (b *Builder) NavigateToRoot(key string) *Builder {
	if b.err != nil {
		return b
	}
	root, ok := b.forest.Root(key)
	if !ok {
		b.err = &UnknownRootError{Key: key}
		return b
	}
	b.stack = append(b.stack[:0], root)
	return b
}

// Err returns the first error recorded by a builder operation, if any.
func (b *Builder) Err() error { return b.err }

// Build returns a snapshot of the built forest, or the first recorded error.
// The builder remains usable; later additions do not affect the snapshot's
// root set.
func (b *Builder) Build() (*Forest, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.forest.Snapshot(), nil
}

// NewWriter returns a Writer bound to a snapshot of the built forest.
func (b *Builder) NewWriter(opts ...Option) (*Writer, error) {
	f, err := b.Build()
	if err != nil {
		return nil, err
	}
	return NewWriter(f, opts...)
}
