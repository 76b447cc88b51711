package ntr

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"zombiezen.com/go/log"
)

// A Writer serializes a Forest back to NTR text. Roots are written in the
// forest's insertion order, separated by one blank line. A node's value is
// written as "key>value" only when non-empty; a node with an empty value is
// written as its bare key, which parses back to the same node.
type Writer struct {
	forest  *Forest
	comment string
	indent  int
}

// NewWriter returns a writer for the given forest.
func NewWriter(f *Forest, opts ...Option) (*Writer, error) {
	w := &Writer{forest: f, indent: 2}
	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// Write writes the forest as NTR text to out.
func (w *Writer) Write(out io.Writer) error {
	bw := bufio.NewWriter(out)
	if w.comment != "" {
		bw.WriteByte('@')
		bw.WriteString(w.comment)
		bw.WriteString("\n\n")
	}
	for i, root := range w.forest.Roots() {
		if i > 0 {
			bw.WriteByte('\n')
		}
		w.writeNode(bw, root, 0)
	}
	return bw.Flush()
}

// String returns the forest as NTR text.
func (w *Writer) String() (string, error) {
	var sb strings.Builder
	if err := w.Write(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteFile writes the forest to the file at path, creating or truncating it.
func (w *Writer) WriteFile(ctx context.Context, path string) (err error) {
	log.Infof(ctx, "ntr: writing file %s", path)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ntr: write file %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("ntr: write file %s: %w", path, cerr)
		}
	}()
	if err := w.Write(f); err != nil {
		return fmt.Errorf("ntr: write file %s: %w", path, err)
	}
	return nil
}

// writeNode writes one node line and recurses into its children one level
// deeper. Write errors stick to the bufio.Writer and surface from Flush.
func (w *Writer) writeNode(bw *bufio.Writer, n *Node, depth int) {
	for i := 0; i < depth*w.indent; i++ {
		bw.WriteByte(' ')
	}
	bw.WriteString(n.key)
	if n.value != "" {
		bw.WriteByte('>')
		bw.WriteString(n.value)
	}
	bw.WriteByte('\n')
	for _, child := range n.children {
		w.writeNode(bw, child, depth+1)
	}
}
