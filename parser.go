package ntr

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"zombiezen.com/go/log"
)

// maxLineBytes caps the length of a single input line. Values are opaque
// text, so the cap only needs to be generous, not unbounded.
const maxLineBytes = 1 << 20

// A Parser reads NTR text into a Forest. Roots accumulate across calls: a
// second Parse on the same parser adds to the forest produced by the first.
// Use the package-level Parse functions for the one-shot case.
//
// A parser must not be used from more than one goroutine at a time. The
// finished forest is safe for concurrent reads.
type Parser struct {
	forest *Forest
}

// NewParser returns a parser with an empty forest.
func NewParser() *Parser {
	return &Parser{forest: NewForest()}
}

// Forest returns the forest accumulated so far. The parser keeps writing to
// the same forest on later Parse calls.
func (p *Parser) Forest() *Forest { return p.forest }

// Clear discards all accumulated roots.
func (p *Parser) Clear() {
	p.forest = NewForest()
}

// cursor is the transient per-call parse state: the path from the current
// root down to the most recently placed node, plus the indentation of the
// previous structural line. It is discarded when Parse returns.
type cursor struct {
	forest *Forest
	stack  []*Node
	prev   int
	unit   int // indentation characters per depth level, learned from input
}

// Parse reads lines from r until EOF, placing each structural line into the
// forest. It stops at the first malformed line and returns a *ParseError
// carrying the 1-based line number and the original line text; roots placed
// by earlier calls are unaffected.
//
// A line whose indentation puts it at sibling depth while the cursor is
// already at a root has no parent to attach to and is silently dropped
// rather than reported.
//
// Single lines longer than maxLineBytes fail with a read error.
func (p *Parser) Parse(r io.Reader) error {
	c := &cursor{forest: p.forest}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)
	lineno := 0
	for sc.Scan() {
		lineno++
		raw := sc.Text()
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "@") {
			continue
		}
		key, value := splitLine(line)
		if err := c.place(key, value, indentOf(raw)); err != nil {
			return &ParseError{Line: lineno, Text: raw, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("ntr: read input: %w", err)
	}
	return nil
}

// ParseString parses NTR text from s.
func (p *Parser) ParseString(s string) error {
	return p.Parse(strings.NewReader(s))
}

// ParseFile parses the NTR file at path.
func (p *Parser) ParseFile(ctx context.Context, path string) error {
	log.Infof(ctx, "ntr: parsing file %s", path)
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("ntr: parse file %s: %w", path, err)
	}
	defer f.Close()
	if err := p.Parse(f); err != nil {
		return fmt.Errorf("ntr: parse file %s: %w", path, err)
	}
	return nil
}

// place attaches a new node for one structural line, using the line's
// indentation relative to the previous structural line to decide where it
// belongs.
func (c *cursor) place(key, value string, indent int) error {
	if c.unit == 0 && indent > 0 {
		c.unit = indent
	}
	node, err := NewNode(key, value)
	if err != nil {
		return err
	}
	switch {
	case indent == 0:
		// New root: the previous tree is finished and never revisited.
		c.forest.Add(node)
		c.stack = append(c.stack[:0], node)
	case indent > c.prev:
		if len(c.stack) > 0 {
			top := c.stack[len(c.stack)-1]
			if err := top.AddChild(node); err != nil {
				return err
			}
			c.stack = append(c.stack, node)
		}
	case indent == c.prev:
		if len(c.stack) > 1 {
			parent := c.stack[len(c.stack)-2]
			if err := parent.AddChild(node); err != nil {
				return err
			}
			c.stack[len(c.stack)-1] = node
		}
	default:
		up := (c.prev-indent)/c.unit + 1
		for i := 0; i < up; i++ {
			if len(c.stack) <= 1 {
				break
			}
			c.stack = c.stack[:len(c.stack)-1]
		}
		if len(c.stack) > 0 {
			parent := c.stack[len(c.stack)-1]
			if err := parent.AddChild(node); err != nil {
				return err
			}
			c.stack = append(c.stack, node)
		}
	}
	c.prev = indent
	return nil
}

// splitLine splits a trimmed structural line into key and value at the first
// separator. A line without a separator is all key.
func splitLine(line string) (key, value string) {
	key, value, found := strings.Cut(line, ">")
	if !found {
		return line, ""
	}
	return strings.TrimSpace(key), strings.TrimSpace(value)
}

// indentOf counts leading whitespace characters of the original line. Every
// whitespace character counts as one unit, tabs included.
func indentOf(line string) int {
	n := 0
	for _, r := range line {
		if !unicode.IsSpace(r) {
			break
		}
		n++
	}
	return n
}
