package ntr

import (
	"context"
	"io"
)

// Parse reads one NTR document from r and returns its forest.
func Parse(r io.Reader) (*Forest, error) {
	p := NewParser()
	if err := p.Parse(r); err != nil {
		return nil, err
	}
	return p.Forest(), nil
}

// ParseString parses one NTR document from s.
func ParseString(s string) (*Forest, error) {
	p := NewParser()
	if err := p.ParseString(s); err != nil {
		return nil, err
	}
	return p.Forest(), nil
}

// ParseFile parses the NTR file at path.
func ParseFile(ctx context.Context, path string) (*Forest, error) {
	p := NewParser()
	if err := p.ParseFile(ctx, path); err != nil {
		return nil, err
	}
	return p.Forest(), nil
}
