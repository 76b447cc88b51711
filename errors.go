package ntr

import (
	"errors"
	"fmt"
)

// ErrEmptyKey is returned when a node is created with an empty key.
var ErrEmptyKey = errors.New("ntr: node key cannot be empty")

// ErrNoCurrentNode is returned by Builder operations that require a current
// node before any root has been added.
var ErrNoCurrentNode = errors.New("ntr: no current node: call AddRoot first")

// A DuplicateKeyError is returned when a child is added under a parent that
// already has a child with the same key.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("ntr: duplicate key %q", e.Key)
}

// An UnknownRootError is returned when navigating to a root key that does not
// exist in the forest.
type UnknownRootError struct {
	Key string
}

func (e *UnknownRootError) Error() string {
	return fmt.Sprintf("ntr: unknown root %q", e.Key)
}

// A ParseError reports the first malformed line encountered while parsing.
// Line is 1-based and Text is the offending line as it appeared in the input.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ntr: line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
