package ntr

import "fmt"

// An Option configures a Writer.
type Option func(*Writer) error

// Comment returns an Option that sets a header comment. A non-empty comment
// is written as an '@' line followed by one blank line before the first root.
func Comment(s string) Option {
	return func(w *Writer) error {
		w.comment = s
		return nil
	}
}

// Indent returns an Option that sets the number of spaces per depth level.
// The default is 2, the canonical NTR indentation.
//
// The count n must be a positive integer: NTR carries structure in
// indentation, so a zero indent would flatten every node into a root.
func Indent(n int) Option {
	return func(w *Writer) error {
		if n <= 0 {
			return fmt.Errorf("ntr: indent must be a positive number of spaces")
		}
		w.indent = n
		return nil
	}
}
