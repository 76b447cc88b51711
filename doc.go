/*
Package ntr parses and writes NTR, a small indentation-based hierarchical
key-value text format.

An NTR document is a sequence of UTF-8 text lines. Structure is carried by
indentation alone: a line indented deeper than the previous line is a child of
it, a line at the same depth is a sibling, and a line at column zero starts a
new root. Keys and values are separated by '>', split at the first occurrence,
with both sides trimmed. A line without a separator is a key with an empty
value. Lines that are blank, or whose trimmed form starts with '@', are
comments and never affect structure.

	@ server configuration

	server
	  host>localhost
	  port>8080
	  tls
	    cert>/etc/certs/server.pem

Parsing produces a Forest, an insertion-ordered set of root Nodes:

	forest, err := ntr.ParseString(src)
	if err != nil {
		// handle error
	}
	host, ok := forest.Value("server.host")

The same tree can be constructed programmatically with a Builder, which keeps
a cursor on the most recently added node:

	b := ntr.NewBuilder()
	b.AddRoot("server", "").
		AddChild("host", "localhost").
		Sibling("port", "8080")
	forest, err := b.Build()

A Writer regenerates the canonical text form, two spaces of indentation per
depth level, with an optional '@' header comment:

	w, err := ntr.NewWriter(forest, ntr.Comment("server configuration"))
	if err != nil {
		// handle error
	}
	out, err := w.String()

Writing a Forest and parsing the result yields a structurally equal Forest.
Values are opaque text: the package performs no type coercion and no schema
validation.
*/
package ntr
