package ntr_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fedox/go-ntr"
	"github.com/stretchr/testify/require"
)

func FuzzRoundTrip(f *testing.F) {
	// Seed with the golden inputs plus a few structural edge cases.
	seedFiles, err := filepath.Glob("testdata/*.ntr")
	if err != nil {
		f.Fatalf("failed to find seed files: %v", err)
	}
	for _, file := range seedFiles {
		data, err := os.ReadFile(file)
		if err != nil {
			f.Fatalf("failed to read seed file %s: %v", file, err)
		}
		f.Add(string(data))
	}
	f.Add("")
	f.Add("@only a comment\n")
	f.Add("key\n")
	f.Add("key>value\n")
	f.Add("a\n  b\n    c\n  d\n")
	f.Add("a\n\tb\n")
	f.Add("a\n  v>x>y>z\n")

	f.Fuzz(func(t *testing.T, input string) {
		forest, err := ntr.ParseString(input)
		if err != nil {
			// Malformed input; nothing to round-trip.
			return
		}

		w, err := ntr.NewWriter(forest)
		require.NoError(t, err)
		out, err := w.String()
		require.NoError(t, err)

		// Canonical output must parse back to a structurally equal forest.
		again, err := ntr.ParseString(out)
		require.NoError(t, err, "canonical output failed to parse: %q", out)
		require.True(t, forest.Equal(again), "round-trip changed forest:\ninput:  %q\noutput: %q", input, out)
	})
}
