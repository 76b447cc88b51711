package ntr_test

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fedox/go-ntr"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

// TestGolden parses every testdata/*.ntr file and rewrites it canonically;
// the result (or the parse error text for malformed inputs) must match the
// corresponding .golden file.
func TestGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.ntr")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			src, err := os.ReadFile(file)
			require.NoError(t, err)

			var actual []byte
			forest, err := ntr.ParseString(string(src))
			if err != nil {
				actual = []byte(err.Error())
			} else {
				w, err := ntr.NewWriter(forest)
				require.NoError(t, err)
				out, err := w.String()
				require.NoError(t, err)
				actual = []byte(out)
			}

			goldenFile := strings.Replace(file, ".ntr", ".golden", 1)
			if *update {
				require.NoError(t, os.WriteFile(goldenFile, actual, 0o644))
			}

			expected, err := os.ReadFile(goldenFile)
			require.NoError(t, err)
			require.Equal(t, string(expected), string(actual))
		})
	}
}
