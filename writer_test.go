package ntr_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fedox/go-ntr"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *ntr.Forest {
	t.Helper()
	forest, err := ntr.ParseString(src)
	require.NoError(t, err)
	return forest
}

func TestWriterString(t *testing.T) {
	t.Run("single root", func(t *testing.T) {
		forest := mustParse(t, "welcome\n  title>Hello\n  message>Welcome!\n")

		w, err := ntr.NewWriter(forest)
		require.NoError(t, err)
		out, err := w.String()
		require.NoError(t, err)
		require.Equal(t, "welcome\n  title>Hello\n  message>Welcome!\n", out)
	})

	t.Run("blank line between roots, in insertion order", func(t *testing.T) {
		forest := mustParse(t, "b>2\na>1\n")

		w, err := ntr.NewWriter(forest)
		require.NoError(t, err)
		out, err := w.String()
		require.NoError(t, err)
		require.Equal(t, "b>2\n\na>1\n", out)
	})

	t.Run("empty value writes bare key", func(t *testing.T) {
		forest := mustParse(t, "a\n  b>\n  c\n")

		w, err := ntr.NewWriter(forest)
		require.NoError(t, err)
		out, err := w.String()
		require.NoError(t, err)
		require.Equal(t, "a\n  b\n  c\n", out)
	})

	t.Run("header comment", func(t *testing.T) {
		forest := mustParse(t, "a>1\n")

		w, err := ntr.NewWriter(forest, ntr.Comment("generated"))
		require.NoError(t, err)
		out, err := w.String()
		require.NoError(t, err)
		require.Equal(t, "@generated\n\na>1\n", out)
	})

	t.Run("empty forest writes nothing", func(t *testing.T) {
		w, err := ntr.NewWriter(ntr.NewForest())
		require.NoError(t, err)
		out, err := w.String()
		require.NoError(t, err)
		require.Equal(t, "", out)
	})
}

func TestWriterIndentOption(t *testing.T) {
	forest := mustParse(t, "a\n  b\n    c>v\n")

	t.Run("custom width", func(t *testing.T) {
		w, err := ntr.NewWriter(forest, ntr.Indent(4))
		require.NoError(t, err)
		out, err := w.String()
		require.NoError(t, err)
		require.Equal(t, "a\n    b\n        c>v\n", out)
	})

	t.Run("zero width is rejected", func(t *testing.T) {
		_, err := ntr.NewWriter(forest, ntr.Indent(0))
		require.Error(t, err)
		require.Contains(t, err.Error(), "indent must be a positive number")
	})
}

func TestWriteFile(t *testing.T) {
	ctx := context.Background()
	forest := mustParse(t, "a\n  b>1\n")

	w, err := ntr.NewWriter(forest, ntr.Comment("saved"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.ntr")
	require.NoError(t, w.WriteFile(ctx, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "@saved\n\na\n  b>1\n", string(data))

	t.Run("unwritable path", func(t *testing.T) {
		err := w.WriteFile(ctx, filepath.Join(t.TempDir(), "no", "such", "dir.ntr"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "write file")
	})
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"a\n",
		"a>1\n",
		"a\n  b>1\n  c\n    d>x\n",
		"first\n  one>1\n\nsecond\n  two>2\n  nested\n    deep>yes\n",
		"keys with spaces\n  inner key>inner value\n",
	}
	for _, src := range inputs {
		forest := mustParse(t, src)

		w, err := ntr.NewWriter(forest)
		require.NoError(t, err)
		out, err := w.String()
		require.NoError(t, err)

		again := mustParse(t, out)
		require.True(t, forest.Equal(again), "round-trip changed forest for %q", src)
	}
}
