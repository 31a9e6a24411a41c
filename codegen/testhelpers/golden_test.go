package testhelpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssertGoldenMatches(t *testing.T) {
	p := filepath.Join(t.TempDir(), "x.js.golden")
	require.NoError(t, os.WriteFile(p, []byte("var a = 1;"), 0o600))
	AssertGolden(t, p, "var a = 1;")
}

func TestDiff(t *testing.T) {
	d := Diff("x.golden", "a\nb\n", "a\nc\n")
	require.Contains(t, d, "--- x.golden")
	require.Contains(t, d, "+++ generated")
	require.Contains(t, d, "-b")
	require.Contains(t, d, "+c")
}
