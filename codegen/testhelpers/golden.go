// Package testhelpers provides shared test utilities for codegen packages.
package testhelpers

import (
	"os"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"
)

// AssertGolden compares got byte for byte with the content of goldenPath and
// fails the test with a unified diff when they differ. Golden files are
// refreshed with `go run ./cmd/regolden`.
func AssertGolden(t testing.TB, goldenPath, got string) {
	t.Helper()
	want, err := os.ReadFile(goldenPath)
	require.NoErrorf(t, err, "read golden file %s", goldenPath)
	if string(want) == got {
		return
	}
	t.Fatalf("generated code does not match %s:\n%s", goldenPath, Diff(goldenPath, string(want), got))
}

// Diff returns a unified diff from want to got.
func Diff(name, want, got string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: name,
		ToFile:   "generated",
		Context:  3,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}
