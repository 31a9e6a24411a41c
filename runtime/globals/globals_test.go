package globals

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestMerge(t *testing.T) {
	s := Default().Merge(Symbols{EnsureChunk: "__rspack_require__.e", AggregateWait: "Promise.allSettled"})
	require.Equal(t, "__rspack_require__.e", s.EnsureChunk)
	require.Equal(t, "Promise.allSettled", s.AggregateWait)
	require.Equal(t, Startup, s.Startup)
	require.Equal(t, Require, s.Require)
}

func TestValidateListsEveryMissingSymbol(t *testing.T) {
	err := Symbols{Startup: "x", Require: "r"}.Validate()
	require.Error(t, err)
	require.ErrorContains(t, err, `"ensureChunk"`)
	require.ErrorContains(t, err, `"ensureChunkIncludeEntries"`)
	require.ErrorContains(t, err, `"aggregateWait"`)
	require.NotContains(t, err.Error(), `"startup"`)
}

func TestRequirements(t *testing.T) {
	require.Equal(t,
		[]string{Startup, EnsureChunk, EnsureChunkIncludeEntries},
		Default().Requirements())
}
