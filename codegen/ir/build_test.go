package ir_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"goa.design/chunkstartup/chunk"
	"goa.design/chunkstartup/codegen/ir"
)

func ids(n int) []chunk.ID {
	out := make([]chunk.ID, n)
	for i := range out {
		out[i] = chunk.NumberID(int64(i + 1))
	}
	return out
}

func TestBuildSync(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5} {
		body := ir.Build(ids(n), false)
		require.Equal(t, ir.StrategySync, body.Strategy)
		require.Len(t, body.Statements, n+1)
		for i := 0; i < n; i++ {
			require.Equal(t, ir.EnsureStmt{ID: chunk.NumberID(int64(i + 1))}, body.Statements[i])
		}
		require.Equal(t, ir.ReturnStmt{Value: ir.CallNext{}}, body.Statements[n])
		require.Equal(t, 1, body.Resumes())
	}
}

func TestBuildAsyncSingle(t *testing.T) {
	body := ir.Build([]chunk.ID{chunk.StringID("vendors")}, true)
	require.Equal(t, ir.StrategySingle, body.Strategy)
	require.Equal(t, []ir.Statement{
		ir.ReturnStmt{Value: ir.Then{Source: ir.EnsureExpr{ID: chunk.StringID("vendors")}}},
	}, body.Statements)
}

func TestBuildAsyncPair(t *testing.T) {
	a, b := chunk.StringID("b"), chunk.StringID("a")
	body := ir.Build([]chunk.ID{a, b}, true)
	require.Equal(t, ir.StrategyList, body.Strategy)
	require.Equal(t, []ir.Statement{
		ir.ReturnStmt{Value: ir.Then{Source: ir.AllList{Items: []ir.EnsureExpr{{ID: a}, {ID: b}}}}},
	}, body.Statements)
}

func TestBuildAsyncEmpty(t *testing.T) {
	body := ir.Build(nil, true)
	require.Equal(t, ir.StrategyList, body.Strategy)
	require.Equal(t, []ir.Statement{
		ir.ReturnStmt{Value: ir.Then{Source: ir.AllList{Items: []ir.EnsureExpr{}}}},
	}, body.Statements)
	require.Empty(t, body.EnsuredIDs())
	require.Equal(t, 1, body.Resumes())
}

func TestBuildAsyncMap(t *testing.T) {
	in := ids(4)
	body := ir.Build(in, true)
	require.Equal(t, ir.StrategyMap, body.Strategy)
	require.Equal(t, []ir.Statement{
		ir.ReturnStmt{Value: ir.Then{Source: ir.AllMap{IDs: in}}},
	}, body.Statements)

	// the body does not alias the caller's slice
	in[0] = chunk.StringID("changed")
	require.Equal(t, chunk.NumberID(1), body.EnsuredIDs()[0])
}

func TestBuildKeepsDuplicates(t *testing.T) {
	a := chunk.StringID("a")
	body := ir.Build([]chunk.ID{a, a, a}, true)
	require.Equal(t, []chunk.ID{a, a, a}, body.EnsuredIDs())
}

func TestStrategyString(t *testing.T) {
	require.Equal(t, "sync", ir.StrategySync.String())
	require.Equal(t, "single", ir.StrategySingle.String())
	require.Equal(t, "list", ir.StrategyList.String())
	require.Equal(t, "map", ir.StrategyMap.String())
	require.Equal(t, "unknown", ir.Strategy(42).String())
}
