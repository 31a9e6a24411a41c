// Package scenarios defines the generation requests covered by the startup
// golden files. The golden test and cmd/regolden both iterate All.
package scenarios

import (
	"goa.design/chunkstartup/chunk"
	"goa.design/chunkstartup/codegen/jstemplate"
	"goa.design/chunkstartup/codegen/startup"
	"goa.design/chunkstartup/runtime/globals"
)

// Scenario is a named generation request.
type Scenario struct {
	Name    string
	Request startup.Request
}

// GoldenFile returns the golden file name of s relative to testdata/golden.
func (s Scenario) GoldenFile() string {
	return s.Name + ".js.golden"
}

// All returns every scenario in a stable order.
func All() []Scenario {
	main := &chunk.Chunk{ID: chunk.StringID("main"), Name: "main"}
	return []Scenario{
		{"sync_none", startup.Request{Chunk: main}},
		{"sync_two", startup.Request{Chunk: main, Dependents: deps(chunk.NumberID(1), chunk.StringID("vendors"))}},
		{"async_empty", startup.Request{Chunk: main, AsyncChunkLoading: true}},
		{"async_single", startup.Request{Chunk: main, AsyncChunkLoading: true, Dependents: deps(chunk.StringID("vendors"))}},
		{"async_pair", startup.Request{Chunk: main, AsyncChunkLoading: true, Dependents: deps(chunk.StringID("vendors"), chunk.NumberID(42))}},
		{"async_map", startup.Request{Chunk: main, AsyncChunkLoading: true, Dependents: deps(
			chunk.NumberID(3), chunk.StringID("vendors"), chunk.NumberID(1), chunk.StringID("shared"))}},
		{"node_single", startup.Request{
			Chunk:             &chunk.Chunk{ID: chunk.StringID("entry"), Name: "a/b/entry"},
			Dependents:        deps(chunk.StringID("a/c/chunk")),
			AsyncChunkLoading: true,
			Target:            startup.TargetNode,
		}},
		{"node_map", startup.Request{
			Chunk:             &chunk.Chunk{ID: chunk.StringID("pages/home/index"), Name: "pages/home/index"},
			Dependents:        deps(chunk.StringID("pages/about/index"), chunk.StringID("shared/vendors"), chunk.NumberID(12)),
			AsyncChunkLoading: true,
			Target:            startup.TargetNode,
		}},
		{"arrow_pair", startup.Request{
			Chunk:             main,
			Dependents:        deps(chunk.StringID("a"), chunk.StringID("b")),
			AsyncChunkLoading: true,
			Environment:       jstemplate.Environment{ArrowFunction: true},
		}},
		{"custom_symbols", startup.Request{
			Chunk:      main,
			Dependents: deps(chunk.StringID("lib")),
			Symbols: globals.Symbols{
				Startup:     "__rt__.startup",
				EnsureChunk: "__rt__.ensure",
			},
		}},
	}
}

func deps(ids ...chunk.ID) []*chunk.Chunk {
	out := make([]*chunk.Chunk, len(ids))
	for i, id := range ids {
		out[i] = &chunk.Chunk{ID: id, Name: id.String()}
	}
	return out
}
