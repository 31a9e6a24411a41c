package startup

import (
	"path"
	"strings"

	"goa.design/chunkstartup/chunk"
	"goa.design/chunkstartup/codegen/jstemplate"
	"goa.design/chunkstartup/runtime/globals"
)

// Target is the deployment target tag of the build.
type Target string

// TargetNode is the only target that changes generation: ids are rewritten to
// paths relative to the instrumented chunk's directory.
const TargetNode Target = "node"

// Request holds the inputs of one generation.
type Request struct {
	// Chunk is the chunk being instrumented.
	Chunk *chunk.Chunk
	// Dependents are the chunks whose entry point depends on Chunk, in the
	// order the dependency query returned them.
	Dependents []*chunk.Chunk
	// AsyncChunkLoading selects promise based loading. When false every
	// dependent chunk is loaded eagerly before resuming.
	AsyncChunkLoading bool
	// Target is the deployment target.
	Target Target
	// Symbols overrides the runtime symbol names. Empty fields use the
	// defaults from package globals.
	Symbols globals.Symbols
	// Environment describes the output environment.
	Environment jstemplate.Environment
}

// BasePath returns the directory of the instrumented chunk's name. Node
// targets render dependent ids relative to it. Trailing slashes of the name
// are ignored, so "a/b/entry/" lives in "a/b".
func (r Request) BasePath() string {
	if r.Chunk == nil {
		return "."
	}
	name := strings.TrimRight(r.Chunk.Name, "/")
	if name == "" && r.Chunk.Name != "" {
		return "/"
	}
	return path.Dir(name)
}

// IDs returns the renderable ids of the dependent chunks in order.
func (r Request) IDs() []chunk.ID {
	base := r.BasePath()
	ids := make([]chunk.ID, len(r.Dependents))
	for i, c := range r.Dependents {
		ids[i] = FormatID(c.ID, r.Target, base)
	}
	return ids
}

func (r Request) symbols() globals.Symbols {
	return globals.Default().Merge(r.Symbols)
}
