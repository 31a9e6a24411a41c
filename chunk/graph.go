package chunk

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownChunk is returned when a graph operation references a chunk id
	// that was never added.
	ErrUnknownChunk = errors.New("chunk: unknown chunk")
	// ErrDuplicateChunk is returned when a chunk id is added twice.
	ErrDuplicateChunk = errors.New("chunk: duplicate chunk")
)

type (
	// Chunk is an output unit of the bundle.
	Chunk struct {
		// ID is assigned by the host and stable for a build.
		ID ID
		// Name is the chunk name. It may be empty or contain path segments
		// such as "pages/home/index".
		Name string
	}

	// Graph is an in-memory chunk graph recording which chunks have an entry
	// point depending on which other chunks. Graph is not safe for concurrent
	// mutation; once populated it may be queried concurrently.
	Graph struct {
		chunks     []*Chunk
		byID       map[ID]*Chunk
		dependents map[*Chunk][]*Chunk
	}
)

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		byID:       make(map[ID]*Chunk),
		dependents: make(map[*Chunk][]*Chunk),
	}
}

// Add registers c with the graph.
func (g *Graph) Add(c *Chunk) error {
	if c == nil {
		return errors.New("chunk: nil chunk")
	}
	if _, ok := g.byID[c.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateChunk, c.ID.Literal())
	}
	g.byID[c.ID] = c
	g.chunks = append(g.chunks, c)
	return nil
}

// Chunk looks up a chunk by id.
func (g *Graph) Chunk(id ID) (*Chunk, bool) {
	c, ok := g.byID[id]
	return c, ok
}

// Chunks returns every chunk in the order it was added.
func (g *Graph) Chunks() []*Chunk {
	out := make([]*Chunk, len(g.chunks))
	copy(out, g.chunks)
	return out
}

// Link records that the entry points of the dependents chunks require target
// to be loaded first. Dependents are appended after any previously linked
// ones, in the given order, without deduplication.
func (g *Graph) Link(target ID, dependents ...ID) error {
	t, ok := g.byID[target]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownChunk, target.Literal())
	}
	resolved := make([]*Chunk, 0, len(dependents))
	for _, id := range dependents {
		d, ok := g.byID[id]
		if !ok {
			return fmt.Errorf("%w: %s (entry dependent of %s)", ErrUnknownChunk, id.Literal(), target.Literal())
		}
		resolved = append(resolved, d)
	}
	g.dependents[t] = append(g.dependents[t], resolved...)
	return nil
}

// EntryDependentChunks returns the chunks whose entry point depends on c, in
// link order. The returned slice is a copy.
func (g *Graph) EntryDependentChunks(c *Chunk) []*Chunk {
	deps := g.dependents[c]
	if len(deps) == 0 {
		return nil
	}
	out := make([]*Chunk, len(deps))
	copy(out, deps)
	return out
}

// HasEntryDependentChunks reports whether any chunk's entry point depends on c.
func (g *Graph) HasEntryDependentChunks(c *Chunk) bool {
	return len(g.dependents[c]) > 0
}
