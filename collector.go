package chunkstartup

import (
	"context"
	"sync"

	"goa.design/chunkstartup/chunk"
)

// Collector is a CodeSink keeping every module it receives in memory.
type Collector struct {
	mu      sync.Mutex
	modules []*RuntimeModule
}

// AddRuntimeModule records m.
func (c *Collector) AddRuntimeModule(_ context.Context, _ *chunk.Chunk, m *RuntimeModule) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modules = append(c.modules, m)
	return nil
}

// Modules returns the recorded modules in the order they were added.
func (c *Collector) Modules() []*RuntimeModule {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*RuntimeModule, len(c.modules))
	copy(out, c.modules)
	return out
}
