// Package globals defines the well-known runtime symbol names that generated
// bootstrap code refers to.
//
// Symbol names are configuration, not ambient constants: callers pass a
// Symbols value to the generator so the same generator can target runtimes
// that expose the loader API under different names.
package globals

import (
	"errors"
	"fmt"
)

const (
	// Startup is the default startup continuation slot.
	Startup = "__webpack_require__.x"
	// EnsureChunk is the default single-chunk ensure-load function.
	EnsureChunk = "__webpack_require__.e"
	// EnsureChunkIncludeEntries is the runtime requirement asking the chunk
	// loader to also load entry-dependent chunks. It is a requirement marker,
	// not a callable expression.
	EnsureChunkIncludeEntries = "__webpack_require__.f (include entries)"
	// Require is the default module require function, used as the this
	// argument when mapping ensure-load over an id list.
	Require = "__webpack_require__"
	// AggregateWait is the default aggregate-wait primitive.
	AggregateWait = "Promise.all"
)

// Symbols is the closed set of runtime names referenced by generated code.
type Symbols struct {
	// Startup is the chunk's startup continuation slot.
	Startup string `yaml:"startup" json:"startup"`
	// EnsureChunk loads a single chunk and returns a thenable.
	EnsureChunk string `yaml:"ensureChunk" json:"ensureChunk"`
	// EnsureChunkIncludeEntries is reported as a runtime requirement.
	EnsureChunkIncludeEntries string `yaml:"ensureChunkIncludeEntries" json:"ensureChunkIncludeEntries"`
	// Require is the loader context passed to Array.prototype.map.
	Require string `yaml:"require" json:"require"`
	// AggregateWait waits for a list of thenables.
	AggregateWait string `yaml:"aggregateWait" json:"aggregateWait"`
}

// Default returns the webpack runtime names.
func Default() Symbols {
	return Symbols{
		Startup:                   Startup,
		EnsureChunk:               EnsureChunk,
		EnsureChunkIncludeEntries: EnsureChunkIncludeEntries,
		Require:                   Require,
		AggregateWait:             AggregateWait,
	}
}

// Merge returns s with every non-empty field of overrides applied.
func (s Symbols) Merge(overrides Symbols) Symbols {
	if overrides.Startup != "" {
		s.Startup = overrides.Startup
	}
	if overrides.EnsureChunk != "" {
		s.EnsureChunk = overrides.EnsureChunk
	}
	if overrides.EnsureChunkIncludeEntries != "" {
		s.EnsureChunkIncludeEntries = overrides.EnsureChunkIncludeEntries
	}
	if overrides.Require != "" {
		s.Require = overrides.Require
	}
	if overrides.AggregateWait != "" {
		s.AggregateWait = overrides.AggregateWait
	}
	return s
}

// Validate reports every empty symbol name.
func (s Symbols) Validate() error {
	var errs []error
	for _, f := range []struct{ name, value string }{
		{"startup", s.Startup},
		{"ensureChunk", s.EnsureChunk},
		{"ensureChunkIncludeEntries", s.EnsureChunkIncludeEntries},
		{"require", s.Require},
		{"aggregateWait", s.AggregateWait},
	} {
		if f.value == "" {
			errs = append(errs, fmt.Errorf("symbol %q is empty", f.name))
		}
	}
	return errors.Join(errs...)
}

// Requirements lists the runtime requirements a chunk acquires when its
// startup is chained through entry-dependent chunks, in the order the runtime
// expects them.
func (s Symbols) Requirements() []string {
	return []string{s.Startup, s.EnsureChunk, s.EnsureChunkIncludeEntries}
}
