package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"goa.design/chunkstartup"
	"goa.design/chunkstartup/chunk"
	"goa.design/chunkstartup/config"
)

type (
	// report summarizes a generate run.
	report struct {
		RunID             string         `json:"runId"`
		GeneratedAt       time.Time      `json:"generatedAt"`
		Manifest          string         `json:"manifest"`
		Target            string         `json:"target,omitempty"`
		AsyncChunkLoading bool           `json:"asyncChunkLoading"`
		Modules           []reportModule `json:"modules"`

		mu sync.Mutex
	}

	reportModule struct {
		Chunk        chunk.ID   `json:"chunk"`
		Name         string     `json:"name"`
		Strategy     string     `json:"strategy"`
		Dependents   []chunk.ID `json:"dependents"`
		Requirements []string   `json:"requirements"`
		File         string     `json:"file,omitempty"`
	}
)

func newReport(manifest string, cfg *config.Config) *report {
	return &report{
		RunID:             newRunID(),
		GeneratedAt:       time.Now().UTC(),
		Manifest:          manifest,
		Target:            cfg.Target,
		AsyncChunkLoading: cfg.Async(),
		Modules:           []reportModule{},
	}
}

// newRunID returns a unique identifier for a generate run.
func newRunID() string {
	return fmt.Sprintf("startupgen-%s", uuid.NewString())
}

func (r *report) add(m *chunkstartup.RuntimeModule, file string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Modules = append(r.Modules, reportModule{
		Chunk:        m.Chunk.ID,
		Name:         m.Name,
		Strategy:     m.Strategy.String(),
		Dependents:   m.Dependents,
		Requirements: m.Requirements,
		File:         file,
	})
}

func (r *report) write(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
