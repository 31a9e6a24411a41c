package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"goa.design/chunkstartup"
	"goa.design/chunkstartup/chunk"
	"goa.design/chunkstartup/codegen/naming"
)

type (
	// moduleSink is a CodeSink that reports where each module went.
	moduleSink interface {
		chunkstartup.CodeSink
		// location returns the file the module of c was written to, or ""
		// when modules are not written to files.
		location(c *chunk.Chunk) string
	}

	// fileSink writes one file per module under dir.
	fileSink struct {
		dir   string
		mu    sync.Mutex
		owner map[string]chunk.ID
		paths map[*chunk.Chunk]string
	}

	// streamSink writes every module to w, each preceded by a banner comment.
	streamSink struct {
		w     io.Writer
		mu    sync.Mutex
		count int
	}
)

func newFileSink(dir string) *fileSink {
	return &fileSink{
		dir:   dir,
		owner: make(map[string]chunk.ID),
		paths: make(map[*chunk.Chunk]string),
	}
}

func (s *fileSink) AddRuntimeModule(_ context.Context, c *chunk.Chunk, m *chunkstartup.RuntimeModule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := naming.ModuleFileName(c.ID)
	if prev, ok := s.owner[name]; ok {
		return fmt.Errorf("file name %s of chunk %s collides with chunk %s", name, c.ID.Literal(), prev.Literal())
	}
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, []byte(m.Source+"\n"), 0o644); err != nil { //nolint:gosec // generated JavaScript is meant to be served
		return fmt.Errorf("write module: %w", err)
	}
	s.owner[name] = c.ID
	s.paths[c] = path
	return nil
}

func (s *fileSink) location(c *chunk.Chunk) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paths[c]
}

func newStreamSink(w io.Writer) *streamSink {
	return &streamSink{w: w}
}

func (s *streamSink) AddRuntimeModule(_ context.Context, c *chunk.Chunk, m *chunkstartup.RuntimeModule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sep := ""
	if s.count > 0 {
		sep = "\n"
	}
	if _, err := fmt.Fprintf(s.w, "%s/* %s: %s */\n%s\n", sep, commentSafe(c.ID.String()), m.Name, m.Source); err != nil {
		return fmt.Errorf("write module: %w", err)
	}
	s.count++
	return nil
}

func (s *streamSink) location(*chunk.Chunk) string {
	return ""
}

// commentSafe escapes the sequences that would end a block comment early.
func commentSafe(s string) string {
	return strings.ReplaceAll(s, "*/", "*\\/")
}
