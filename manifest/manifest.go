// Package manifest reads the chunk graph handed to the startup generator from
// a YAML or JSON document:
//
//	chunks:
//	  - id: main
//	    name: app/main
//	    entryDependents: [vendors, 42]
//	  - id: vendors
//	  - id: 42
//
// Documents are validated against an embedded JSON schema before decoding.
package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"goa.design/chunkstartup/chunk"
	"gopkg.in/yaml.v3"
)

// Format is a manifest encoding.
type Format string

const (
	// FormatYAML is the YAML encoding.
	FormatYAML Format = "yaml"
	// FormatJSON is the JSON encoding.
	FormatJSON Format = "json"
)

type (
	// Manifest is the decoded document.
	Manifest struct {
		Chunks []Entry `json:"chunks" yaml:"chunks"`
	}

	// Entry describes one chunk and the chunks depending on its entry point.
	Entry struct {
		ID              chunk.ID   `json:"id" yaml:"id"`
		Name            string     `json:"name,omitempty" yaml:"name,omitempty"`
		EntryDependents []chunk.ID `json:"entryDependents,omitempty" yaml:"entryDependents,omitempty"`
	}

	// Error reports an inconsistent manifest.
	Error struct {
		// Index is the position of the offending entry.
		Index int
		// ID is the offending chunk id.
		ID chunk.ID
		// Err is chunk.ErrUnknownChunk or chunk.ErrDuplicateChunk.
		Err error
	}
)

//go:embed schema.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func (e *Error) Error() string {
	return fmt.Sprintf("chunks[%d]: %s: %v", e.Index, e.ID.Literal(), e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// FormatOf returns the format matching the extension of path, YAML unless the
// extension is .json.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Load reads the manifest at path and returns its chunk graph.
func Load(path string) (*chunk.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	g, err := Parse(data, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Parse validates and decodes data and returns its chunk graph. Chunks keep
// document order and so do the entry dependents of each chunk.
func Parse(data []byte, format Format) (*chunk.Graph, error) {
	m, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	return m.Graph()
}

// Decode validates data against the manifest schema and decodes it. YAML
// documents are validated in their JSON form and decoded as YAML.
func Decode(data []byte, format Format) (*Manifest, error) {
	doc, err := normalize(data, format)
	if err != nil {
		return nil, err
	}
	s, err := compiledSchema()
	if err != nil {
		return nil, err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if err := s.Validate(inst); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	var m Manifest
	if format == FormatYAML {
		err = yaml.Unmarshal(data, &m)
	} else {
		err = json.Unmarshal(doc, &m)
	}
	if err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return &m, nil
}

// Graph builds the chunk graph of m. Dependents may reference chunks declared
// later in the document.
func (m *Manifest) Graph() (*chunk.Graph, error) {
	g := chunk.NewGraph()
	for i, e := range m.Chunks {
		if err := g.Add(&chunk.Chunk{ID: e.ID, Name: e.Name}); err != nil {
			return nil, &Error{Index: i, ID: e.ID, Err: chunk.ErrDuplicateChunk}
		}
	}
	for i, e := range m.Chunks {
		for _, dep := range e.EntryDependents {
			if _, ok := g.Chunk(dep); !ok {
				return nil, &Error{Index: i, ID: dep, Err: chunk.ErrUnknownChunk}
			}
		}
		if err := g.Link(e.ID, e.EntryDependents...); err != nil {
			return nil, &Error{Index: i, ID: e.ID, Err: err}
		}
	}
	return g, nil
}

// normalize returns data as JSON.
func normalize(data []byte, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return data, nil
	case FormatYAML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse manifest: %w", err)
		}
		out, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("parse manifest: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported manifest format %q", format)
	}
}

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("unmarshal manifest schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("manifest.json", doc); err != nil {
			schemaErr = fmt.Errorf("add manifest schema: %w", err)
			return
		}
		schema, schemaErr = c.Compile("manifest.json")
	})
	return schema, schemaErr
}
