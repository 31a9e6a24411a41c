package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"goa.design/chunkstartup/chunk"
)

const yamlManifest = `
chunks:
  - id: main
    name: app/main
    entryDependents: [vendors, 42]
  - id: vendors
    name: vendors
  - id: 42
  - id: "42"
    name: quoted
`

func ids(cs []*chunk.Chunk) []chunk.ID {
	out := make([]chunk.ID, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}

func TestParseYAML(t *testing.T) {
	g, err := Parse([]byte(yamlManifest), FormatYAML)
	require.NoError(t, err)
	require.Equal(t, []chunk.ID{
		chunk.StringID("main"), chunk.StringID("vendors"), chunk.NumberID(42), chunk.StringID("42"),
	}, ids(g.Chunks()))

	main, ok := g.Chunk(chunk.StringID("main"))
	require.True(t, ok)
	assert.Equal(t, "app/main", main.Name)
	assert.Equal(t, []chunk.ID{chunk.StringID("vendors"), chunk.NumberID(42)}, ids(g.EntryDependentChunks(main)))

	quoted, ok := g.Chunk(chunk.StringID("42"))
	require.True(t, ok)
	assert.Equal(t, "quoted", quoted.Name)
	assert.False(t, g.HasEntryDependentChunks(quoted))
}

func TestParseJSONMatchesYAML(t *testing.T) {
	doc := `{"chunks":[
		{"id":"main","name":"app/main","entryDependents":["vendors",42]},
		{"id":"vendors","name":"vendors"},
		{"id":42},
		{"id":"42","name":"quoted"}
	]}`
	fromJSON, err := Parse([]byte(doc), FormatJSON)
	require.NoError(t, err)
	fromYAML, err := Parse([]byte(yamlManifest), FormatYAML)
	require.NoError(t, err)
	require.Equal(t, ids(fromYAML.Chunks()), ids(fromJSON.Chunks()))
	for _, c := range fromYAML.Chunks() {
		other, ok := fromJSON.Chunk(c.ID)
		require.True(t, ok)
		assert.Equal(t, ids(fromYAML.EntryDependentChunks(c)), ids(fromJSON.EntryDependentChunks(other)))
	}
}

func TestParseIntegralFloatIDs(t *testing.T) {
	for _, tc := range []struct {
		format Format
		doc    string
	}{
		{FormatYAML, "chunks: [{id: 42.0, entryDependents: [7.0]}, {id: 7}]"},
		{FormatJSON, `{"chunks":[{"id":42.0,"entryDependents":[7.0]},{"id":7}]}`},
	} {
		t.Run(string(tc.format), func(t *testing.T) {
			g, err := Parse([]byte(tc.doc), tc.format)
			require.NoError(t, err)
			require.Equal(t, []chunk.ID{chunk.NumberID(42), chunk.NumberID(7)}, ids(g.Chunks()))
			c, ok := g.Chunk(chunk.NumberID(42))
			require.True(t, ok)
			require.Equal(t, []chunk.ID{chunk.NumberID(7)}, ids(g.EntryDependentChunks(c)))
		})
	}
}

func TestParseKeepsDuplicateDependents(t *testing.T) {
	g, err := Parse([]byte("chunks: [{id: a, entryDependents: [b, b]}, {id: b}]"), FormatYAML)
	require.NoError(t, err)
	a, _ := g.Chunk(chunk.StringID("a"))
	require.Equal(t, []chunk.ID{chunk.StringID("b"), chunk.StringID("b")}, ids(g.EntryDependentChunks(a)))
}

func TestParseSchemaViolations(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"missing chunks", "{}"},
		{"missing id", "chunks: [{name: main}]"},
		{"float id", "chunks: [{id: 1.5}]"},
		{"empty id", `chunks: [{id: ""}]`},
		{"unknown field", "chunks: [{id: a, deps: [b]}]"},
		{"dependents not a list", "chunks: [{id: a, entryDependents: b}]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc), FormatYAML)
			require.ErrorContains(t, err, "invalid manifest")
		})
	}
}

func TestParseConsistencyErrors(t *testing.T) {
	_, err := Parse([]byte("chunks: [{id: a}, {id: b, entryDependents: [a, c]}]"), FormatYAML)
	var merr *Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, 1, merr.Index)
	assert.Equal(t, chunk.StringID("c"), merr.ID)
	assert.ErrorIs(t, err, chunk.ErrUnknownChunk)
	assert.EqualError(t, err, `chunks[1]: "c": chunk: unknown chunk`)

	_, err = Parse([]byte("chunks: [{id: 3}, {id: 3}]"), FormatYAML)
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, 1, merr.Index)
	assert.Equal(t, chunk.NumberID(3), merr.ID)
	assert.ErrorIs(t, err, chunk.ErrDuplicateChunk)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("chunks: ["), FormatYAML)
	require.ErrorContains(t, err, "parse manifest")
	_, err = Parse([]byte("{"), FormatJSON)
	require.ErrorContains(t, err, "decode manifest")
	_, err = Parse([]byte("{}"), Format("toml"))
	require.ErrorContains(t, err, "unsupported manifest format")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chunks.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"chunks":[{"id":1,"entryDependents":[2]},{"id":2}]}`), 0o600))
	g, err := Load(path)
	require.NoError(t, err)
	require.Len(t, g.Chunks(), 2)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatOf("a/chunks.JSON"))
	assert.Equal(t, FormatYAML, FormatOf("chunks.yml"))
	assert.Equal(t, FormatYAML, FormatOf("chunks"))
}
