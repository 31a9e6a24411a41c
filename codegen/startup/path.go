package startup

import (
	"path"
	"strings"

	"goa.design/chunkstartup/chunk"
)

// FormatID returns the id to render for a dependent chunk. For node targets
// the string form of id is rewritten as a path relative to baseDir; other
// targets get id unchanged.
func FormatID(id chunk.ID, target Target, baseDir string) chunk.ID {
	if target != TargetNode {
		return id
	}
	return chunk.StringID(relative(baseDir, id.String()))
}

// relative returns the slash separated path from "from" to "to". Relative
// inputs are resolved against the output root, identical paths yield "" and
// ".." is emitted once per segment of "from" outside the common prefix.
func relative(from, to string) string {
	f, t := segments(from), segments(to)
	i := 0
	for i < len(f) && i < len(t) && f[i] == t[i] {
		i++
	}
	parts := make([]string, 0, len(f)-i+len(t)-i)
	for range f[i:] {
		parts = append(parts, "..")
	}
	parts = append(parts, t[i:]...)
	return strings.Join(parts, "/")
}

func segments(p string) []string {
	p = path.Join("/", p)
	if p == "/" {
		return nil
	}
	return strings.Split(p[1:], "/")
}
