package naming

import (
	"strings"

	"goa.design/chunkstartup/chunk"
	"goa.design/goa/v3/codegen"
)

// ModuleSuffix is appended to every generated runtime module file name.
const ModuleSuffix = ".startup.js"

// SanitizeToken converts an arbitrary string into a filesystem-safe token.
//
// The returned token:
//   - is lower snake_case
//   - contains only [a-z0-9_]
//   - never starts/ends with '_' and never contains repeated "__"
//
// When the sanitized result is empty, SanitizeToken returns fallback.
func SanitizeToken(name, fallback string) string {
	s := strings.ToLower(codegen.SnakeCase(name))
	s = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			return r
		}
		return '_'
	}, s)
	s = strings.Trim(s, "_")
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	if s == "" {
		return fallback
	}
	return s
}

// ModuleFileName returns the file name of the startup runtime module
// generated for the chunk with the given id, e.g. "pages_home.startup.js".
// Distinct ids may map to the same name; callers writing files must detect
// collisions.
func ModuleFileName(id chunk.ID) string {
	return SanitizeToken(id.String(), "chunk") + ModuleSuffix
}
