// Package jstemplate assembles JavaScript source text from lines.
//
// The helpers follow the conventions of the bundler runtime templates so
// generated runtime modules are byte-identical to what the bundler itself
// would emit: lines are joined with "\n", nested blocks are indented with one
// tab per level and no trailing newline is added.
package jstemplate

import (
	"strings"
	"unicode"
)

// Environment describes the JavaScript features available in the output
// environment.
type Environment struct {
	// ArrowFunction reports whether the environment supports arrow functions.
	ArrowFunction bool `yaml:"arrowFunction" json:"arrowFunction"`
}

// AsString joins lines with newlines.
func AsString(lines []string) string {
	return strings.Join(lines, "\n")
}

// Indent indents every line of s that follows a newline and is not itself
// empty with one tab. Trailing whitespace is trimmed first and an empty result
// stays empty. The first line is not indented when s starts with a newline.
func Indent(s string) string {
	s = strings.TrimRightFunc(s, isTrimmable)
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s) + strings.Count(s, "\n") + 1)
	if s[0] != '\n' {
		b.WriteByte('\t')
	}
	for i := 0; i < len(s); i++ {
		b.WriteByte(s[i])
		if s[i] == '\n' && i+1 < len(s) && s[i+1] != '\n' {
			b.WriteByte('\t')
		}
	}
	return b.String()
}

// IndentLines indents each element of lines with Indent and joins them with
// newlines. Elements may themselves span several lines.
func IndentLines(lines []string) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = Indent(l)
	}
	return AsString(out)
}

// BasicFunction renders a function expression taking args and executing body.
func (e Environment) BasicFunction(args string, body []string) string {
	if e.ArrowFunction {
		return "(" + args + ") => {\n" + IndentLines(body) + "\n}"
	}
	return "function(" + args + ") {\n" + IndentLines(body) + "\n}"
}

// Call renders fn(args...).
func Call(fn string, args ...string) string {
	return fn + "(" + strings.Join(args, ", ") + ")"
}

// Array renders items as an array literal without whitespace, the layout
// JSON.stringify uses.
func Array(items []string) string {
	return "[" + strings.Join(items, ",") + "]"
}

// isTrimmable matches the characters String.prototype.trimEnd removes.
func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
