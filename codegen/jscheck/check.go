// Package jscheck verifies and compacts generated JavaScript with esbuild.
package jscheck

import (
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

type (
	// SyntaxError lists the problems esbuild reported while parsing code.
	SyntaxError struct {
		// Messages holds one entry per esbuild error, in report order.
		Messages []Message
	}

	// Message is a single parse error.
	Message struct {
		// Line is 1-based, Column is a 0-based byte offset. Both are zero
		// when esbuild reported no location.
		Line   int
		Column int
		Text   string
		// LineText is the source line the error points at.
		LineText string
	}
)

func (e *SyntaxError) Error() string {
	parts := make([]string, len(e.Messages))
	for i, m := range e.Messages {
		if m.Line == 0 {
			parts[i] = m.Text
			continue
		}
		parts[i] = fmt.Sprintf("%d:%d: %s", m.Line, m.Column, m.Text)
	}
	return "javascript syntax error: " + strings.Join(parts, "; ")
}

// Validate parses code as a JavaScript script and returns a *SyntaxError when
// it does not parse.
func Validate(code string) error {
	_, err := transform(code, false)
	return err
}

// Minify removes insignificant whitespace from code. Identifiers and syntax
// are left untouched so runtime symbol names survive.
func Minify(code string) (string, error) {
	return transform(code, true)
}

func transform(code string, minify bool) (string, error) {
	result := api.Transform(code, api.TransformOptions{
		Loader:           api.LoaderJS,
		MinifyWhitespace: minify,
		LogLevel:         api.LogLevelSilent,
	})
	if len(result.Errors) > 0 {
		return "", newSyntaxError(result.Errors)
	}
	return strings.TrimSuffix(string(result.Code), "\n"), nil
}

func newSyntaxError(msgs []api.Message) *SyntaxError {
	e := &SyntaxError{Messages: make([]Message, len(msgs))}
	for i, m := range msgs {
		e.Messages[i] = Message{Text: m.Text}
		if m.Location != nil {
			e.Messages[i].Line = m.Location.Line
			e.Messages[i].Column = m.Location.Column
			e.Messages[i].LineText = m.Location.LineText
		}
	}
	return e
}
