package startup

import (
	"fmt"
	"strings"
	"text/template"

	"goa.design/chunkstartup/codegen/ir"
	"goa.design/chunkstartup/codegen/jstemplate"
	"goa.design/chunkstartup/runtime/globals"
	"goa.design/goa/v3/codegen"
)

// sectionData is the data of the startup section templates.
type sectionData struct {
	// Next is the local binding holding the previous continuation.
	Next string
	// Symbols are the runtime names.
	Symbols globals.Symbols
	// Environment describes the output environment.
	Environment jstemplate.Environment
	// Body holds the rendered body segments of the replacement function.
	Body []string
}

// Plan returns the body of the replacement startup function for req.
func Plan(req Request) ir.Body {
	return ir.Build(req.IDs(), req.AsyncChunkLoading)
}

// Sections returns the section templates of the runtime module for req: the
// capture of the previous continuation followed by its replacement.
func Sections(req Request) []*codegen.SectionTemplate {
	syms := req.symbols()
	data := &sectionData{
		Next:        nextBinding,
		Symbols:     syms,
		Environment: req.Environment,
		Body:        renderBody(Plan(req), syms),
	}
	return []*codegen.SectionTemplate{
		{
			Name:    "startup-capture",
			Source:  startupTemplates.Read(captureT),
			Data:    data,
			FuncMap: templateFuncMap(),
		},
		{
			Name:    "startup-replace",
			Source:  startupTemplates.Read(replaceT),
			Data:    data,
			FuncMap: templateFuncMap(),
		},
	}
}

// Generate returns the runtime module code for req.
func Generate(req Request) string {
	code, err := Render(Sections(req))
	if err != nil {
		// The section templates are embedded and their data is built here.
		panic(err)
	}
	return code
}

// Render executes the sections and joins their output with newlines. The
// trailing newline of each section is dropped.
func Render(sections []*codegen.SectionTemplate) (string, error) {
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		tmpl, err := template.New(s.Name).Funcs(s.FuncMap).Parse(s.Source)
		if err != nil {
			return "", fmt.Errorf("parse section %s: %w", s.Name, err)
		}
		var buf strings.Builder
		if err := tmpl.Execute(&buf, s.Data); err != nil {
			return "", fmt.Errorf("execute section %s: %w", s.Name, err)
		}
		parts = append(parts, strings.TrimSuffix(buf.String(), "\n"))
	}
	return jstemplate.AsString(parts), nil
}
