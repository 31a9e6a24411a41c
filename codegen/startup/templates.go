package startup

import (
	"embed"

	"goa.design/goa/v3/codegen/template"
)

const (
	captureT = "capture"
	replaceT = "replace"
)

//go:embed templates/*.go.tpl
var templateFS embed.FS

var startupTemplates = &template.TemplateReader{FS: templateFS}
