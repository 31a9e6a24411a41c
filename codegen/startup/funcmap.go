package startup

import "goa.design/chunkstartup/codegen/jstemplate"

// templateFuncMap returns the helpers shared by the startup section templates.
func templateFuncMap() map[string]any {
	return map[string]any{
		"basicFunction": func(env jstemplate.Environment, args string, body []string) string {
			return env.BasicFunction(args, body)
		},
		"indent": jstemplate.Indent,
	}
}
