package startup

import (
	"strings"

	"goa.design/chunkstartup/codegen/ir"
	"goa.design/chunkstartup/codegen/jstemplate"
	"goa.design/chunkstartup/runtime/globals"
)

// nextBinding names the local binding holding the previous continuation.
const nextBinding = "next"

// renderBody renders the statements of b. Each element is one body segment
// and may span several lines; segments are indented as a unit by
// jstemplate.IndentLines.
func renderBody(b ir.Body, s globals.Symbols) []string {
	var out []string
	for _, st := range b.Statements {
		switch st := st.(type) {
		case ir.EnsureStmt:
			out = append(out, jstemplate.Call(s.EnsureChunk, st.ID.Literal())+";")
		case ir.ReturnStmt:
			segs := renderExpr(st.Value, s)
			segs[0] = "return " + segs[0]
			segs[len(segs)-1] += ";"
			out = append(out, segs...)
		}
	}
	return out
}

// renderExpr renders e as one or more segments. Callers may only prepend to
// the first segment and append to the last.
func renderExpr(e ir.Expr, s globals.Symbols) []string {
	switch e := e.(type) {
	case ir.CallNext:
		return []string{jstemplate.Call(nextBinding)}
	case ir.Then:
		segs := renderExpr(e.Source, s)
		segs[len(segs)-1] += ".then(" + nextBinding + ")"
		return segs
	case ir.EnsureExpr:
		return []string{jstemplate.Call(s.EnsureChunk, e.ID.Literal())}
	case ir.AllList:
		items := make([]string, len(e.Items))
		for i, it := range e.Items {
			items[i] = jstemplate.Call(s.EnsureChunk, it.ID.Literal())
		}
		return []string{
			s.AggregateWait + "([",
			jstemplate.Indent(strings.Join(items, ",\n")),
			"])",
		}
	case ir.AllMap:
		lits := make([]string, len(e.IDs))
		for i, id := range e.IDs {
			lits[i] = id.Literal()
		}
		mapped := jstemplate.Array(lits) + ".map(" + s.EnsureChunk + ", " + s.Require + ")"
		return []string{jstemplate.Call(s.AggregateWait, mapped)}
	default:
		return []string{""}
	}
}
