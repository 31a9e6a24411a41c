package ir

import "goa.design/chunkstartup/chunk"

type (
	// Strategy identifies how a body waits for dependent chunks.
	Strategy int

	// Body is the body of the replacement startup function.
	Body struct {
		// Strategy is the strategy selected by Build.
		Strategy Strategy
		// Statements are executed in order. The last statement is always a
		// ReturnStmt resuming the previous startup continuation.
		Statements []Statement
	}

	// Statement is a statement of a Body.
	Statement interface {
		statement()
	}

	// Expr is an expression appearing in a ReturnStmt.
	Expr interface {
		expr()
	}

	// EnsureStmt loads a chunk synchronously for its side effect:
	// ensure(id);
	EnsureStmt struct {
		ID chunk.ID
	}

	// ReturnStmt returns the value of an expression: return value;
	ReturnStmt struct {
		Value Expr
	}

	// CallNext invokes the previous startup continuation: next()
	CallNext struct{}

	// Then resumes the previous startup continuation once Source settles:
	// source.then(next)
	Then struct {
		Source Expr
	}

	// EnsureExpr loads a chunk and evaluates to a thenable: ensure(id)
	EnsureExpr struct {
		ID chunk.ID
	}

	// AllList waits for an explicit list of loads:
	// wait([ensure(a), ensure(b)])
	AllList struct {
		Items []EnsureExpr
	}

	// AllMap waits for loads produced by mapping ensure over an id list:
	// wait([a,b,c].map(ensure, loaderContext))
	AllMap struct {
		IDs []chunk.ID
	}
)

const (
	// StrategySync ensures each chunk eagerly, in order, then resumes.
	StrategySync Strategy = iota
	// StrategySingle chains the continuation onto a single load.
	StrategySingle
	// StrategyList waits for an explicit list of loads. Used for zero or two
	// dependent chunks.
	StrategyList
	// StrategyMap waits for loads mapped over an id list. Used for three or
	// more dependent chunks, where it produces shorter code than a list.
	StrategyMap
)

// String returns the strategy name used in logs and metrics.
func (s Strategy) String() string {
	switch s {
	case StrategySync:
		return "sync"
	case StrategySingle:
		return "single"
	case StrategyList:
		return "list"
	case StrategyMap:
		return "map"
	default:
		return "unknown"
	}
}

func (EnsureStmt) statement() {}
func (ReturnStmt) statement() {}

func (CallNext) expr()   {}
func (Then) expr()       {}
func (EnsureExpr) expr() {}
func (AllList) expr()    {}
func (AllMap) expr()     {}
