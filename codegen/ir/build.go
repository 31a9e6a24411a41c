package ir

import "goa.design/chunkstartup/chunk"

// Build returns the startup body for the ordered ids. When async is false the
// body loads every chunk eagerly before resuming; otherwise it resumes once the
// loads settle, picking the shortest waiting form for the number of ids:
//
//	0 or 2 ids: wait([ensure(a), ensure(b)]).then(next)
//	1 id:       ensure(a).then(next)
//	3+ ids:     wait([a,b,c].map(ensure, require)).then(next)
//
// ids are used in the given order; duplicates are kept. The ids slice is
// copied.
func Build(ids []chunk.ID, async bool) Body {
	if !async {
		stmts := make([]Statement, 0, len(ids)+1)
		for _, id := range ids {
			stmts = append(stmts, EnsureStmt{ID: id})
		}
		stmts = append(stmts, ReturnStmt{Value: CallNext{}})
		return Body{Strategy: StrategySync, Statements: stmts}
	}

	switch {
	case len(ids) == 1:
		return Body{
			Strategy:   StrategySingle,
			Statements: []Statement{ReturnStmt{Value: Then{Source: EnsureExpr{ID: ids[0]}}}},
		}
	case len(ids) > 2:
		list := make([]chunk.ID, len(ids))
		copy(list, ids)
		return Body{
			Strategy:   StrategyMap,
			Statements: []Statement{ReturnStmt{Value: Then{Source: AllMap{IDs: list}}}},
		}
	default:
		items := make([]EnsureExpr, len(ids))
		for i, id := range ids {
			items[i] = EnsureExpr{ID: id}
		}
		return Body{
			Strategy:   StrategyList,
			Statements: []Statement{ReturnStmt{Value: Then{Source: AllList{Items: items}}}},
		}
	}
}

// EnsuredIDs returns the ids loaded by b, in load order.
func (b Body) EnsuredIDs() []chunk.ID {
	var ids []chunk.ID
	for _, s := range b.Statements {
		switch s := s.(type) {
		case EnsureStmt:
			ids = append(ids, s.ID)
		case ReturnStmt:
			ids = append(ids, exprIDs(s.Value)...)
		}
	}
	return ids
}

// Resumes reports how many times b invokes the previous startup continuation.
func (b Body) Resumes() int {
	n := 0
	for _, s := range b.Statements {
		if r, ok := s.(ReturnStmt); ok {
			switch r.Value.(type) {
			case CallNext, Then:
				n++
			}
		}
	}
	return n
}

func exprIDs(e Expr) []chunk.ID {
	switch e := e.(type) {
	case Then:
		return exprIDs(e.Source)
	case EnsureExpr:
		return []chunk.ID{e.ID}
	case AllList:
		ids := make([]chunk.ID, len(e.Items))
		for i, it := range e.Items {
			ids[i] = it.ID
		}
		return ids
	case AllMap:
		return e.IDs
	default:
		return nil
	}
}
