package search

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FilterSet searches Fields for a term and always deduplicates rows, since a
// term matching through several joined rows would otherwise repeat them.
//
// Fields are column names of the queried table or "table.column" for joined
// tables.
type FilterSet struct {
	Fields []string
	Method Lookup
}

func (f FilterSet) lookup() Lookup {
	if f.Method == "" {
		return DefaultLookup
	}
	return f.Method
}

// Apply narrows db to rows matching q. The query is not executed.
func (f FilterSet) Apply(db *gorm.DB, q string) *gorm.DB {
	return db.Scopes(f.Scope(q))
}

// Scope returns the gorm scope for q.
//
// An empty q only deduplicates. A non-empty q with no Fields matches no row.
func (f FilterSet) Scope(q string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = distinct(db)
		if q == "" {
			return db
		}
		if len(f.Fields) == 0 {
			return db.Where("1 = 0")
		}

		exprs := make([]clause.Expression, 0, len(f.Fields))
		for _, field := range f.Fields {
			exprs = append(exprs, f.lookup().expr(column(field), q))
		}
		// a lone OrConditions would be OR-joined to earlier conditions
		if len(exprs) == 1 {
			return db.Where(exprs[0])
		}
		return db.Where(clause.Or(exprs...))
	}
}

// distinct selects DISTINCT table.* so joins do not widen the projection.
func distinct(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Select{
		Distinct: true,
		Columns:  []clause.Column{{Table: clause.CurrentTable, Name: "*", Raw: true}},
	})
}

func column(field string) clause.Column {
	if table, name, ok := strings.Cut(field, "."); ok {
		return clause.Column{Table: table, Name: name}
	}
	return clause.Column{Table: clause.CurrentTable, Name: field}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (l Lookup) expr(col clause.Column, q string) clause.Expression {
	switch l {
	case Contains:
		return clause.Expr{SQL: "? LIKE BINARY ?", Vars: []any{col, "%" + likeEscaper.Replace(q) + "%"}}
	case Exact:
		return clause.Expr{SQL: "? = BINARY ?", Vars: []any{col, q}}
	case IExact:
		return clause.Expr{SQL: "LOWER(?) = LOWER(?)", Vars: []any{col, q}}
	case StartsWith:
		return clause.Expr{SQL: "? LIKE BINARY ?", Vars: []any{col, likeEscaper.Replace(q) + "%"}}
	case IStartsWith:
		return clause.Expr{SQL: "LOWER(?) LIKE LOWER(?)", Vars: []any{col, likeEscaper.Replace(q) + "%"}}
	default:
		return clause.Expr{SQL: "LOWER(?) LIKE LOWER(?)", Vars: []any{col, "%" + likeEscaper.Replace(q) + "%"}}
	}
}
