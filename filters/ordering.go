package filters

import (
	"slices"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Ordering describes the sortable columns of a resource. Terms use the
// "name" / "-name" notation.
type Ordering struct {
	Allowed []string
	Default []string
}

// Terms returns the accepted terms of a comma separated ordering value, or the
// default ordering when none is accepted.
func (o Ordering) Terms(raw string) []string {
	var terms []string
	for _, term := range strings.Split(raw, ",") {
		term = strings.TrimSpace(term)
		if slices.Contains(o.Allowed, strings.TrimPrefix(term, "-")) {
			terms = append(terms, term)
		}
	}
	if len(terms) == 0 {
		return o.Default
	}
	return terms
}

// Scope orders by Terms(raw) and then by id so pages are stable.
func (o Ordering) Scope(raw string) Scope {
	return orderBy(o.Terms(raw))
}

// DefaultScope orders by the default ordering.
func (o Ordering) DefaultScope() Scope {
	return orderBy(o.Default)
}

func orderBy(terms []string) Scope {
	columns := make([]clause.OrderByColumn, 0, len(terms)+1)
	hasID := false
	for _, term := range terms {
		name := strings.TrimPrefix(term, "-")
		hasID = hasID || name == "id"
		columns = append(columns, clause.OrderByColumn{
			Column: clause.Column{Table: clause.CurrentTable, Name: name},
			Desc:   strings.HasPrefix(term, "-"),
		})
	}
	if !hasID {
		columns = append(columns, clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}})
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Clauses(clause.OrderBy{Columns: columns})
	}
}
