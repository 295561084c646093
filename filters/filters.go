// Package filters turns list query parameters into gorm scopes.
package filters

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Scope is a reusable query modifier passed to (*gorm.DB).Scopes.
type Scope = func(*gorm.DB) *gorm.DB

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ParseBool reports true only for "true" in any letter case. Every other value,
// including the empty string, is false.
func ParseBool(raw string) bool {
	return strings.EqualFold(raw, "true")
}

// OptionalBool returns nil when key is absent from q, otherwise ParseBool of its
// first value.
func OptionalBool(q url.Values, key string) *bool {
	values, ok := q[key]
	if !ok {
		return nil
	}
	raw := ""
	if len(values) > 0 {
		raw = values[0]
	}
	b := ParseBool(raw)
	return &b
}

// OptionalString returns nil when key is absent from q, otherwise its first
// value as sent. An empty value is still a filter.
func OptionalString(q url.Values, key string) *string {
	values, ok := q[key]
	if !ok {
		return nil
	}
	value := ""
	if len(values) > 0 {
		value = values[0]
	}
	return &value
}

// Equals filters column by exact value.
func Equals(column string, value any) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: column}, Value: value})
	}
}

// Contains filters column by case-insensitive substring. The same SQL runs on
// PostgreSQL and SQLite.
func Contains(column, term string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(containsSQL(column), likePattern(term))
	}
}

// Search requires every term of raw to appear, case-insensitively, in at least one
// of fields. Terms are separated by whitespace or commas.
func Search(raw string, fields []string) Scope {
	terms := SearchTerms(raw)
	return func(db *gorm.DB) *gorm.DB {
		if len(terms) == 0 || len(fields) == 0 {
			return db
		}
		for _, term := range terms {
			conditions := make([]string, 0, len(fields))
			args := make([]any, 0, len(fields))
			for _, field := range fields {
				conditions = append(conditions, containsSQL(field))
				args = append(args, likePattern(term))
			}
			db = db.Where("("+strings.Join(conditions, " OR ")+")", args...)
		}
		return db
	}
}

// SearchTerms splits a search value the way the search box sends it.
func SearchTerms(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

func containsSQL(column string) string {
	return fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, column)
}

func likePattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}
