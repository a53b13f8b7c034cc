// Package search composes "any configured field matches the term" filters,
// either as a gorm scope or over in-memory records.
package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// Lookup is the match mode applied between a field and the search term.
type Lookup string

const (
	IContains   Lookup = "icontains"
	Contains    Lookup = "contains"
	IExact      Lookup = "iexact"
	Exact       Lookup = "exact"
	IStartsWith Lookup = "istartswith"
	StartsWith  Lookup = "startswith"
)

// DefaultLookup is used when a FilterSet leaves Method empty.
const DefaultLookup = IContains

// ParseLookup maps a method name onto a Lookup. Unknown names fall back to
// DefaultLookup.
func ParseLookup(s string) Lookup {
	switch l := Lookup(strings.ToLower(s)); l {
	case IContains, Contains, IExact, Exact, IStartsWith, StartsWith:
		return l
	default:
		return DefaultLookup
	}
}

func (l Lookup) insensitive() bool {
	return l == IContains || l == IExact || l == IStartsWith
}

// Match reports whether value matches term under l.
func (l Lookup) Match(value, term string) bool {
	if l.insensitive() {
		fold := cases.Fold()
		value, term = fold.String(value), fold.String(term)
	}
	switch l {
	case Contains, IContains:
		return strings.Contains(value, term)
	case Exact, IExact:
		return value == term
	case StartsWith, IStartsWith:
		return strings.HasPrefix(value, term)
	default:
		return false
	}
}
