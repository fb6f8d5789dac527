package tables

import (
	"sort"
	"strings"

	"github.com/cognicore/polyglot/pkg/polyglot/action"
)

// Names of the built-in tables in Default.
const (
	TimeTable  = "time"
	RateTable  = "rate"
	ColorTable = "color"
)

// Registry holds named candidate tables. It is built once and never
// changed, so lookups need no locking.
type Registry struct {
	tables map[string]action.Table
}

// NewRegistry creates a registry from named tables. Names are
// case-insensitive.
func NewRegistry(named map[string]action.Table) *Registry {
	r := &Registry{tables: make(map[string]action.Table, len(named))}
	for name, t := range named {
		r.tables[strings.ToLower(name)] = t
	}
	return r
}

// Default returns a registry with the built-in time, rate and color tables.
func Default() *Registry {
	return NewRegistry(map[string]action.Table{
		TimeTable:  Time,
		RateTable:  Rates,
		ColorTable: Colors,
	})
}

// Table returns the named table.
func (r *Registry) Table(name string) (action.Table, bool) {
	t, ok := r.tables[strings.ToLower(name)]
	return t, ok
}

// Names returns the table names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge returns a new registry holding r's tables plus named. Tables in
// named replace tables of the same name. r is not modified.
func (r *Registry) Merge(named map[string]action.Table) *Registry {
	all := make(map[string]action.Table, len(r.tables)+len(named))
	for name, t := range r.tables {
		all[name] = t
	}
	for name, t := range named {
		all[strings.ToLower(name)] = t
	}
	return NewRegistry(all)
}
