package query

import (
	"fmt"

	"gorm.io/gorm"
)

// Supported operators. Columns and operators always come from code, never
// from request input; only values are bound as parameters.
const (
	OpEqual = "="
	OpILike = "ILIKE"
)

// Clause is one atomic filter condition. Clauses accumulate in a Filter
// and combine with AND.
type Clause struct {
	Column string
	Op     string
	Value  interface{}
}

// Filter accumulates predicate clauses for a listing query.
type Filter struct {
	clauses []Clause
}

// Add appends a clause.
func (f *Filter) Add(column, op string, value interface{}) {
	f.clauses = append(f.clauses, Clause{Column: column, Op: op, Value: value})
}

// Eq appends an exact-equality clause.
func (f *Filter) Eq(column string, value interface{}) {
	f.Add(column, OpEqual, value)
}

// Contains appends a case-insensitive substring clause.
func (f *Filter) Contains(column, needle string) {
	f.Add(column, OpILike, "%"+needle+"%")
}

// Clauses returns the accumulated clauses.
func (f *Filter) Clauses() []Clause {
	return f.clauses
}

// Len returns the number of accumulated clauses.
func (f *Filter) Len() int {
	return len(f.clauses)
}

// Apply maps every clause onto the query as a parameterized WHERE
// condition. GORM combines successive Where calls with AND.
func (f *Filter) Apply(tx *gorm.DB) *gorm.DB {
	for _, c := range f.clauses {
		tx = tx.Where(fmt.Sprintf("%s %s ?", c.Column, c.Op), c.Value)
	}
	return tx
}
