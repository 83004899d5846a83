package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

type row struct {
	ID   uint
	Name string
}

func TestFilterAccumulatesClauses(t *testing.T) {
	cases := []struct {
		name     string
		build    func(f *Filter)
		expected []Clause
	}{
		{
			name:     "empty filter has no clauses",
			build:    func(f *Filter) {},
			expected: nil,
		},
		{
			name: "single equality",
			build: func(f *Filter) {
				f.Eq("category_id", 3)
			},
			expected: []Clause{{Column: "category_id", Op: OpEqual, Value: 3}},
		},
		{
			name: "substring match wraps the needle",
			build: func(f *Filter) {
				f.Contains("name", "Rice")
			},
			expected: []Clause{{Column: "name", Op: OpILike, Value: "%Rice%"}},
		},
		{
			name: "clauses keep insertion order",
			build: func(f *Filter) {
				f.Contains("name", "Rice")
				f.Eq("is_active", true)
				f.Eq("is_featured", false)
			},
			expected: []Clause{
				{Column: "name", Op: OpILike, Value: "%Rice%"},
				{Column: "is_active", Op: OpEqual, Value: true},
				{Column: "is_featured", Op: OpEqual, Value: false},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := &Filter{}
			tc.build(f)
			assert.Equal(t, tc.expected, f.Clauses())
			assert.Equal(t, len(tc.expected), f.Len())
		})
	}
}

func TestFilterApplyBuildsParameterizedWhere(t *testing.T) {
	db := dryRunDB(t)

	f := &Filter{}
	f.Contains("name", "Rice")
	f.Eq("category_id", 7)
	f.Eq("is_featured", true)

	var rows []row
	stmt := f.Apply(db.Table("products")).Find(&rows).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "name ILIKE ?")
	assert.Contains(t, sql, "category_id = ?")
	assert.Contains(t, sql, "is_featured = ?")
	assert.Contains(t, sql, " AND ")
	assert.Equal(t, []interface{}{"%Rice%", 7, true}, stmt.Vars)
}

// Adding a clause must never widen the predicate.
func TestFilterApplyNarrowsMonotonically(t *testing.T) {
	db := dryRunDB(t)

	f := &Filter{}
	var rows []row

	f.Eq("category_id", 1)
	one := f.Apply(db.Session(&gorm.Session{NewDB: true}).Table("products")).Find(&rows).Statement

	f.Eq("is_featured", true)
	two := f.Apply(db.Session(&gorm.Session{NewDB: true}).Table("products")).Find(&rows).Statement

	assert.Len(t, one.Vars, 1)
	assert.Len(t, two.Vars, 2)
	assert.Contains(t, two.SQL.String(), "category_id = ?")
	assert.Contains(t, two.SQL.String(), "is_featured = ?")
}

func TestEmptyFilterImposesNoConstraint(t *testing.T) {
	db := dryRunDB(t)

	f := &Filter{}
	var rows []row
	stmt := f.Apply(db.Table("products")).Find(&rows).Statement

	assert.NotContains(t, stmt.SQL.String(), "WHERE")
	assert.Empty(t, stmt.Vars)
}
