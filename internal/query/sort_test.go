package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderClause(t *testing.T) {
	cases := []struct {
		name      string
		sortBy    string
		sortOrder string
		want      string
	}{
		{"name ascending", "name", "asc", "name asc"},
		{"name descending", "name", "desc", "name desc"},
		{"createdAt maps to snake case", "createdAt", "desc", "created_at desc"},
		{"viewCount maps to snake case", "viewCount", "asc", "view_count asc"},
		{"rating", "rating", "desc", "rating desc"},
		{"unknown sort key falls back", "price; DROP TABLE products", "asc", "created_at asc"},
		{"unknown direction falls back to desc", "name", "sideways", "name desc"},
		{"empty inputs fall back entirely", "", "", "created_at desc"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := OrderClause(tc.sortBy, tc.sortOrder, ProductSortColumns, "created_at")
			assert.Equal(t, tc.want, got)
		})
	}
}
