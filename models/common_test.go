package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginationMeta(t *testing.T) {
	cases := []struct {
		name           string
		page, limit    int
		total          int64
		wantTotalPages int
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{"empty result set has zero pages", 1, 20, 0, 0, false, false},
		{"exact division", 1, 10, 20, 2, true, false},
		{"partial last page rounds up", 1, 10, 21, 3, true, false},
		{"single item", 1, 20, 1, 1, false, false},
		{"last page has previous only", 3, 10, 21, 3, false, true},
		{"middle page has both", 2, 10, 30, 3, true, true},
		{"zero limit yields zero pages instead of dividing", 1, 0, 50, 0, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meta := NewPaginationMeta(tc.page, tc.limit, tc.total)
			assert.Equal(t, tc.wantTotalPages, meta.TotalPages)
			assert.Equal(t, tc.wantHasNext, meta.HasNext)
			assert.Equal(t, tc.wantHasPrev, meta.HasPrevious)
			assert.Equal(t, tc.page, meta.CurrentPage)
			assert.Equal(t, tc.limit, meta.PerPage)
			assert.Equal(t, tc.total, meta.Total)
		})
	}
}
