package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePagination(t *testing.T) {
	cases := []struct {
		name       string
		page       int
		limit      int
		defLimit   int
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults pass through", 1, 20, 20, 1, 20, 0},
		{"second page", 2, 20, 20, 2, 20, 20},
		{"zero page clamps to one", 0, 10, 10, 1, 10, 0},
		{"negative page clamps to one", -5, 10, 10, 1, 10, 0},
		{"zero limit takes default", 3, 0, 10, 3, 10, 20},
		{"negative limit takes default", 1, -1, 20, 1, 20, 0},
		{"oversized limit caps at MaxLimit", 1, 5000, 20, 1, MaxLimit, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pg := NormalizePagination(tc.page, tc.limit, tc.defLimit)
			assert.Equal(t, tc.wantPage, pg.Page)
			assert.Equal(t, tc.wantLimit, pg.Limit)
			assert.Equal(t, tc.wantOffset, pg.Offset)
		})
	}
}

// offset = (page-1)*limit for every normalized combination, and the
// offset is never negative regardless of input.
func TestNormalizePaginationOffsetProperty(t *testing.T) {
	for page := -3; page <= 6; page++ {
		for limit := -2; limit <= 30; limit += 7 {
			pg := NormalizePagination(page, limit, 10)
			assert.GreaterOrEqual(t, pg.Offset, 0)
			assert.Equal(t, (pg.Page-1)*pg.Limit, pg.Offset)
			assert.GreaterOrEqual(t, pg.Limit, 1)
			assert.LessOrEqual(t, pg.Limit, MaxLimit)
		}
	}
}
