package query

// MaxLimit caps the page size so a single request cannot drag the whole
// table through one query.
const MaxLimit = 100

// Pagination holds normalized page bounds.
type Pagination struct {
	Page   int
	Limit  int
	Offset int
}

// NormalizePagination clamps page and limit so the resulting offset is
// never negative and the limit stays within [1, MaxLimit]. A limit of
// zero or less takes the route default.
func NormalizePagination(page, limit, defaultLimit int) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}
