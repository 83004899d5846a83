package query

// ProductSortColumns whitelists the sortBy values the product listing
// accepts, mapped to their database columns.
var ProductSortColumns = map[string]string{
	"name":      "name",
	"createdAt": "created_at",
	"rating":    "rating",
	"viewCount": "view_count",
}

// OrderClause resolves a sortBy/sortOrder pair against a column whitelist.
// Unrecognized sort keys fall back to the given column, unrecognized
// directions fall back to descending.
func OrderClause(sortBy, sortOrder string, columns map[string]string, fallback string) string {
	column, ok := columns[sortBy]
	if !ok {
		column = fallback
	}
	direction := "desc"
	if sortOrder == "asc" {
		direction = "asc"
	}
	return column + " " + direction
}
