package repotypes

const (
	SortByTimestamp = "timestamp"
	SortBySeverity  = "severity"
	SortBySource    = "source"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"

	DefaultSortBy    = SortByTimestamp
	DefaultSortOrder = SortOrderDesc
)

var (
	sortFields = map[string]struct{}{
		SortByTimestamp: {},
		SortBySeverity:  {},
		SortBySource:    {},
	}
	sortOrders = map[string]struct{}{
		SortOrderAsc:  {},
		SortOrderDesc: {},
	}
)

// Pagination carries limit/offset and the sort directive of a listing.
// Limit and Offset bounds are checked by the request validators.
type Pagination struct {
	Limit     int
	Offset    int
	SortBy    string
	SortOrder string
}

// Normalize replaces sort values outside the allow-lists with the defaults.
// Rows with equal sort keys come back in storage order, which is not stable.
func (p Pagination) Normalize() Pagination {
	if _, ok := sortFields[p.SortBy]; !ok {
		p.SortBy = DefaultSortBy
	}
	if _, ok := sortOrders[p.SortOrder]; !ok {
		p.SortOrder = DefaultSortOrder
	}
	return p
}

// TotalPages is ceil(total / limit). limit must be positive.
func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
