package memory

import "strings"

// FilterAll is the sentinel categorical filters use to match every record.
const FilterAll = "all"

// matchCategory reports whether a categorical filter accepts the value.
// Empty filters and the "all" sentinel pass everything through.
func matchCategory(filter, value string) bool {
	return filter == "" || filter == FilterAll || filter == value
}

// matchSearch reports whether any of the fields contains the query as a
// case-insensitive substring. An empty query matches every record.
func matchSearch(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
