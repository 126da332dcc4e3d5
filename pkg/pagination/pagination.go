// Package pagination implements client-style page slicing and the compact
// page-number display sequence used by every list endpoint.
package pagination

// Ellipsis is the placeholder token emitted between collapsed page runs.
const Ellipsis = 0

// Token is a single entry in the compact pagination control. A zero page
// number means the token is an ellipsis placeholder.
type Token int

func (t Token) IsEllipsis() bool {
	return t == Ellipsis
}

// PageCount returns the number of pages needed for totalItems at perPage
// items each. An empty collection still has one page.
func PageCount(totalItems, perPage int) int {
	if perPage < 1 {
		perPage = 1
	}
	if totalItems <= 0 {
		return 1
	}
	pages := totalItems / perPage
	if totalItems%perPage > 0 {
		pages++
	}
	return pages
}

// Slice returns the items belonging to the given 1-based page. Pages outside
// the collection yield an empty slice rather than an error.
func Slice[T any](items []T, page, perPage int) []T {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Range returns the 1-based first and last item numbers shown on the given
// page, for the "showing X to Y of Z" line. Both are 0 when the collection
// is empty.
func Range(page, perPage, totalItems int) (int, int) {
	if totalItems <= 0 {
		return 0, 0
	}
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	start := (page-1)*perPage + 1
	end := page * perPage
	if end > totalItems {
		end = totalItems
	}
	if start > totalItems {
		return 0, 0
	}
	return start, end
}

// Tokens produces the compact page-number sequence for the pagination
// control. With five pages or fewer every page is listed; otherwise runs far
// from the current page collapse into an ellipsis. A single page renders no
// control at all, so the token list is empty.
func Tokens(current, totalPages int) []Token {
	if totalPages <= 1 {
		return nil
	}

	const maxVisible = 5

	if totalPages <= maxVisible {
		tokens := make([]Token, 0, totalPages)
		for i := 1; i <= totalPages; i++ {
			tokens = append(tokens, Token(i))
		}
		return tokens
	}

	switch {
	case current <= 3:
		return []Token{1, 2, 3, 4, Ellipsis, Token(totalPages)}
	case current >= totalPages-2:
		return []Token{
			1, Ellipsis,
			Token(totalPages - 3), Token(totalPages - 2),
			Token(totalPages - 1), Token(totalPages),
		}
	default:
		return []Token{
			1, Ellipsis,
			Token(current - 1), Token(current), Token(current + 1),
			Ellipsis, Token(totalPages),
		}
	}
}

// Clamp normalises a requested page and page size the way list services
// expect: page at least 1, size defaulted and capped.
func Clamp(page, pageSize, defaultSize, maxSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultSize
	}
	if pageSize > maxSize {
		pageSize = maxSize
	}
	return page, pageSize
}
