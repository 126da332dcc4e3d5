package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageCount(t *testing.T) {
	testCases := []struct {
		name     string
		total    int
		perPage  int
		expected int
	}{
		{name: "empty collection still has one page", total: 0, perPage: 10, expected: 1},
		{name: "exact multiple", total: 100, perPage: 10, expected: 10},
		{name: "partial last page", total: 101, perPage: 10, expected: 11},
		{name: "fewer items than a page", total: 3, perPage: 10, expected: 1},
		{name: "single item pages", total: 7, perPage: 1, expected: 7},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, PageCount(tc.total, tc.perPage))
		})
	}
}

func TestTokens(t *testing.T) {
	testCases := []struct {
		name       string
		current    int
		totalPages int
		expected   []Token
	}{
		{
			name:       "single page renders nothing",
			current:    1,
			totalPages: 1,
			expected:   nil,
		},
		{
			name:       "five pages or fewer list every page",
			current:    2,
			totalPages: 5,
			expected:   []Token{1, 2, 3, 4, 5},
		},
		{
			name:       "near the start",
			current:    1,
			totalPages: 10,
			expected:   []Token{1, 2, 3, 4, Ellipsis, 10},
		},
		{
			name:       "page three still counts as the start",
			current:    3,
			totalPages: 10,
			expected:   []Token{1, 2, 3, 4, Ellipsis, 10},
		},
		{
			name:       "near the end",
			current:    9,
			totalPages: 10,
			expected:   []Token{1, Ellipsis, 7, 8, 9, 10},
		},
		{
			name:       "in the middle",
			current:    5,
			totalPages: 10,
			expected:   []Token{1, Ellipsis, 4, 5, 6, Ellipsis, 10},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Tokens(tc.current, tc.totalPages))
		})
	}
}

func TestSlice(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g"}

	assert.Equal(t, []string{"a", "b", "c"}, Slice(items, 1, 3))
	assert.Equal(t, []string{"d", "e", "f"}, Slice(items, 2, 3))
	assert.Equal(t, []string{"g"}, Slice(items, 3, 3))
	assert.Empty(t, Slice(items, 4, 3))
	assert.Empty(t, Slice([]string{}, 1, 3))
}

func TestRange(t *testing.T) {
	start, end := Range(1, 10, 25)
	assert.Equal(t, 1, start)
	assert.Equal(t, 10, end)

	start, end = Range(3, 10, 25)
	assert.Equal(t, 21, start)
	assert.Equal(t, 25, end)

	start, end = Range(1, 10, 0)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestClamp(t *testing.T) {
	page, size := Clamp(0, 0, 10, 100)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, size)

	page, size = Clamp(2, 500, 10, 100)
	assert.Equal(t, 2, page)
	assert.Equal(t, 100, size)
}
