package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, totalPages(0, 12))
	assert.Equal(t, 1, totalPages(12, 12))
	assert.Equal(t, 2, totalPages(13, 12))
	assert.Equal(t, 5, totalPages(59, 12))
	assert.Equal(t, 1, totalPages(5, 0))
}

func TestPaginateClampsLastPage(t *testing.T) {
	page := paginate(numbered(59), 5, 12)

	assert.Len(t, page.Items, 11)
	assert.Equal(t, 49, page.Pagination.StartItem)
	assert.Equal(t, 59, page.Pagination.EndItem)

	page = paginate(numbered(5), 7, 12)
	assert.Equal(t, 1, page.Pagination.CurrentPage)
	assert.Len(t, page.Items, 5)
}

func link(n int) PageLink { return PageLink{Number: n} }

var gap = PageLink{Gap: true}

func TestPageLinks(t *testing.T) {
	current := func(n int) PageLink { return PageLink{Number: n, Current: true} }

	tests := []struct {
		name    string
		current int
		total   int
		want    []PageLink
	}{
		{"single page", 1, 1, nil},
		{"first of many", 1, 10, []PageLink{current(1), link(2), link(3), gap, link(10)}},
		{"middle", 5, 10, []PageLink{link(1), gap, link(3), link(4), current(5), link(6), link(7), gap, link(10)}},
		{"adjacent to first", 4, 10, []PageLink{link(1), link(2), link(3), current(4), link(5), link(6), gap, link(10)}},
		{"last", 10, 10, []PageLink{link(1), gap, link(8), link(9), current(10)}},
		{"near last", 8, 10, []PageLink{link(1), gap, link(6), link(7), current(8), link(9), link(10)}},
		{"small", 2, 3, []PageLink{link(1), current(2), link(3)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pageLinks(tt.current, tt.total))
		})
	}
}
