package catalog

import "github.com/fekuna/omnipos-catalog-service/internal/model"

const (
	DefaultPageSize = 12

	// pages shown on each side of the current page in Links
	linkRadius = 2
)

// PageLink is one entry of the pager. Gap entries stand for skipped pages
// and carry no number.
type PageLink struct {
	Number  int  `json:"number,omitempty"`
	Current bool `json:"current,omitempty"`
	Gap     bool `json:"gap,omitempty"`
}

// PaginationInfo is derived from the working set every time; nothing in it
// is stored.
type PaginationInfo struct {
	CurrentPage int        `json:"current_page"`
	TotalPages  int        `json:"total_pages"`
	HasPrevious bool       `json:"has_previous"`
	HasNext     bool       `json:"has_next"`
	StartItem   int        `json:"start_item"`
	EndItem     int        `json:"end_item"`
	TotalItems  int        `json:"total_items"`
	Links       []PageLink `json:"links,omitempty"`
}

// Page is what a renderer gets: the visible slice plus pager metadata.
type Page struct {
	Items      []model.Product `json:"items"`
	Pagination PaginationInfo  `json:"pagination"`
}

func (p Page) IsEmpty() bool {
	return p.Pagination.TotalItems == 0
}

// totalPages is ceil(count/size), never less than 1.
func totalPages(count, size int) int {
	if size < 1 {
		size = DefaultPageSize
	}
	pages := (count + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

func clampPage(page, total int) int {
	if page > total {
		page = total
	}
	if page < 1 {
		page = 1
	}
	return page
}

// paginate cuts page out of items. page must already be in range.
func paginate(items []model.Product, page, size int) Page {
	total := totalPages(len(items), size)
	page = clampPage(page, total)

	start := (page - 1) * size
	end := min(start+size, len(items))
	if start > end {
		start = end
	}

	visible := make([]model.Product, end-start)
	copy(visible, items[start:end])

	info := PaginationInfo{
		CurrentPage: page,
		TotalPages:  total,
		HasPrevious: page > 1,
		HasNext:     page < total,
		TotalItems:  len(items),
		Links:       pageLinks(page, total),
	}
	if end > start {
		info.StartItem = start + 1
		info.EndItem = end
	}

	return Page{Items: visible, Pagination: info}
}

// pageLinks builds the pager: current±2, the first and last page always
// present, and a gap wherever pages were skipped. A single page needs no pager.
func pageLinks(current, total int) []PageLink {
	if total <= 1 {
		return nil
	}

	from := max(1, current-linkRadius)
	to := min(total, current+linkRadius)

	var links []PageLink
	if from > 1 {
		links = append(links, PageLink{Number: 1})
		if from > 2 {
			links = append(links, PageLink{Gap: true})
		}
	}
	for i := from; i <= to; i++ {
		links = append(links, PageLink{Number: i, Current: i == current})
	}
	if to < total {
		if to < total-1 {
			links = append(links, PageLink{Gap: true})
		}
		links = append(links, PageLink{Number: total})
	}
	return links
}
