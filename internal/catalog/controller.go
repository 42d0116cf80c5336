package catalog

import (
	"slices"
	"strings"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// PriceRange is an inclusive sale-price range. Min > Max matches nothing.
type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

func (r PriceRange) Contains(d decimal.Decimal) bool {
	return d.GreaterThanOrEqual(r.Min) && d.LessThanOrEqual(r.Max)
}

// ViewState is one shopper's position in the catalog.
type ViewState struct {
	WorkingSet  []model.Product
	CurrentPage int
	PageSize    int
}

func (s ViewState) TotalPages() int {
	return totalPages(len(s.WorkingSet), s.PageSize)
}

// ViewSnapshot records the intents that produced a view, so the view can be
// rebuilt against the same catalog later.
type ViewSnapshot struct {
	Query    string      `json:"query,omitempty"`
	Price    *PriceRange `json:"price,omitempty"`
	Sorts    []SortKey   `json:"sorts,omitempty"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

// Renderer projects a page onto some presentation.
type Renderer interface {
	Render(page Page) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(page Page) error

func (f RendererFunc) Render(page Page) error {
	return f(page)
}

// Controller owns a ViewState. It is not safe for concurrent use; callers
// serialize access per shopper.
type Controller struct {
	catalog *Catalog
	state   ViewState

	// intents behind the current working set, kept for Snapshot
	query string
	price *PriceRange
	sorts []SortKey
}

// NewController starts a view over the full catalog. A pageSize below 1
// selects DefaultPageSize.
func NewController(c *Catalog, pageSize int) (*Controller, error) {
	if c == nil {
		return nil, ErrNilCatalog
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Controller{
		catalog: c,
		state: ViewState{
			WorkingSet:  c.Products(),
			CurrentPage: 1,
			PageSize:    pageSize,
		},
	}, nil
}

func (ctl *Controller) Catalog() *Catalog {
	return ctl.catalog
}

// State returns a copy of the current view state.
func (ctl *Controller) State() ViewState {
	s := ctl.state
	s.WorkingSet = slices.Clone(ctl.state.WorkingSet)
	return s
}

// Search replaces the working set with catalog products whose title or
// description contains query, ignoring case. A blank query selects the
// whole catalog.
func (ctl *Controller) Search(query string) {
	query = strings.TrimSpace(query)
	ctl.query, ctl.price, ctl.sorts = query, nil, nil

	if query == "" {
		ctl.replace(ctl.catalog.Products())
		return
	}
	ctl.replace(ctl.catalog.match(cases.Fold().String(query)))
}

// FilterByPriceRange replaces the working set with catalog products whose
// sale price lies in [lo, hi]. It always filters the full catalog.
func (ctl *Controller) FilterByPriceRange(lo, hi decimal.Decimal) {
	r := PriceRange{Min: lo, Max: hi}
	ctl.query, ctl.price, ctl.sorts = "", &r, nil

	if lo.GreaterThan(hi) {
		ctl.replace([]model.Product{})
		return
	}
	ctl.replace(ctl.catalog.inPriceRange(r))
}

// Sort reorders the current working set; membership does not change.
// SortUnsorted puts the full catalog back in catalog order. On a working
// set narrowed by search or price it keeps the current order.
func (ctl *Controller) Sort(key SortKey) {
	ctl.state.CurrentPage = 1

	if key == SortUnsorted {
		if len(ctl.state.WorkingSet) == ctl.catalog.Len() {
			sortProducts(ctl.state.WorkingSet, SortUnsorted, ctl.catalog)
			ctl.sorts = nil
		}
		return
	}

	sortProducts(ctl.state.WorkingSet, key, ctl.catalog)
	if n := len(ctl.sorts); n == 0 || ctl.sorts[n-1] != key {
		ctl.sorts = append(ctl.sorts, key)
	}
}

// ChangePage moves to page and reports whether it did. Pages outside
// [1, TotalPages] are ignored.
func (ctl *Controller) ChangePage(page int) bool {
	if page < 1 || page > ctl.state.TotalPages() {
		return false
	}
	ctl.state.CurrentPage = page
	return true
}

// SetPageSize changes the page size and returns to the first page.
// Sizes below 1 are ignored.
func (ctl *Controller) SetPageSize(size int) bool {
	if size < 1 {
		return false
	}
	ctl.state.PageSize = size
	ctl.state.CurrentPage = 1
	return true
}

// VisiblePage derives the current page without touching state.
func (ctl *Controller) VisiblePage() Page {
	return paginate(ctl.state.WorkingSet, ctl.state.CurrentPage, ctl.state.PageSize)
}

func (ctl *Controller) Render(r Renderer) error {
	return r.Render(ctl.VisiblePage())
}

func (ctl *Controller) Snapshot() ViewSnapshot {
	snap := ViewSnapshot{
		Query:    ctl.query,
		Sorts:    slices.Clone(ctl.sorts),
		Page:     ctl.state.CurrentPage,
		PageSize: ctl.state.PageSize,
	}
	if ctl.price != nil {
		r := *ctl.price
		snap.Price = &r
	}
	return snap
}

// Restore replays snap onto the controller. A page that no longer exists
// leaves the view on page 1.
func (ctl *Controller) Restore(snap ViewSnapshot) {
	switch {
	case snap.Price != nil:
		ctl.FilterByPriceRange(snap.Price.Min, snap.Price.Max)
	default:
		ctl.Search(snap.Query)
	}
	ctl.SetPageSize(snap.PageSize)
	for _, key := range snap.Sorts {
		ctl.Sort(key)
	}
	ctl.ChangePage(snap.Page)
}

// replace swaps the working set and returns to page 1.
func (ctl *Controller) replace(items []model.Product) {
	ctl.state.WorkingSet = items
	ctl.state.CurrentPage = 1
}
