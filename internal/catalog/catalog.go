// Package catalog holds the storefront's browsing core: the immutable
// product collection and the per-shopper view-state controller that
// searches, filters, sorts and pages through it.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"golang.org/x/text/cases"
)

var (
	ErrNilCatalog         = errors.New("catalog: product collection is nil")
	ErrDuplicateProductID = errors.New("catalog: duplicate product id")
	ErrInvalidProductID   = errors.New("catalog: product id must be positive")
	ErrProductNotFound    = errors.New("product not found")
)

// ValidationError reports every bad identifier found while loading a catalog.
type ValidationError struct {
	DuplicateIDs []int64
	InvalidIDs   []int64
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.DuplicateIDs) > 0 {
		parts = append(parts, fmt.Sprintf("duplicate product ids %v", e.DuplicateIDs))
	}
	if len(e.InvalidIDs) > 0 {
		parts = append(parts, fmt.Sprintf("non-positive product ids %v", e.InvalidIDs))
	}
	return "catalog: invalid product data: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrDuplicateProductID:
		return len(e.DuplicateIDs) > 0
	case ErrInvalidProductID:
		return len(e.InvalidIDs) > 0
	}
	return false
}

// Catalog is the full, ordered product collection. It is safe for
// concurrent reads and never changes after New.
type Catalog struct {
	products []model.Product
	position map[int64]int

	// case-folded copies used by search
	titles       []string
	descriptions []string
}

// New validates products and builds a catalog in the given order.
// A nil slice is a configuration error; an empty one is a valid, empty catalog.
func New(products []model.Product) (*Catalog, error) {
	if products == nil {
		return nil, ErrNilCatalog
	}

	c := &Catalog{
		products:     slices.Clone(products),
		position:     make(map[int64]int, len(products)),
		titles:       make([]string, len(products)),
		descriptions: make([]string, len(products)),
	}

	var verr ValidationError
	fold := cases.Fold()
	for i, p := range c.products {
		if p.ID <= 0 {
			verr.InvalidIDs = append(verr.InvalidIDs, p.ID)
			continue
		}
		if _, dup := c.position[p.ID]; dup {
			if !slices.Contains(verr.DuplicateIDs, p.ID) {
				verr.DuplicateIDs = append(verr.DuplicateIDs, p.ID)
			}
			continue
		}
		c.position[p.ID] = i
		c.titles[i] = fold.String(p.Title)
		c.descriptions[i] = fold.String(p.Description)
	}
	if len(verr.DuplicateIDs) > 0 || len(verr.InvalidIDs) > 0 {
		return nil, &verr
	}

	return c, nil
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// Products returns a copy of the catalog in its original order.
func (c *Catalog) Products() []model.Product {
	return slices.Clone(c.products)
}

func (c *Catalog) Get(id int64) (model.Product, bool) {
	i, ok := c.position[id]
	if !ok {
		return model.Product{}, false
	}
	return c.products[i], true
}

// Position is the product's index in the original catalog order.
func (c *Catalog) Position(id int64) (int, bool) {
	i, ok := c.position[id]
	return i, ok
}

// Lookup resolves ids to products in the order given, skipping unknown ids.
func (c *Catalog) Lookup(ids []int64) []model.Product {
	out := make([]model.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := c.Get(id); ok {
			out = append(out, p)
		}
	}
	return out
}

// match returns the catalog subsequence whose title or description contains
// the already-folded needle.
func (c *Catalog) match(needle string) []model.Product {
	out := []model.Product{}
	for i, p := range c.products {
		if strings.Contains(c.titles[i], needle) || strings.Contains(c.descriptions[i], needle) {
			out = append(out, p)
		}
	}
	return out
}

// inPriceRange returns the catalog subsequence whose sale price lies in [r.Min, r.Max].
func (c *Catalog) inPriceRange(r PriceRange) []model.Product {
	out := []model.Product{}
	for _, p := range c.products {
		if r.Contains(p.SalePrice) {
			out = append(out, p)
		}
	}
	return out
}
