package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var ErrUnknownSortKey = errors.New("unknown sort key")

// SortKey selects how the working set is ordered.
type SortKey string

const (
	SortUnsorted  SortKey = ""
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortDiscount  SortKey = "discount"
	SortName      SortKey = "name"
)

var sortAliases = map[string]SortKey{
	"":                    SortUnsorted,
	"default":             SortUnsorted,
	"unsorted":            SortUnsorted,
	"price-low":           SortPriceLow,
	"price-ascending":     SortPriceLow,
	"price-high":          SortPriceHigh,
	"price-descending":    SortPriceHigh,
	"discount":            SortDiscount,
	"discount-descending": SortDiscount,
	"name":                SortName,
	"name-ascending":      SortName,
}

// ParseSortKey accepts the storefront's select values and their long names.
func ParseSortKey(s string) (SortKey, error) {
	key, ok := sortAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return SortUnsorted, fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
	}
	return key, nil
}

func (k SortKey) String() string {
	if k == SortUnsorted {
		return "unsorted"
	}
	return string(k)
}

// sortProducts orders items in place. All orderings are stable.
// SortUnsorted puts items back in catalog order.
func sortProducts(items []model.Product, key SortKey, c *Catalog) {
	switch key {
	case SortPriceLow:
		slices.SortStableFunc(items, func(a, b model.Product) int {
			return a.SalePrice.Cmp(b.SalePrice)
		})
	case SortPriceHigh:
		slices.SortStableFunc(items, func(a, b model.Product) int {
			return b.SalePrice.Cmp(a.SalePrice)
		})
	case SortDiscount:
		slices.SortStableFunc(items, func(a, b model.Product) int {
			return cmp.Compare(b.DiscountPercent(), a.DiscountPercent())
		})
	case SortName:
		// Collators keep scratch buffers, so one per call.
		col := collate.New(language.English)
		slices.SortStableFunc(items, func(a, b model.Product) int {
			return col.CompareString(a.Title, b.Title)
		})
	case SortUnsorted:
		slices.SortStableFunc(items, func(a, b model.Product) int {
			pa, _ := c.Position(a.ID)
			pb, _ := c.Position(b.ID)
			return cmp.Compare(pa, pb)
		})
	}
}
