package model

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Product is a crochet pattern listed in the storefront. Products are
// read-only once loaded.
type Product struct {
	ID            int64           `db:"id" json:"id"`
	Title         string          `db:"title" json:"title"`
	ImageURL      string          `db:"image_url" json:"image_url"`
	Description   string          `db:"description" json:"description"`
	OriginalPrice decimal.Decimal `db:"original_price" json:"original_price"`
	SalePrice     decimal.Decimal `db:"sale_price" json:"sale_price"`
	PurchaseLink  string          `db:"purchase_link" json:"purchase_link"`
}

// DiscountPercent is round(100 * (original - sale) / original). It is
// computed on every call so it can never go stale against the prices.
func (p Product) DiscountPercent() int64 {
	if !p.OriginalPrice.IsPositive() {
		return 0
	}
	return p.OriginalPrice.Sub(p.SalePrice).
		Mul(hundred).
		Div(p.OriginalPrice).
		Round(0).
		IntPart()
}

func (p Product) Savings() decimal.Decimal {
	return p.OriginalPrice.Sub(p.SalePrice)
}

// FormatPrice renders an amount as dollars with two decimals, e.g. $4.99.
func FormatPrice(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
