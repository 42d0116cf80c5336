package dto

import (
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/shopspring/decimal"
)

// ProductDetail is what the detail modal shows.
type ProductDetail struct {
	Product         model.Product
	DiscountPercent int64
	Savings         decimal.Decimal
}

type CartLine struct {
	Product   model.Product
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

type CartView struct {
	Lines []CartLine
	Count int
	Total decimal.Decimal

	// Added is set by AddToCart to the product that was just added.
	Added *model.Product
}
