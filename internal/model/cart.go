package model

import "github.com/shopspring/decimal"

type CartItem struct {
	ProductID int64           `json:"id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"price"`
}

// Cart is the shopper's local cart. There is no checkout; it only counts.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Add bumps the quantity of p, or appends it at its current sale price.
func (c *Cart) Add(p Product) {
	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, CartItem{
		ProductID: p.ID,
		Quantity:  1,
		UnitPrice: p.SalePrice,
	})
}

func (c Cart) Count() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
