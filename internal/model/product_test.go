package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		name     string
		original string
		sale     string
		want     int64
	}{
		{"rounds up", "15.99", "4.99", 69},
		{"rounds down", "10.99", "4.99", 55},
		{"half rounds away from zero", "10", "9.95", 1},
		{"no discount", "4.99", "4.99", 0},
		{"zero original", "0", "0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{OriginalPrice: price(tt.original), SalePrice: price(tt.sale)}
			assert.Equal(t, tt.want, p.DiscountPercent())
		})
	}
}

func TestSavingsAndFormat(t *testing.T) {
	p := Product{OriginalPrice: price("14.99"), SalePrice: price("4.99")}

	assert.True(t, p.Savings().Equal(price("10")))
	assert.Equal(t, "$10.00", FormatPrice(p.Savings()))
	assert.Equal(t, "$4.99", FormatPrice(p.SalePrice))
}

func TestCartAdd(t *testing.T) {
	bear := Product{ID: 21, SalePrice: price("4.99")}
	gnome := Product{ID: 40, SalePrice: price("3.50")}

	var c Cart
	c.Add(bear)
	c.Add(gnome)
	c.Add(bear)

	assert.Len(t, c.Items, 2)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, 3, c.Count())
	assert.Equal(t, "13.48", c.Total().StringFixed(2))
}
