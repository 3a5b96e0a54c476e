package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ecommerce-server/models"
)

func lineItem(price, discount float64, quantity int) LineItem {
	p := models.Product{ID: "p", Price: price, DiscountPercentage: discount}
	return LineItem{Product: p, Quantity: quantity, FinalPrice: finalPrice(p)}
}

func TestComputeTotals_EmptyCart(t *testing.T) {
	// Scenario A: zero subtotal falls below the free-shipping threshold, so
	// the flat rate still applies. No special-casing to all zeros.
	totals := ComputeTotals([]LineItem{})

	assert.InDelta(t, 0, totals.Subtotal, 1e-9)
	assert.InDelta(t, 9.99, totals.Shipping, 1e-9)
	assert.InDelta(t, 0, totals.Tax, 1e-9)
	assert.InDelta(t, 9.99, totals.Total, 1e-9)
	assert.Equal(t, 0, totals.TotalItems)
	assert.InDelta(t, 0, totals.TotalSavings, 1e-9)
}

func TestComputeTotals_SingleDiscountedItem(t *testing.T) {
	// Scenario B: price 100 at 20% off, quantity 2.
	totals := ComputeTotals([]LineItem{lineItem(100, 20, 2)})

	assert.InDelta(t, 160, totals.Subtotal, 1e-9)
	assert.InDelta(t, 0, totals.Shipping, 1e-9)
	assert.InDelta(t, 12.8, totals.Tax, 1e-9)
	assert.InDelta(t, 172.8, totals.Total, 1e-9)
	assert.Equal(t, 2, totals.TotalItems)
	assert.InDelta(t, 40, totals.TotalSavings, 1e-9)
}

func TestComputeTotals_ShippingThreshold(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		shipping float64
	}{
		{"below threshold", 99.99, 9.99},
		{"exactly 100 still pays shipping", 100, 9.99},
		{"just above threshold is free", 100.01, 0},
		{"far above threshold is free", 500, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			totals := ComputeTotals([]LineItem{lineItem(tc.subtotal, 0, 1)})
			assert.InDelta(t, tc.subtotal, totals.Subtotal, 1e-9)
			assert.InDelta(t, tc.shipping, totals.Shipping, 1e-9)
		})
	}
}

func TestComputeTotals_TaxOnDiscountedSubtotalOnly(t *testing.T) {
	// Tax tracks the discounted subtotal and ignores shipping.
	totals := ComputeTotals([]LineItem{lineItem(50, 10, 1)})

	assert.InDelta(t, 45, totals.Subtotal, 1e-9)
	assert.InDelta(t, 45*0.08, totals.Tax, 1e-9)
	assert.InDelta(t, 45+9.99+45*0.08, totals.Total, 1e-9)
	assert.InDelta(t, 5, totals.TotalSavings, 1e-9)
}

func TestComputeTotals_MixedCart(t *testing.T) {
	items := []LineItem{
		lineItem(100, 20, 2), // 160 subtotal, 40 saved
		lineItem(25, 0, 3),   // 75 subtotal, nothing saved
	}

	totals := ComputeTotals(items)

	assert.InDelta(t, 235, totals.Subtotal, 1e-9)
	assert.InDelta(t, 0, totals.Shipping, 1e-9)
	assert.InDelta(t, 235*0.08, totals.Tax, 1e-9)
	assert.InDelta(t, 235+235*0.08, totals.Total, 1e-9)
	assert.Equal(t, 5, totals.TotalItems)
	assert.InDelta(t, 40, totals.TotalSavings, 1e-9)
}

func TestComputeTotals_SubtotalMatchesSumExactly(t *testing.T) {
	items := []LineItem{
		lineItem(19.99, 12.5, 3),
		lineItem(0.01, 0, 7),
		lineItem(1234.56, 33, 1),
	}

	want := 0.0
	for _, item := range items {
		want += item.FinalPrice * float64(item.Quantity)
	}

	totals := ComputeTotals(items)
	assert.InDelta(t, want, totals.Subtotal, 1e-9)
}
