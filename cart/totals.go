package cart

// Pricing rules applied at checkout. Shipping is free strictly above the
// threshold; tax applies to the discounted subtotal only, never to shipping.
const (
	FreeShippingThreshold = 100.0
	FlatShippingRate      = 9.99
	TaxRate               = 0.08
)

// Totals is the order summary derived from a reconciled line-item list.
type Totals struct {
	Subtotal     float64 `json:"subtotal"`
	Shipping     float64 `json:"shipping"`
	Tax          float64 `json:"tax"`
	Total        float64 `json:"total"`
	TotalItems   int     `json:"totalItems"`
	TotalSavings float64 `json:"totalSavings"`
}

// ComputeTotals reduces line items into order totals. There is no empty-cart
// special case: a zero subtotal sits below the free-shipping threshold, so an
// empty cart still carries the flat shipping rate. Values keep full float64
// precision; rounding to cents happens at presentation time.
func ComputeTotals(items []LineItem) Totals {
	var t Totals
	for _, item := range items {
		qty := float64(item.Quantity)
		t.Subtotal += item.FinalPrice * qty
		t.TotalItems += item.Quantity
		if item.DiscountPercentage > 0 {
			t.TotalSavings += (item.Price - item.FinalPrice) * qty
		}
	}

	t.Shipping = FlatShippingRate
	if t.Subtotal > FreeShippingThreshold {
		t.Shipping = 0
	}
	t.Tax = t.Subtotal * TaxRate
	t.Total = t.Subtotal + t.Shipping + t.Tax
	return t
}
