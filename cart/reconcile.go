// Package cart implements the storefront's derived cart state: reconciling
// stored cart entries against the product catalog, pricing line items, and
// reducing them into order totals. Everything here is a pure function over
// its arguments; persistence stays in the handlers and database packages.
package cart

import (
	"ecommerce-server/models"
)

// LineItem is a cart entry resolved against the catalog. The embedded product
// fields are serialized inline, with the quantity and discounted unit price
// alongside, matching what the storefront renders per cart row.
type LineItem struct {
	models.Product
	Quantity   int     `json:"quantity"`
	FinalPrice float64 `json:"finalPrice"`
}

// finalPrice applies the product's discount to its list price. A discount can
// only lower the price.
func finalPrice(p models.Product) float64 {
	if p.DiscountPercentage > 0 {
		return p.Price * (1 - p.DiscountPercentage/100)
	}
	return p.Price
}

// Reconcile joins cart entries against the catalog and prices each match.
// Entries whose product is missing from the catalog are dropped from the
// result; the stored cart itself is never modified by this. A nil or empty
// cart, or a catalog that has not loaded yet, yields an empty list rather
// than an error.
func Reconcile(entries []models.CartEntry, catalog []models.Product) []LineItem {
	items := []LineItem{}
	if len(entries) == 0 || len(catalog) == 0 {
		return items
	}

	byID := make(map[string]models.Product, len(catalog))
	for _, p := range catalog {
		if _, ok := byID[p.ID]; !ok {
			// first occurrence wins on duplicate catalog ids
			byID[p.ID] = p
		}
	}

	for _, e := range entries {
		p, ok := byID[e.ProductID]
		if !ok {
			continue
		}
		items = append(items, LineItem{
			Product:    p,
			Quantity:   e.Quantity,
			FinalPrice: finalPrice(p),
		})
	}
	return items
}
