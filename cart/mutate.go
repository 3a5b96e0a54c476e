package cart

import (
	"ecommerce-server/models"
)

// Add returns a new cart with productID added at quantity 1. Adding a product
// that is already in the cart increments its quantity instead of appending a
// duplicate entry, keeping product ids unique per cart. The input slice is
// never mutated.
func Add(entries []models.CartEntry, productID string) []models.CartEntry {
	out := make([]models.CartEntry, 0, len(entries)+1)
	found := false
	for _, e := range entries {
		if e.ProductID == productID {
			e.Quantity++
			found = true
		}
		out = append(out, e)
	}
	if !found {
		out = append(out, models.CartEntry{ProductID: productID, Quantity: 1})
	}
	return out
}

// SetQuantity returns a new cart with the entry's quantity replaced,
// preserving entry order. Quantity zero removes the entry. A productID with
// no matching entry leaves the cart unchanged.
func SetQuantity(entries []models.CartEntry, productID string, quantity int) []models.CartEntry {
	if quantity == 0 {
		return Remove(entries, productID)
	}
	out := make([]models.CartEntry, len(entries))
	for i, e := range entries {
		if e.ProductID == productID {
			e.Quantity = quantity
		}
		out[i] = e
	}
	return out
}

// Remove returns a new cart without the entry for productID, preserving the
// order of the remaining entries.
func Remove(entries []models.CartEntry, productID string) []models.CartEntry {
	out := make([]models.CartEntry, 0, len(entries))
	for _, e := range entries {
		if e.ProductID != productID {
			out = append(out, e)
		}
	}
	return out
}
