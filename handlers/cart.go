package handlers

import (
	"database/sql"
	"net/http"

	"ecommerce-server/cart"
	"ecommerce-server/middlewares"

	"github.com/gin-gonic/gin"
)

// GetCart returns the authenticated user's cart reconciled against the
// catalog: priced line items plus order totals. Entries whose product has
// left the catalog are omitted from the view but stay in the stored cart.
func GetCart(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "User not found", "error": true})
		return
	}

	catalog, err := store.ListProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching products", "error": true})
		return
	}

	items := cart.Reconcile(user.Cart, catalog)
	totals := cart.ComputeTotals(items)

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"items":  items,
			"totals": totals,
		},
		"message": "Cart fetched successfully",
		"error":   false,
	})
}

// AddCartItem puts one unit of a product into the cart, merging with an
// existing entry for the same product. The stored cart only changes if the
// full-replace write succeeds.
func AddCartItem(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "User not found", "error": true})
		return
	}

	var req struct {
		ProductID string `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format", "error": true})
		return
	}

	if _, err := store.GetProduct(req.ProductID); err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found", "error": true})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching products", "error": true})
		return
	}

	updated, err := store.ReplaceCart(user.ID, cart.Add(user.Cart, req.ProductID))
	middlewares.RecordCartOperation("add", err == nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating user", "error": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    updated,
		"message": "Product added to cart successfully",
		"error":   false,
	})
}

// UpdateCartItem sets the quantity for one cart entry. Quantity zero removes
// the entry; an id with no matching entry leaves the cart as it was.
func UpdateCartItem(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "User not found", "error": true})
		return
	}

	productID := c.Param("productId")
	var req struct {
		Quantity *int `json:"quantity" binding:"required,min=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format", "error": true})
		return
	}

	updated, err := store.ReplaceCart(user.ID, cart.SetQuantity(user.Cart, productID, *req.Quantity))
	middlewares.RecordCartOperation("update", err == nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating user", "error": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    updated,
		"message": "Cart updated successfully",
		"error":   false,
	})
}

// RemoveCartItem deletes one entry from the cart, keeping the order of the
// remaining entries.
func RemoveCartItem(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "User not found", "error": true})
		return
	}

	productID := c.Param("productId")

	updated, err := store.ReplaceCart(user.ID, cart.Remove(user.Cart, productID))
	middlewares.RecordCartOperation("remove", err == nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating user", "error": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    updated,
		"message": "Product removed from cart successfully",
		"error":   false,
	})
}
