package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetProducts returns the whole catalog. No pagination; the storefront pulls
// the list once per session.
func GetProducts(c *gin.Context) {
	products, err := store.ListProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error fetching products",
			"error":   true,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"message":  "Products fetched successfully",
		"error":    false,
	})
}
