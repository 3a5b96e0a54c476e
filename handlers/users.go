package handlers

import (
	"database/sql"
	"net/http"

	"ecommerce-server/models"

	"github.com/gin-gonic/gin"
)

// GetOrCreateUser bootstraps the account record after the identity provider
// completes sign-in: returns the stored user, creating it with an empty cart
// when the id has not been seen before.
func GetOrCreateUser(c *gin.Context) {
	var req struct {
		ID       string `json:"id" binding:"required"`
		FullName string `json:"full_name"`
		Email    string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format", "error": true})
		return
	}
	if req.ID != c.GetString("user_id") {
		c.JSON(http.StatusForbidden, gin.H{"message": "Token does not match user", "error": true})
		return
	}

	user, err := store.GetUser(req.ID)
	if err == sql.ErrNoRows {
		user = &models.User{
			ID:       req.ID,
			FullName: req.FullName,
			Email:    req.Email,
			Cart:     []models.CartEntry{},
		}
		if err := store.CreateUser(user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching user", "error": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"data":    user,
			"message": "User added successfully",
			"error":   false,
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching user", "error": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    user,
		"message": "User fetched successfully",
		"error":   false,
	})
}

// UpdateUserCart replaces the user's whole cart array. Every client mutation
// ships the full target cart; there is no per-entry patch, so the last write
// wins.
func UpdateUserCart(c *gin.Context) {
	var req struct {
		ID   string             `json:"id" binding:"required"`
		Cart []models.CartEntry `json:"cart" binding:"dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format", "error": true})
		return
	}
	if req.ID != c.GetString("user_id") {
		c.JSON(http.StatusForbidden, gin.H{"message": "Token does not match user", "error": true})
		return
	}

	user, err := store.ReplaceCart(req.ID, req.Cart)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found", "error": true})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating user", "error": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    user,
		"message": "User updated successfully",
		"error":   false,
	})
}
