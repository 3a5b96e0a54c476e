package handlers

import (
	"ecommerce-server/models"
)

// Store is the persistence surface the handlers depend on. *database.DB
// satisfies it; tests plug in a fake.
type Store interface {
	ListProducts() ([]models.Product, error)
	GetProduct(id string) (*models.Product, error)
	GetUser(id string) (*models.User, error)
	CreateUser(user *models.User) error
	ReplaceCart(id string, entries []models.CartEntry) (*models.User, error)
}

var store Store

// InitializeHandlers wires the handler package to its storage backend.
func InitializeHandlers(s Store) {
	store = s
}
