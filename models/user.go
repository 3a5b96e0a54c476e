package models

import (
	"time"
)

// CartEntry is one (product, quantity) pair in a user's stored cart. At most
// one entry exists per product id.
type CartEntry struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// User is a storefront account. The id comes from the external identity
// provider, not from this server. The cart is the only mutable field and is
// always written as a whole array (full-replace update).
type User struct {
	ID        string      `json:"_id" db:"id"`
	FullName  string      `json:"full_name" db:"full_name"`
	Email     string      `json:"email" db:"email"`
	Cart      []CartEntry `json:"cart" db:"cart"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
}

func (User) TableName() string {
	return "users"
}

func (User) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		full_name TEXT NOT NULL DEFAULT '',
		email TEXT UNIQUE,
		cart JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);`
}
