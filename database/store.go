package database

import (
	"encoding/json"
	"fmt"

	"ecommerce-server/models"
)

const productColumns = `id, title, description, category, price, discount_percentage,
	rating, stock, brand, sku, availability_status, tags, images, thumbnail,
	created_at, updated_at`

// ListProducts returns the whole catalog, newest first. The storefront
// fetches it once per session and prices carts against it.
func (db *DB) ListProducts() ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Category, &p.Price,
			&p.DiscountPercentage, &p.Rating, &p.Stock, &p.Brand, &p.SKU,
			&p.AvailabilityStatus, &p.Tags, &p.Images, &p.Thumbnail,
			&p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// GetProduct fetches one catalog record. Returns sql.ErrNoRows when the id is
// unknown.
func (db *DB) GetProduct(id string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	var p models.Product
	err := db.QueryRow(query, id).Scan(
		&p.ID, &p.Title, &p.Description, &p.Category, &p.Price,
		&p.DiscountPercentage, &p.Rating, &p.Stock, &p.Brand, &p.SKU,
		&p.AvailabilityStatus, &p.Tags, &p.Images, &p.Thumbnail,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetUser fetches a user with their stored cart. Returns sql.ErrNoRows when
// the id is unknown so callers can branch on it.
func (db *DB) GetUser(id string) (*models.User, error) {
	query := `SELECT id, full_name, COALESCE(email, ''), cart, created_at
	          FROM users WHERE id = $1`

	var u models.User
	var rawCart []byte
	err := db.QueryRow(query, id).Scan(&u.ID, &u.FullName, &u.Email, &rawCart, &u.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(rawCart, &u.Cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart for user %s: %w", id, err)
	}
	return &u, nil
}

// CreateUser inserts a new user record. The cart starts as whatever the
// caller provides, normally empty.
func (db *DB) CreateUser(user *models.User) error {
	if user.Cart == nil {
		user.Cart = []models.CartEntry{}
	}
	rawCart, err := json.Marshal(user.Cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	query := `INSERT INTO users (id, full_name, email, cart)
	          VALUES ($1, $2, NULLIF($3, ''), $4)
	          RETURNING created_at`
	if err := db.QueryRow(query, user.ID, user.FullName, user.Email, rawCart).Scan(&user.CreatedAt); err != nil {
		return fmt.Errorf("failed to create user %s: %w", user.ID, err)
	}
	return nil
}

// ReplaceCart overwrites the user's entire cart array in one write. This is
// the only cart write path; there is no per-entry patch. Returns
// sql.ErrNoRows when the user id is unknown.
func (db *DB) ReplaceCart(id string, entries []models.CartEntry) (*models.User, error) {
	if entries == nil {
		entries = []models.CartEntry{}
	}
	rawCart, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cart: %w", err)
	}

	query := `UPDATE users SET cart = $2 WHERE id = $1
	          RETURNING id, full_name, COALESCE(email, ''), created_at`

	var u models.User
	if err := db.QueryRow(query, id, rawCart).Scan(&u.ID, &u.FullName, &u.Email, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.Cart = entries
	return &u, nil
}
