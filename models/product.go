package models

import (
	"time"

	"github.com/lib/pq"
)

// Product is a catalog record. JSON field names follow the storefront's wire
// contract (camelCase, Mongo-style _id), so the existing frontend keeps
// working against this server unchanged.
type Product struct {
	ID                 string         `json:"_id" db:"id"`
	Title              string         `json:"title" db:"title"`
	Description        string         `json:"description" db:"description"`
	Category           string         `json:"category" db:"category"`
	Price              float64        `json:"price" db:"price"`
	DiscountPercentage float64        `json:"discountPercentage" db:"discount_percentage"`
	Rating             float64        `json:"rating" db:"rating"`
	Stock              int            `json:"stock" db:"stock"`
	Brand              string         `json:"brand" db:"brand"`
	SKU                string         `json:"sku" db:"sku"`
	AvailabilityStatus string         `json:"availabilityStatus" db:"availability_status"`
	Tags               pq.StringArray `json:"tags" db:"tags"`
	Images             pq.StringArray `json:"images" db:"images"`
	Thumbnail          string         `json:"thumbnail" db:"thumbnail"`
	CreatedAt          time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time      `json:"updatedAt" db:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

func (Product) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
		discount_percentage NUMERIC(5,2) NOT NULL DEFAULT 0,
		rating NUMERIC(3,2) NOT NULL DEFAULT 0,
		stock INT NOT NULL DEFAULT 0,
		brand TEXT NOT NULL DEFAULT '',
		sku TEXT NOT NULL DEFAULT '',
		availability_status TEXT NOT NULL DEFAULT 'In Stock',
		tags TEXT[] NOT NULL DEFAULT '{}',
		images TEXT[] NOT NULL DEFAULT '{}',
		thumbnail TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);`
}
