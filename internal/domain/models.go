package domain

import "time"

// Product is one item bought for resale. SalePrice and SaleDate stay nil
// until the item is sold.
type Product struct {
	ID             int64    `db:"id"`
	Type           string   `db:"type"`
	Brand          string   `db:"brand"`
	Size           string   `db:"size"`
	Color          string   `db:"color"`
	Condition      string   `db:"condition"` // free text, e.g. "very good"
	Description    string   `db:"description"`
	PurchasePrice  float64  `db:"purchase_price"`
	PurchaseDate   string   `db:"purchase_date"` // YYYY-MM-DD or empty
	EstimatedValue float64  `db:"estimated_value"`
	SalePrice      *float64 `db:"sale_price"`
	SaleDate       *string  `db:"sale_date"`
}

// InStock reports whether the product has no sale price yet.
func (p Product) InStock() bool { return p.SalePrice == nil }

// Sold requires both sale fields; a product with only one of them set is
// neither in stock nor sold.
func (p Product) Sold() bool { return p.SalePrice != nil && p.SaleDate != nil }

// NewProduct carries the fields supplied when an item is first recorded.
type NewProduct struct {
	Type           string
	Brand          string
	Size           string
	Color          string
	Condition      string
	Description    string
	PurchasePrice  float64
	PurchaseDate   time.Time // zero means unknown
	EstimatedValue float64
}

// Metrics is a revenue / gross profit / net profit triple.
type Metrics struct {
	Revenue     float64
	GrossProfit float64
	NetProfit   float64
}
