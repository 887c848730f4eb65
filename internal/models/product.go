package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a read-only projection of one row of the Products table.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Supplier    string          `json:"supplier"`
	CreatedDate time.Time       `json:"created_date"`
}
