package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

// CreateProductRequest mirrors the JSON create payload. Fields are pointers
// so an omitted key is distinguishable from a zero value and reaches storage
// as NULL; the database decides which columns are required.
type CreateProductRequest struct {
	ExtID    *int64           `json:"ext_id"`
	Name     *string          `json:"name"`
	Category *string          `json:"category"`
	Price    *decimal.Decimal `json:"price"`
	Image    *string          `json:"image"`
	Stock    *int             `json:"stock"`
}

// Response DTOs

type ProductResponse struct {
	ID        int64     `json:"id"`
	ExtID     *int64    `json:"ext_id"`
	Name      string    `json:"name"`
	Category  *string   `json:"category"`
	Price     float64   `json:"price"`
	Image     *string   `json:"image"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
}
