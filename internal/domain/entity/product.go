package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the single catalog entity. Nullable columns are pointers so an
// absent request field is stored as NULL and required columns are enforced by
// the database, not by application checks.
type Product struct {
	ID        int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	ExtID     *int64           `gorm:"column:ext_id" json:"ext_id"`
	Name      *string          `gorm:"type:text;not null" json:"name"`
	Category  *string          `gorm:"type:text" json:"category"`
	Price     *decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Image     *string          `gorm:"type:text" json:"image"`
	Stock     int              `gorm:"default:0" json:"stock"`
	CreatedAt time.Time        `gorm:"autoCreateTime" json:"created_at"`
}

func (Product) TableName() string {
	return "products"
}
