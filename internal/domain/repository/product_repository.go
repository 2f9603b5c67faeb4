package repository

import (
	"context"

	"go-product-catalog/internal/domain/entity"
)

// CategoryAll is the sentinel filter value meaning "no category restriction".
const CategoryAll = "all"

// ProductFilter carries the optional listing criteria. Empty values mean
// "no restriction"; both filters combine with AND.
type ProductFilter struct {
	Category string
	Search   string
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindAll(ctx context.Context, filter ProductFilter) ([]entity.Product, error)
	Count(ctx context.Context) (int64, error)
}
