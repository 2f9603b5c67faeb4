package repository

import (
	"context"
	"strings"

	"go-product-catalog/internal/domain/entity"
	domainRepo "go-product-catalog/internal/domain/repository"

	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// FindAll returns products matching the filter in ascending id order. Each
// filter contributes one bound-parameter predicate; values never reach the
// query text.
func (r *productRepository) FindAll(ctx context.Context, filter domainRepo.ProductFilter) ([]entity.Product, error) {
	query := r.db.WithContext(ctx).Model(&entity.Product{})

	if filter.Category != "" && filter.Category != domainRepo.CategoryAll {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	var products []entity.Product
	if err := query.Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Product{}).Count(&total).Error
	return total, err
}
