package converter

import (
	"go-product-catalog/internal/delivery/dto"
	"go-product-catalog/internal/domain/entity"
)

// ProductToResponse converts a Product entity to its response DTO. The exact
// decimal price becomes a float64 at this boundary only.
func ProductToResponse(product *entity.Product) *dto.ProductResponse {
	if product == nil {
		return nil
	}

	response := &dto.ProductResponse{
		ID:        product.ID,
		ExtID:     product.ExtID,
		Category:  product.Category,
		Image:     product.Image,
		Stock:     product.Stock,
		CreatedAt: product.CreatedAt,
	}
	if product.Name != nil {
		response.Name = *product.Name
	}
	if product.Price != nil {
		response.Price = product.Price.InexactFloat64()
	}

	return response
}
