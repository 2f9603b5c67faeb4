package usecase

import (
	"context"
	"errors"

	"go-product-catalog/internal/converter"
	"go-product-catalog/internal/delivery/dto"
	"go-product-catalog/internal/domain/entity"
	"go-product-catalog/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrFetchFailed  = errors.New("failed to fetch products")
	ErrCreateFailed = errors.New("failed to create product")
)

type ProductUsecase interface {
	List(ctx context.Context, filter repository.ProductFilter) ([]dto.ProductResponse, error)
	Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
}

type productUsecase struct {
	log         *logrus.Logger
	productRepo repository.ProductRepository
}

func NewProductUsecase(log *logrus.Logger, productRepo repository.ProductRepository) ProductUsecase {
	return &productUsecase{
		log:         log,
		productRepo: productRepo,
	}
}

func (u *productUsecase) List(ctx context.Context, filter repository.ProductFilter) ([]dto.ProductResponse, error) {
	products, err := u.productRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to fetch products: %+v", err)
		return nil, ErrFetchFailed
	}

	// Allocate so an empty catalog serializes as [] rather than null.
	responses := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, *converter.ProductToResponse(&products[i]))
	}

	return responses, nil
}

func (u *productUsecase) Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := &entity.Product{
		ExtID:    req.ExtID,
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Image:    req.Image,
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if err := u.productRepo.Create(ctx, product); err != nil {
		u.log.Warnf("Failed to create product: %+v", err)
		return nil, ErrCreateFailed
	}

	return converter.ProductToResponse(product), nil
}
