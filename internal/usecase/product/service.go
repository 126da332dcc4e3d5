package product

import (
	"context"

	domainProduct "incubator-admin/internal/domain/product"
	"incubator-admin/internal/logger"
	appErrors "incubator-admin/pkg/errors"
	"incubator-admin/pkg/utils"

	"go.uber.org/zap"
)

// Service implements catalogue use cases.
type Service struct {
	productRepo domainProduct.Repository
}

// NewService creates a new product service.
func NewService(productRepo domainProduct.Repository) *Service {
	return &Service{productRepo: productRepo}
}

func (s *Service) GetProduct(ctx context.Context, id string) (*ProductResponse, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

func (s *Service) ListProducts(ctx context.Context) (*ProductListResponse, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = *ToProductResponse(p)
	}

	return &ProductListResponse{
		Products: responses,
		Total:    len(responses),
	}, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id string, req *UpdateProductRequest) (*ProductResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Capacity = req.Capacity
	product.Stock = req.Stock
	product.Price = req.Price

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	logger.Info("Product updated",
		zap.String("product_id", id),
		zap.Int("stock", product.Stock),
		zap.String("event", "product_updated"),
	)

	return ToProductResponse(product), nil
}
