package product

import (
	domainProduct "incubator-admin/internal/domain/product"
	"incubator-admin/pkg/format"
)

// Request DTOs
type UpdateProductRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Capacity string `json:"capacity" validate:"required,max=50"`
	Stock    int    `json:"stock" validate:"min=0"`
	Price    int64  `json:"price" validate:"required,min=0"`
}

// Response DTOs
type ProductResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Capacity       string `json:"capacity"`
	Stock          int    `json:"stock"`
	Price          int64  `json:"price"`
	PriceFormatted string `json:"price_formatted"`
	LowStock       bool   `json:"low_stock"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

// Conversion functions
func ToProductResponse(p *domainProduct.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Capacity:       p.Capacity,
		Stock:          p.Stock,
		Price:          p.Price,
		PriceFormatted: format.FormatVND(p.Price),
		LowStock:       p.LowStock(),
	}
}
