package memory

import (
	"context"

	"incubator-admin/internal/domain/product"
)

// ProductRepository keeps the sales catalogue in memory.
type ProductRepository struct {
	records *collection[product.Product]
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		records: newCollection(func(p product.Product) string { return p.ID }, nil),
	}
}

// Add seeds a product into the catalogue.
func (r *ProductRepository) Add(p *product.Product) {
	r.records.insert(*p)
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*product.Product, error) {
	p, ok := r.records.get(id)
	if !ok {
		return nil, product.ErrProductNotFound
	}
	return &p, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	if p.Stock < 0 {
		return product.ErrNegativeStock
	}
	if !r.records.replace(*p) {
		return product.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*product.Product, error) {
	items := r.records.snapshot()
	out := make([]*product.Product, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out, nil
}
