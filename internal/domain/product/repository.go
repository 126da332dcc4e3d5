package product

import "context"

// Repository defines the persistence operations for the product catalogue.
// Products are seeded; the admin can only edit them.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Product, error)
	Update(ctx context.Context, product *Product) error
	List(ctx context.Context) ([]*Product, error)
}
