package order

import "context"

// Repository defines the persistence operations for sales orders. Orders
// are never deleted; cancelled sales stay on record.
type Repository interface {
	Create(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	UpdateStatus(ctx context.Context, id string, status OrderStatus) error
	List(ctx context.Context, filter *Filter) ([]*Order, int, error)
	Count(ctx context.Context) (int, error)
}

// Filter narrows the order list. Search matches order ID, customer name and
// product name, case-insensitively.
type Filter struct {
	Status   string
	Search   string
	Page     int
	PageSize int
}
