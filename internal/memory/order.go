package memory

import (
	"context"

	"incubator-admin/internal/domain/order"
	apperrors "incubator-admin/pkg/errors"
	"incubator-admin/pkg/pagination"
)

// OrderRepository keeps sales orders in memory.
type OrderRepository struct {
	records *collection[order.Order]
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		records: newCollection(func(o order.Order) string { return o.ID }, nil),
	}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	if !r.records.insert(*o) {
		return apperrors.ErrDuplicateID
	}
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*order.Order, error) {
	o, ok := r.records.get(id)
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	return &o, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status order.OrderStatus) error {
	ok := r.records.mutate(id, func(o *order.Order) {
		o.Status = status
	})
	if !ok {
		return order.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) List(ctx context.Context, filter *order.Filter) ([]*order.Order, int, error) {
	if filter == nil {
		filter = &order.Filter{}
	}

	matched := make([]order.Order, 0)
	for _, o := range r.records.snapshot() {
		if !matchCategory(filter.Status, string(o.Status)) {
			continue
		}
		if !matchSearch(filter.Search, o.ID, o.CustomerName, o.ProductName) {
			continue
		}
		matched = append(matched, o)
	}

	total := len(matched)
	if filter.PageSize > 0 {
		matched = pagination.Slice(matched, filter.Page, filter.PageSize)
	}

	out := make([]*order.Order, len(matched))
	for i := range matched {
		out[i] = &matched[i]
	}
	return out, total, nil
}

func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	return r.records.len(), nil
}
