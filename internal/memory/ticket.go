package memory

import (
	"context"

	"incubator-admin/internal/domain/ticket"
	apperrors "incubator-admin/pkg/errors"
	"incubator-admin/pkg/pagination"
)

// TicketRepository keeps maintenance tickets in memory.
type TicketRepository struct {
	records *collection[ticket.Ticket]
}

func NewTicketRepository() *TicketRepository {
	return &TicketRepository{
		records: newCollection(func(t ticket.Ticket) string { return t.ID }, nil),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if !r.records.insert(*t) {
		return apperrors.ErrDuplicateID
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	t, ok := r.records.get(id)
	if !ok {
		return nil, ticket.ErrTicketNotFound
	}
	return &t, nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if !r.records.replace(*t) {
		return ticket.ErrTicketNotFound
	}
	return nil
}

func (r *TicketRepository) List(ctx context.Context, filter *ticket.Filter) ([]*ticket.Ticket, int, error) {
	if filter == nil {
		filter = &ticket.Filter{}
	}

	matched := make([]ticket.Ticket, 0)
	for _, t := range r.records.snapshot() {
		if !matchCategory(filter.Status, string(t.Status)) {
			continue
		}
		if !matchCategory(filter.Priority, string(t.Priority)) {
			continue
		}
		if !matchSearch(filter.Search, t.ID, t.DeviceID, t.Customer) {
			continue
		}
		matched = append(matched, t)
	}

	total := len(matched)
	if filter.PageSize > 0 {
		matched = pagination.Slice(matched, filter.Page, filter.PageSize)
	}

	out := make([]*ticket.Ticket, len(matched))
	for i := range matched {
		out[i] = &matched[i]
	}
	return out, total, nil
}

func (r *TicketRepository) Count(ctx context.Context) (int, error) {
	return r.records.len(), nil
}

func (r *TicketRepository) Statistics(ctx context.Context) (*ticket.Statistics, error) {
	stats := &ticket.Statistics{}
	for _, t := range r.records.snapshot() {
		stats.Total++
		switch t.Status {
		case ticket.StatusNew:
			stats.New++
		case ticket.StatusProcessing:
			stats.Processing++
		case ticket.StatusDone:
			stats.Done++
		}
	}
	return stats, nil
}
