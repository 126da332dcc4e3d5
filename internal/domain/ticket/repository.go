package ticket

import "context"

// Repository defines the persistence operations for maintenance tickets.
type Repository interface {
	Create(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, id string) (*Ticket, error)
	Update(ctx context.Context, ticket *Ticket) error
	List(ctx context.Context, filter *Filter) ([]*Ticket, int, error)
	Count(ctx context.Context) (int, error)
	Statistics(ctx context.Context) (*Statistics, error)
}

// Filter narrows the ticket list. Search matches ticket ID, device ID and
// customer name.
type Filter struct {
	Status   string
	Priority string
	Search   string
	Page     int
	PageSize int
}

// Statistics summarises the support queue per status.
type Statistics struct {
	Total      int
	New        int
	Processing int
	Done       int
}
