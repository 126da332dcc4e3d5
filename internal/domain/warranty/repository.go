package warranty

import "context"

// Repository defines the persistence operations for warranty records.
// Issues are embedded; updating a warranty replaces the whole record.
type Repository interface {
	Create(ctx context.Context, warranty *Warranty) error
	GetByID(ctx context.Context, id string) (*Warranty, error)
	Update(ctx context.Context, warranty *Warranty) error
	List(ctx context.Context, filter *Filter) ([]*Warranty, int, error)
	Count(ctx context.Context) (int, error)
	Statistics(ctx context.Context) (*Statistics, error)
}

// Filter narrows the warranty list. Search matches warranty ID, product name
// and customer name.
type Filter struct {
	Status   string
	Search   string
	Page     int
	PageSize int
}

// Statistics summarises coverage per status.
type Statistics struct {
	Total    int
	Active   int
	Expiring int
	Expired  int
}
