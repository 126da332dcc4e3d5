package template

import "context"

// Repository defines the persistence operations for care templates.
type Repository interface {
	Create(ctx context.Context, template *Template) error
	GetByID(ctx context.Context, id string) (*Template, error)
	Update(ctx context.Context, template *Template) error
	List(ctx context.Context, filter *Filter) ([]*Template, int, error)
	Count(ctx context.Context) (int, error)
}

// Filter narrows the template list; Search matches name and ID.
type Filter struct {
	Search   string
	Page     int
	PageSize int
}
