package user

import "context"

// Repository defines the persistence operations for accounts. Users are the
// only entity that supports deletion.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter *Filter) ([]*User, int, error)
	Count(ctx context.Context) (int, error)
	Statistics(ctx context.Context) (*Statistics, error)
}

// Filter narrows the account list. Search matches name, email and phone,
// case-insensitively; Role and Status are exact with ""/"all" pass-through.
type Filter struct {
	Role     string
	Status   string
	Search   string
	Page     int
	PageSize int
}

// Statistics summarises the account list for the header cards.
type Statistics struct {
	Total  int
	Admins int
	Staff  int
	Active int
}
