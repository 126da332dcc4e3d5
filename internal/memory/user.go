package memory

import (
	"context"

	"incubator-admin/internal/domain/user"
	"incubator-admin/pkg/pagination"
)

// UserRepository keeps panel accounts in memory.
type UserRepository struct {
	records *collection[user.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		records: newCollection(func(u user.User) string { return u.ID }, nil),
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if !r.records.insert(*u) {
		return user.ErrUserAlreadyExists
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	u, ok := r.records.get(id)
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &u, nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	if !r.records.replace(*u) {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	if !r.records.remove(id) {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context, filter *user.Filter) ([]*user.User, int, error) {
	if filter == nil {
		filter = &user.Filter{}
	}

	matched := make([]user.User, 0)
	for _, u := range r.records.snapshot() {
		if !matchCategory(filter.Role, string(u.Role)) {
			continue
		}
		if !matchCategory(filter.Status, string(u.Status)) {
			continue
		}
		if !matchSearch(filter.Search, u.Name, u.Email, u.Phone) {
			continue
		}
		matched = append(matched, u)
	}

	total := len(matched)
	if filter.PageSize > 0 {
		matched = pagination.Slice(matched, filter.Page, filter.PageSize)
	}

	out := make([]*user.User, len(matched))
	for i := range matched {
		out[i] = &matched[i]
	}
	return out, total, nil
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	return r.records.len(), nil
}

func (r *UserRepository) Statistics(ctx context.Context) (*user.Statistics, error) {
	stats := &user.Statistics{}
	for _, u := range r.records.snapshot() {
		stats.Total++
		if u.Role == user.RoleAdmin {
			stats.Admins++
		}
		if u.Role == user.RoleStaff {
			stats.Staff++
		}
		if u.Status == user.StatusActive {
			stats.Active++
		}
	}
	return stats, nil
}
