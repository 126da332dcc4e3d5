package memory

import (
	"context"

	"incubator-admin/internal/domain/warranty"
	apperrors "incubator-admin/pkg/errors"
	"incubator-admin/pkg/pagination"
)

// WarrantyRepository keeps warranty records in memory. Records embed their
// issue history, so the clone copies the issue slice as well.
type WarrantyRepository struct {
	records *collection[warranty.Warranty]
}

func NewWarrantyRepository() *WarrantyRepository {
	return &WarrantyRepository{
		records: newCollection(
			func(w warranty.Warranty) string { return w.ID },
			cloneWarranty,
		),
	}
}

func cloneWarranty(w warranty.Warranty) warranty.Warranty {
	out := w
	out.Issues = make([]warranty.TechnicalIssue, len(w.Issues))
	copy(out.Issues, w.Issues)
	return out
}

func (r *WarrantyRepository) Create(ctx context.Context, w *warranty.Warranty) error {
	if !r.records.insert(*w) {
		return apperrors.ErrDuplicateID
	}
	return nil
}

func (r *WarrantyRepository) GetByID(ctx context.Context, id string) (*warranty.Warranty, error) {
	w, ok := r.records.get(id)
	if !ok {
		return nil, warranty.ErrWarrantyNotFound
	}
	return &w, nil
}

func (r *WarrantyRepository) Update(ctx context.Context, w *warranty.Warranty) error {
	if !r.records.replace(*w) {
		return warranty.ErrWarrantyNotFound
	}
	return nil
}

func (r *WarrantyRepository) List(ctx context.Context, filter *warranty.Filter) ([]*warranty.Warranty, int, error) {
	if filter == nil {
		filter = &warranty.Filter{}
	}

	matched := make([]warranty.Warranty, 0)
	for _, w := range r.records.snapshot() {
		if !matchCategory(filter.Status, string(w.Status)) {
			continue
		}
		if !matchSearch(filter.Search, w.ID, w.ProductName, w.CustomerName) {
			continue
		}
		matched = append(matched, w)
	}

	total := len(matched)
	if filter.PageSize > 0 {
		matched = pagination.Slice(matched, filter.Page, filter.PageSize)
	}

	out := make([]*warranty.Warranty, len(matched))
	for i := range matched {
		out[i] = &matched[i]
	}
	return out, total, nil
}

func (r *WarrantyRepository) Count(ctx context.Context) (int, error) {
	return r.records.len(), nil
}

func (r *WarrantyRepository) Statistics(ctx context.Context) (*warranty.Statistics, error) {
	stats := &warranty.Statistics{}
	for _, w := range r.records.snapshot() {
		stats.Total++
		switch w.Status {
		case warranty.StatusActive:
			stats.Active++
		case warranty.StatusExpiring:
			stats.Expiring++
		case warranty.StatusExpired:
			stats.Expired++
		}
	}
	return stats, nil
}
