package memory

import (
	"context"

	"incubator-admin/internal/domain/template"
	apperrors "incubator-admin/pkg/errors"
	"incubator-admin/pkg/pagination"
)

// TemplateRepository keeps care templates in memory.
type TemplateRepository struct {
	records *collection[template.Template]
}

func NewTemplateRepository() *TemplateRepository {
	return &TemplateRepository{
		records: newCollection(func(t template.Template) string { return t.ID }, nil),
	}
}

func (r *TemplateRepository) Create(ctx context.Context, t *template.Template) error {
	if !r.records.insert(*t) {
		return apperrors.ErrDuplicateID
	}
	return nil
}

func (r *TemplateRepository) GetByID(ctx context.Context, id string) (*template.Template, error) {
	t, ok := r.records.get(id)
	if !ok {
		return nil, template.ErrTemplateNotFound
	}
	return &t, nil
}

func (r *TemplateRepository) Update(ctx context.Context, t *template.Template) error {
	if !r.records.replace(*t) {
		return template.ErrTemplateNotFound
	}
	return nil
}

func (r *TemplateRepository) List(ctx context.Context, filter *template.Filter) ([]*template.Template, int, error) {
	if filter == nil {
		filter = &template.Filter{}
	}

	matched := make([]template.Template, 0)
	for _, t := range r.records.snapshot() {
		if !matchSearch(filter.Search, t.Name, t.ID) {
			continue
		}
		matched = append(matched, t)
	}

	total := len(matched)
	if filter.PageSize > 0 {
		matched = pagination.Slice(matched, filter.Page, filter.PageSize)
	}

	out := make([]*template.Template, len(matched))
	for i := range matched {
		out[i] = &matched[i]
	}
	return out, total, nil
}

func (r *TemplateRepository) Count(ctx context.Context) (int, error) {
	return r.records.len(), nil
}
