package template

import (
	"context"
	"fmt"

	domainTemplate "incubator-admin/internal/domain/template"
	"incubator-admin/internal/logger"
	appErrors "incubator-admin/pkg/errors"
	"incubator-admin/pkg/format"
	"incubator-admin/pkg/pagination"
	"incubator-admin/pkg/utils"

	"go.uber.org/zap"
)

// Service implements care template use cases. Range and cycle values are
// stored as display strings, so writes format and reads-for-edit parse.
type Service struct {
	templateRepo domainTemplate.Repository
}

// NewService creates a new template service.
func NewService(templateRepo domainTemplate.Repository) *Service {
	return &Service{templateRepo: templateRepo}
}

func (s *Service) CreateTemplate(ctx context.Context, req *CreateTemplateRequest) (*TemplateResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}
	if err := validateRanges(req.TempMin, req.TempMax, req.HumidityMin, req.HumidityMax); err != nil {
		return nil, err
	}
	if !domainTemplate.ValidIcon(req.Icon) {
		return nil, domainTemplate.ErrInvalidIcon
	}

	count, err := s.templateRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	template := &domainTemplate.Template{
		ID:          fmt.Sprintf("T%03d", count+1),
		Name:        req.Name,
		Icon:        req.Icon,
		Temperature: format.FormatRange(req.TempMin, req.TempMax, "°C"),
		Humidity:    format.FormatRange(req.HumidityMin, req.HumidityMax, "%"),
		Duration:    format.FormatScalar(req.DurationDays, format.UnitDays),
		TurnCycle:   format.FormatScalar(req.TurnCycleHours, format.UnitHours),
	}

	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, err
	}

	logger.Info("Template created",
		zap.String("template_id", template.ID),
		zap.String("name", template.Name),
		zap.String("event", "template_created"),
	)

	return ToTemplateResponse(template), nil
}

func (s *Service) GetTemplate(ctx context.Context, id string) (*TemplateEditResponse, error) {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToTemplateEditResponse(template), nil
}

func (s *Service) UpdateTemplate(ctx context.Context, id string, req *UpdateTemplateRequest) (*TemplateResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}
	if err := validateRanges(req.TempMin, req.TempMax, req.HumidityMin, req.HumidityMax); err != nil {
		return nil, err
	}
	if !domainTemplate.ValidIcon(req.Icon) {
		return nil, domainTemplate.ErrInvalidIcon
	}

	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	template.Name = req.Name
	template.Icon = req.Icon
	template.Temperature = format.FormatRange(req.TempMin, req.TempMax, "°C")
	template.Humidity = format.FormatRange(req.HumidityMin, req.HumidityMax, "%")
	template.Duration = format.FormatScalar(req.DurationDays, format.UnitDays)
	template.TurnCycle = format.FormatScalar(req.TurnCycleHours, format.UnitHours)

	if err := s.templateRepo.Update(ctx, template); err != nil {
		return nil, err
	}

	logger.Info("Template updated",
		zap.String("template_id", id),
		zap.String("event", "template_updated"),
	)

	return ToTemplateResponse(template), nil
}

func (s *Service) ListTemplates(ctx context.Context, filter *TemplateFilterRequest) (*TemplateListResponse, error) {
	if filter == nil {
		filter = &TemplateFilterRequest{}
	}
	filter.Page, filter.PageSize = pagination.Clamp(filter.Page, filter.PageSize, 20, 100)

	templates, total, err := s.templateRepo.List(ctx, ToDomainFilter(filter))
	if err != nil {
		return nil, err
	}

	responses := make([]TemplateResponse, len(templates))
	for i, t := range templates {
		responses[i] = *ToTemplateResponse(t)
	}

	totalPages := pagination.PageCount(total, filter.PageSize)
	from, to := pagination.Range(filter.Page, filter.PageSize, total)

	return &TemplateListResponse{
		Templates:   responses,
		Total:       total,
		Page:        filter.Page,
		PageSize:    filter.PageSize,
		TotalPages:  totalPages,
		PageTokens:  pageTokens(filter.Page, totalPages),
		ShowingFrom: from,
		ShowingTo:   to,
	}, nil
}

func validateRanges(tempMin, tempMax, humidityMin, humidityMax float64) error {
	if tempMin > tempMax || humidityMin > humidityMax {
		return domainTemplate.ErrInvalidRange
	}
	return nil
}
