package template

import (
	domainTemplate "incubator-admin/internal/domain/template"
	"incubator-admin/pkg/format"
	"incubator-admin/pkg/pagination"
)

// Request DTOs. Clients edit the numeric values; the display strings are
// derived on save.
type CreateTemplateRequest struct {
	Name           string  `json:"name" validate:"required,min=2,max=100"`
	Icon           string  `json:"icon" validate:"required"`
	TempMin        float64 `json:"temp_min" validate:"required,min=20,max=45"`
	TempMax        float64 `json:"temp_max" validate:"required,min=20,max=45"`
	HumidityMin    float64 `json:"humidity_min" validate:"required,min=0,max=100"`
	HumidityMax    float64 `json:"humidity_max" validate:"required,min=0,max=100"`
	DurationDays   float64 `json:"duration_days" validate:"required,min=1,max=100"`
	TurnCycleHours float64 `json:"turn_cycle_hours" validate:"required,min=0.5,max=24"`
}

type UpdateTemplateRequest struct {
	Name           string  `json:"name" validate:"required,min=2,max=100"`
	Icon           string  `json:"icon" validate:"required"`
	TempMin        float64 `json:"temp_min" validate:"required,min=20,max=45"`
	TempMax        float64 `json:"temp_max" validate:"required,min=20,max=45"`
	HumidityMin    float64 `json:"humidity_min" validate:"required,min=0,max=100"`
	HumidityMax    float64 `json:"humidity_max" validate:"required,min=0,max=100"`
	DurationDays   float64 `json:"duration_days" validate:"required,min=1,max=100"`
	TurnCycleHours float64 `json:"turn_cycle_hours" validate:"required,min=0.5,max=24"`
}

type TemplateFilterRequest struct {
	Search   string `form:"search"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// Response DTOs
type TemplateResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Temperature string `json:"temperature"`
	Humidity    string `json:"humidity"`
	Duration    string `json:"duration"`
	TurnCycle   string `json:"turn_cycle"`
	Users       int    `json:"users"`
	Sessions    int    `json:"sessions"`
	SuccessRate int    `json:"success_rate"`
}

// TemplateEditResponse carries the parsed numeric values the edit form
// works on, alongside the stored display strings.
type TemplateEditResponse struct {
	TemplateResponse
	TempMin        float64 `json:"temp_min"`
	TempMax        float64 `json:"temp_max"`
	HumidityMin    float64 `json:"humidity_min"`
	HumidityMax    float64 `json:"humidity_max"`
	DurationDays   float64 `json:"duration_days"`
	TurnCycleHours float64 `json:"turn_cycle_hours"`
}

type TemplateListResponse struct {
	Templates   []TemplateResponse `json:"templates"`
	Total       int                `json:"total"`
	Page        int                `json:"page"`
	PageSize    int                `json:"page_size"`
	TotalPages  int                `json:"total_pages"`
	PageTokens  []int              `json:"page_tokens"`
	ShowingFrom int                `json:"showing_from"`
	ShowingTo   int                `json:"showing_to"`
}

// Conversion functions
func ToTemplateResponse(t *domainTemplate.Template) *TemplateResponse {
	if t == nil {
		return nil
	}
	return &TemplateResponse{
		ID:          t.ID,
		Name:        t.Name,
		Icon:        t.Icon,
		Temperature: t.Temperature,
		Humidity:    t.Humidity,
		Duration:    t.Duration,
		TurnCycle:   t.TurnCycle,
		Users:       t.Users,
		Sessions:    t.Sessions,
		SuccessRate: t.SuccessRate,
	}
}

// ToTemplateEditResponse parses the stored display strings back into the
// numeric values the edit form needs. Strings that fail to parse leave the
// corresponding numbers at zero; the display string is still returned.
func ToTemplateEditResponse(t *domainTemplate.Template) *TemplateEditResponse {
	resp := &TemplateEditResponse{TemplateResponse: *ToTemplateResponse(t)}
	if min, max, err := format.ParseRange(t.Temperature); err == nil {
		resp.TempMin, resp.TempMax = min, max
	}
	if min, max, err := format.ParseRange(t.Humidity); err == nil {
		resp.HumidityMin, resp.HumidityMax = min, max
	}
	if v, err := format.ParseScalar(t.Duration); err == nil {
		resp.DurationDays = v
	}
	if v, err := format.ParseScalar(t.TurnCycle); err == nil {
		resp.TurnCycleHours = v
	}
	return resp
}

func ToDomainFilter(req *TemplateFilterRequest) *domainTemplate.Filter {
	if req == nil {
		return &domainTemplate.Filter{}
	}
	return &domainTemplate.Filter{
		Search:   req.Search,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
}

func pageTokens(current, totalPages int) []int {
	tokens := pagination.Tokens(current, totalPages)
	out := make([]int, len(tokens))
	for i, t := range tokens {
		out[i] = int(t)
	}
	return out
}
