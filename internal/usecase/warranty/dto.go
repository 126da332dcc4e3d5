package warranty

import (
	domainWarranty "incubator-admin/internal/domain/warranty"
	"incubator-admin/pkg/pagination"
)

// Request DTOs
type ReportIssueRequest struct {
	Type        string `json:"type" validate:"required,min=2,max=50"`
	Description string `json:"description" validate:"required,min=10,max=1000"`
	Notes       string `json:"notes" validate:"omitempty,max=500"`
}

type UpdateIssueRequest struct {
	Status string `json:"status" validate:"required,oneof=reported in-progress resolved"`
	Notes  string `json:"notes" validate:"omitempty,max=500"`
}

type WarrantyFilterRequest struct {
	Status   string `form:"status"`
	Search   string `form:"search"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// Response DTOs
type TechnicalIssueResponse struct {
	IssueID        string `json:"issue_id"`
	Date           string `json:"date"`
	Type           string `json:"type"`
	Description    string `json:"description"`
	Status         string `json:"status"`
	ResolutionDate string `json:"resolution_date,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

type WarrantyResponse struct {
	ID                string                   `json:"id"`
	ProductID         string                   `json:"product_id"`
	ProductName       string                   `json:"product_name"`
	CustomerName      string                   `json:"customer_name"`
	CustomerEmail     string                   `json:"customer_email"`
	CustomerPhone     string                   `json:"customer_phone"`
	PurchaseDate      string                   `json:"purchase_date"`
	WarrantyEndDate   string                   `json:"warranty_end_date"`
	Status            string                   `json:"status"`
	ServiceCount      int                      `json:"service_count"`
	MaxServiceAllowed int                      `json:"max_service_allowed"`
	ServiceExhausted  bool                     `json:"service_exhausted"`
	Issues            []TechnicalIssueResponse `json:"issues"`
}

type WarrantyListResponse struct {
	Warranties  []WarrantyResponse `json:"warranties"`
	Total       int                `json:"total"`
	Page        int                `json:"page"`
	PageSize    int                `json:"page_size"`
	TotalPages  int                `json:"total_pages"`
	PageTokens  []int              `json:"page_tokens"`
	ShowingFrom int                `json:"showing_from"`
	ShowingTo   int                `json:"showing_to"`
}

type WarrantyStatisticsResponse struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Expiring int `json:"expiring"`
	Expired  int `json:"expired"`
}

// Conversion functions
func ToWarrantyResponse(w *domainWarranty.Warranty) *WarrantyResponse {
	if w == nil {
		return nil
	}

	issues := make([]TechnicalIssueResponse, len(w.Issues))
	for i, issue := range w.Issues {
		issues[i] = TechnicalIssueResponse{
			IssueID:        issue.IssueID,
			Date:           issue.Date,
			Type:           issue.Type,
			Description:    issue.Description,
			Status:         string(issue.Status),
			ResolutionDate: issue.ResolutionDate,
			Notes:          issue.Notes,
		}
	}

	return &WarrantyResponse{
		ID:                w.ID,
		ProductID:         w.ProductID,
		ProductName:       w.ProductName,
		CustomerName:      w.CustomerName,
		CustomerEmail:     w.CustomerEmail,
		CustomerPhone:     w.CustomerPhone,
		PurchaseDate:      w.PurchaseDate,
		WarrantyEndDate:   w.WarrantyEndDate,
		Status:            string(w.Status),
		ServiceCount:      w.ServiceCount,
		MaxServiceAllowed: w.MaxServiceAllowed,
		ServiceExhausted:  w.ServiceExhausted(),
		Issues:            issues,
	}
}

func ToDomainFilter(req *WarrantyFilterRequest) *domainWarranty.Filter {
	if req == nil {
		return &domainWarranty.Filter{}
	}
	return &domainWarranty.Filter{
		Status:   req.Status,
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
