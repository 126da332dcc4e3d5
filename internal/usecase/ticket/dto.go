package ticket

import (
	domainTicket "incubator-admin/internal/domain/ticket"
	"incubator-admin/pkg/pagination"
)

// Request DTOs
type CreateTicketRequest struct {
	DeviceID string `json:"device_id" validate:"required,max=50"`
	Customer string `json:"customer" validate:"required,min=2,max=100"`
	Issue    string `json:"issue" validate:"required,min=10,max=1000"`
	Priority string `json:"priority" validate:"required,oneof=low medium high"`
	HasImage bool   `json:"has_image"`
}

type UpdateTicketStatusRequest struct {
	Status   string `json:"status" validate:"required,oneof=new processing done"`
	Assignee string `json:"assignee" validate:"omitempty,min=2,max=100"`
	Solution string `json:"solution" validate:"omitempty,max=1000"`
}

type TicketFilterRequest struct {
	Status   string `form:"status"`
	Priority string `form:"priority"`
	Search   string `form:"search"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// Response DTOs
type TicketResponse struct {
	ID        string `json:"id"`
	DeviceID  string `json:"device_id"`
	Customer  string `json:"customer"`
	Issue     string `json:"issue"`
	Status    string `json:"status"`
	Priority  string `json:"priority"`
	CreatedAt string `json:"created_at"`
	Assignee  string `json:"assignee,omitempty"`
	Solution  string `json:"solution,omitempty"`
	HasImage  bool   `json:"has_image"`
}

type TicketListResponse struct {
	Tickets     []TicketResponse `json:"tickets"`
	Total       int              `json:"total"`
	Page        int              `json:"page"`
	PageSize    int              `json:"page_size"`
	TotalPages  int              `json:"total_pages"`
	PageTokens  []int            `json:"page_tokens"`
	ShowingFrom int              `json:"showing_from"`
	ShowingTo   int              `json:"showing_to"`
}

type TicketStatisticsResponse struct {
	Total      int `json:"total"`
	New        int `json:"new"`
	Processing int `json:"processing"`
	Done       int `json:"done"`
}

// Conversion functions
func ToTicketResponse(t *domainTicket.Ticket) *TicketResponse {
	if t == nil {
		return nil
	}
	return &TicketResponse{
		ID:        t.ID,
		DeviceID:  t.DeviceID,
		Customer:  t.Customer,
		Issue:     t.Issue,
		Status:    string(t.Status),
		Priority:  string(t.Priority),
		CreatedAt: t.CreatedAt,
		Assignee:  t.Assignee,
		Solution:  t.Solution,
		HasImage:  t.HasImage,
	}
}

func ToDomainFilter(req *TicketFilterRequest) *domainTicket.Filter {
	if req == nil {
		return &domainTicket.Filter{}
	}
	return &domainTicket.Filter{
		Status:   req.Status,
		Priority: req.Priority,
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
