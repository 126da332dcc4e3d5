package order

import (
	domainOrder "incubator-admin/internal/domain/order"
	"incubator-admin/pkg/format"
	"incubator-admin/pkg/pagination"
)

// Request DTOs
type UpdateDraftRequest struct {
	ProductID     *string `json:"product_id" validate:"omitempty,max=50"`
	Quantity      *int    `json:"quantity" validate:"omitempty,min=1,max=100"`
	CustomerName  *string `json:"customer_name" validate:"omitempty,min=2,max=100"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone" validate:"omitempty,vnphone"`
	Address       *string `json:"address" validate:"omitempty,max=300"`
	PaymentMethod *string `json:"payment_method" validate:"omitempty,oneof=deposit full"`
	Notes         *string `json:"notes" validate:"omitempty,max=500"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending deposit shipping completed"`
}

type OrderFilterRequest struct {
	Status   string `form:"status"`
	Search   string `form:"search"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// Response DTOs
type OrderResponse struct {
	ID               string `json:"id"`
	CustomerName     string `json:"customer_name"`
	Email            string `json:"email,omitempty"`
	Phone            string `json:"phone"`
	Address          string `json:"address,omitempty"`
	ProductID        string `json:"product_id"`
	ProductName      string `json:"product_name"`
	Quantity         int    `json:"quantity"`
	Status           string `json:"status"`
	Amount           int64  `json:"amount"`
	AmountFormatted  string `json:"amount_formatted"`
	DepositAmount    int64  `json:"deposit_amount"`
	DepositFormatted string `json:"deposit_formatted"`
	PaymentMethod    string `json:"payment_method"`
	Date             string `json:"date"`
	QRCode           string `json:"qr_code"`
	Notes            string `json:"notes,omitempty"`
}

type OrderListResponse struct {
	Orders      []OrderResponse `json:"orders"`
	Total       int             `json:"total"`
	Page        int             `json:"page"`
	PageSize    int             `json:"page_size"`
	TotalPages  int             `json:"total_pages"`
	PageTokens  []int           `json:"page_tokens"`
	ShowingFrom int             `json:"showing_from"`
	ShowingTo   int             `json:"showing_to"`
}

// DraftResponse mirrors the wizard state so the client can restore any step.
type DraftResponse struct {
	ID            string `json:"id"`
	Step          int    `json:"step"`
	ProductID     string `json:"product_id,omitempty"`
	Quantity      int    `json:"quantity"`
	CustomerName  string `json:"customer_name,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	PaymentMethod string `json:"payment_method"`
	Notes         string `json:"notes,omitempty"`
}

// SummaryResponse carries the derived payment breakdown shown on the
// confirmation step.
type SummaryResponse struct {
	ProductID          string `json:"product_id"`
	ProductName        string `json:"product_name"`
	UnitPrice          int64  `json:"unit_price"`
	Quantity           int    `json:"quantity"`
	Total              int64  `json:"total"`
	TotalFormatted     string `json:"total_formatted"`
	DepositPercent     int64  `json:"deposit_percent"`
	Deposit            int64  `json:"deposit"`
	DepositFormatted   string `json:"deposit_formatted"`
	Remaining          int64  `json:"remaining"`
	RemainingFormatted string `json:"remaining_formatted"`
}

// Conversion functions
func ToOrderResponse(o *domainOrder.Order) *OrderResponse {
	if o == nil {
		return nil
	}
	return &OrderResponse{
		ID:               o.ID,
		CustomerName:     o.CustomerName,
		Email:            o.Email,
		Phone:            o.Phone,
		Address:          o.Address,
		ProductID:        o.ProductID,
		ProductName:      o.ProductName,
		Quantity:         o.Quantity,
		Status:           string(o.Status),
		Amount:           o.Amount,
		AmountFormatted:  format.FormatVND(o.Amount),
		DepositAmount:    o.DepositAmount,
		DepositFormatted: format.FormatVND(o.DepositAmount),
		PaymentMethod:    string(o.PaymentMethod),
		Date:             o.Date,
		QRCode:           o.QRCode,
		Notes:            o.Notes,
	}
}

func ToDomainFilter(req *OrderFilterRequest) *domainOrder.Filter {
	if req == nil {
		return &domainOrder.Filter{}
	}
	return &domainOrder.Filter{
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
