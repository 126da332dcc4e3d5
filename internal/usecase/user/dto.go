package user

import (
	domainUser "incubator-admin/internal/domain/user"
	"incubator-admin/pkg/pagination"
)

// Request DTOs
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,vnphone"`
	Role  string `json:"role" validate:"required,oneof=admin staff user"`
}

type UpdateUserRequest struct {
	Name   string `json:"name" validate:"required,min=2,max=100"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone" validate:"required,vnphone"`
	Role   string `json:"role" validate:"required,oneof=admin staff user"`
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

// DeleteUserRequest carries the explicit confirmation flag from the delete
// dialog. Deletion without it is rejected.
type DeleteUserRequest struct {
	Confirm bool `json:"confirm"`
}

type UserFilterRequest struct {
	Role     string `form:"role"`
	Status   string `form:"status"`
	Search   string `form:"search"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// Response DTOs
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	JoinDate  string `json:"join_date"`
	LastLogin string `json:"last_login"`
}

type UserListResponse struct {
	Users       []UserResponse `json:"users"`
	Total       int            `json:"total"`
	Page        int            `json:"page"`
	PageSize    int            `json:"page_size"`
	TotalPages  int            `json:"total_pages"`
	PageTokens  []int          `json:"page_tokens"`
	ShowingFrom int            `json:"showing_from"`
	ShowingTo   int            `json:"showing_to"`
}

type UserStatisticsResponse struct {
	Total  int `json:"total"`
	Admins int `json:"admins"`
	Staff  int `json:"staff"`
	Active int `json:"active"`
}

// Conversion functions
func ToUserResponse(u *domainUser.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      string(u.Role),
		Status:    string(u.Status),
		JoinDate:  u.JoinDate,
		LastLogin: u.LastLogin,
	}
}

func ToDomainFilter(req *UserFilterRequest) *domainUser.Filter {
	if req == nil {
		return &domainUser.Filter{}
	}
	return &domainUser.Filter{
		Role:     req.Role,
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
