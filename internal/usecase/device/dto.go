package device

import (
	"time"

	domainDevice "incubator-admin/internal/domain/device"
	"incubator-admin/pkg/pagination"
)

// Request DTOs
type CreateDeviceRequest struct {
	ID          string  `json:"id" validate:"omitempty,max=50"`
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Type        string  `json:"type" validate:"required,oneof=sensor fan heater motor other"`
	Owner       string  `json:"owner" validate:"required,min=2,max=100"`
	Temperature float64 `json:"temperature" validate:"omitempty,min=0,max=100"`
	Humidity    float64 `json:"humidity" validate:"omitempty,min=0,max=100"`
	FanSpeed    int     `json:"fan_speed" validate:"omitempty,min=0,max=100"`
	HeaterOn    bool    `json:"heater_on"`
	MotorCycle  string  `json:"motor_cycle" validate:"omitempty,max=20"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=running warning maintenance"`
}

type DeviceFilterRequest struct {
	Status   string `form:"status"`
	Type     string `form:"type"`
	Search   string `form:"search"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// Response DTOs
type DeviceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Owner       string    `json:"owner"`
	Status      string    `json:"status"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	FanSpeed    int       `json:"fan_speed"`
	HeaterOn    bool      `json:"heater_on"`
	MotorCycle  string    `json:"motor_cycle"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DeviceListResponse carries the page of devices plus everything the list
// screen needs to render its pagination control. PageTokens holds page
// numbers with 0 standing in for the ellipsis.
type DeviceListResponse struct {
	Devices     []DeviceResponse `json:"devices"`
	Total       int              `json:"total"`
	Page        int              `json:"page"`
	PageSize    int              `json:"page_size"`
	TotalPages  int              `json:"total_pages"`
	PageTokens  []int            `json:"page_tokens"`
	ShowingFrom int              `json:"showing_from"`
	ShowingTo   int              `json:"showing_to"`
}

type DeviceStatisticsResponse struct {
	Total       int `json:"total"`
	Running     int `json:"running"`
	Warning     int `json:"warning"`
	Maintenance int `json:"maintenance"`
}

// Conversion functions
func ToDeviceResponse(d *domainDevice.Device) *DeviceResponse {
	if d == nil {
		return nil
	}
	return &DeviceResponse{
		ID:          d.ID,
		Name:        d.Name,
		Type:        string(d.Type),
		Owner:       d.Owner,
		Status:      string(d.Status),
		Temperature: d.Temperature,
		Humidity:    d.Humidity,
		FanSpeed:    d.FanSpeed,
		HeaterOn:    d.HeaterOn,
		MotorCycle:  d.MotorCycle,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func ToDomainFilter(req *DeviceFilterRequest) *domainDevice.Filter {
	if req == nil {
		return &domainDevice.Filter{}
	}
	return &domainDevice.Filter{
		Status:   req.Status,
		Type:     req.Type,
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
