package device

import (
	"context"
	"fmt"
	"time"

	domainDevice "incubator-admin/internal/domain/device"
	"incubator-admin/internal/logger"
	appErrors "incubator-admin/pkg/errors"
	"incubator-admin/pkg/pagination"
	"incubator-admin/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements fleet management use cases.
type Service struct {
	deviceRepo domainDevice.Repository
}

// NewService creates a new device service.
func NewService(deviceRepo domainDevice.Repository) *Service {
	return &Service{deviceRepo: deviceRepo}
}

func (s *Service) CreateDevice(ctx context.Context, req *CreateDeviceRequest) (*DeviceResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	deviceType, err := ParseType(req.Type)
	if err != nil {
		return nil, err
	}

	id := req.ID
	if id == "" {
		id = fmt.Sprintf("INC-%d-%s", time.Now().Year(), uuid.NewString()[:8])
	}

	now := time.Now()
	device := &domainDevice.Device{
		ID:          id,
		Name:        req.Name,
		Type:        deviceType,
		Owner:       req.Owner,
		Status:      domainDevice.StatusRunning,
		Temperature: req.Temperature,
		Humidity:    req.Humidity,
		FanSpeed:    req.FanSpeed,
		HeaterOn:    req.HeaterOn,
		MotorCycle:  req.MotorCycle,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.deviceRepo.Create(ctx, device); err != nil {
		return nil, err
	}

	logger.Info("Device registered",
		zap.String("device_id", device.ID),
		zap.String("owner", device.Owner),
		zap.String("event", "device_registered"),
	)

	return ToDeviceResponse(device), nil
}

func (s *Service) GetDevice(ctx context.Context, id string) (*DeviceResponse, error) {
	device, err := s.deviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToDeviceResponse(device), nil
}

func (s *Service) UpdateStatus(ctx context.Context, id string, req *UpdateStatusRequest) (*DeviceResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	status, err := ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	if err := s.deviceRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	updated, err := s.deviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.Info("Device status updated",
		zap.String("device_id", id),
		zap.String("status", string(status)),
		zap.String("event", "device_status_updated"),
	)

	return ToDeviceResponse(updated), nil
}

func (s *Service) ListDevices(ctx context.Context, filter *DeviceFilterRequest) (*DeviceListResponse, error) {
	if filter == nil {
		filter = &DeviceFilterRequest{}
	}
	filter.Page, filter.PageSize = pagination.Clamp(filter.Page, filter.PageSize, 20, 100)

	devices, total, err := s.deviceRepo.List(ctx, ToDomainFilter(filter))
	if err != nil {
		return nil, err
	}

	responses := make([]DeviceResponse, len(devices))
	for i, d := range devices {
		responses[i] = *ToDeviceResponse(d)
	}

	totalPages := pagination.PageCount(total, filter.PageSize)
	from, to := pagination.Range(filter.Page, filter.PageSize, total)

	return &DeviceListResponse{
		Devices:     responses,
		Total:       total,
		Page:        filter.Page,
		PageSize:    filter.PageSize,
		TotalPages:  totalPages,
		PageTokens:  pageTokens(filter.Page, totalPages),
		ShowingFrom: from,
		ShowingTo:   to,
	}, nil
}

func (s *Service) GetStatistics(ctx context.Context) (*DeviceStatisticsResponse, error) {
	stats, err := s.deviceRepo.Statistics(ctx)
	if err != nil {
		return nil, err
	}
	return &DeviceStatisticsResponse{
		Total:       stats.Total,
		Running:     stats.Running,
		Warning:     stats.Warning,
		Maintenance: stats.Maintenance,
	}, nil
}
