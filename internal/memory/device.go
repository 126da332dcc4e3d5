package memory

import (
	"context"
	"time"

	"incubator-admin/internal/domain/device"
	"incubator-admin/pkg/pagination"
)

// DeviceRepository keeps the incubator fleet in memory.
type DeviceRepository struct {
	records *collection[device.Device]
}

func NewDeviceRepository() *DeviceRepository {
	return &DeviceRepository{
		records: newCollection(func(d device.Device) string { return d.ID }, nil),
	}
}

func (r *DeviceRepository) Create(ctx context.Context, d *device.Device) error {
	if !r.records.insert(*d) {
		return device.ErrDeviceAlreadyExists
	}
	return nil
}

func (r *DeviceRepository) GetByID(ctx context.Context, id string) (*device.Device, error) {
	d, ok := r.records.get(id)
	if !ok {
		return nil, device.ErrDeviceNotFound
	}
	return &d, nil
}

func (r *DeviceRepository) Update(ctx context.Context, d *device.Device) error {
	if !r.records.replace(*d) {
		return device.ErrDeviceNotFound
	}
	return nil
}

func (r *DeviceRepository) UpdateTelemetry(ctx context.Context, id string, t device.Telemetry) error {
	ok := r.records.mutate(id, func(d *device.Device) {
		if t.Temperature != nil {
			d.Temperature = *t.Temperature
		}
		if t.Humidity != nil {
			d.Humidity = *t.Humidity
		}
		if t.FanSpeed != nil {
			d.FanSpeed = *t.FanSpeed
		}
		if t.HeaterOn != nil {
			d.HeaterOn = *t.HeaterOn
		}
		d.UpdatedAt = time.Now()
	})
	if !ok {
		return device.ErrDeviceNotFound
	}
	return nil
}

func (r *DeviceRepository) UpdateStatus(ctx context.Context, id string, status device.DeviceStatus) error {
	ok := r.records.mutate(id, func(d *device.Device) {
		d.Status = status
		d.UpdatedAt = time.Now()
	})
	if !ok {
		return device.ErrDeviceNotFound
	}
	return nil
}

func (r *DeviceRepository) List(ctx context.Context, filter *device.Filter) ([]*device.Device, int, error) {
	if filter == nil {
		filter = &device.Filter{}
	}

	matched := make([]device.Device, 0)
	for _, d := range r.records.snapshot() {
		if !matchCategory(filter.Status, string(d.Status)) {
			continue
		}
		if !matchCategory(filter.Type, string(d.Type)) {
			continue
		}
		if !matchSearch(filter.Search, d.Name, d.ID, d.Owner) {
			continue
		}
		matched = append(matched, d)
	}

	total := len(matched)
	if filter.PageSize > 0 {
		matched = pagination.Slice(matched, filter.Page, filter.PageSize)
	}

	out := make([]*device.Device, len(matched))
	for i := range matched {
		out[i] = &matched[i]
	}
	return out, total, nil
}

func (r *DeviceRepository) Statistics(ctx context.Context) (*device.Statistics, error) {
	stats := &device.Statistics{}
	for _, d := range r.records.snapshot() {
		stats.Total++
		switch d.Status {
		case device.StatusRunning:
			stats.Running++
		case device.StatusWarning:
			stats.Warning++
		case device.StatusMaintenance:
			stats.Maintenance++
		}
	}
	return stats, nil
}
