package device

import "context"

// Repository defines the persistence operations for devices. Devices are
// never removed from the fleet; retiring a unit is a status change.
type Repository interface {
	Create(ctx context.Context, device *Device) error
	GetByID(ctx context.Context, id string) (*Device, error)
	Update(ctx context.Context, device *Device) error
	UpdateTelemetry(ctx context.Context, id string, t Telemetry) error
	UpdateStatus(ctx context.Context, id string, status DeviceStatus) error
	List(ctx context.Context, filter *Filter) ([]*Device, int, error)
	Statistics(ctx context.Context) (*Statistics, error)
}

// Filter narrows the device list. Empty strings and the "all" sentinel
// match everything; Search is a case-insensitive substring match over name,
// ID and owner.
type Filter struct {
	Status   string
	Type     string
	Search   string
	Page     int
	PageSize int
}

// Statistics summarises the fleet per status.
type Statistics struct {
	Total       int
	Running     int
	Warning     int
	Maintenance int
}
