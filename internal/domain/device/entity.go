package device

import "time"

// Device represents an incubator unit or one of its components in the
// rental fleet.
type Device struct {
	ID          string
	Name        string
	Type        DeviceType
	Owner       string
	Status      DeviceStatus
	Temperature float64
	Humidity    float64
	FanSpeed    int
	HeaterOn    bool
	MotorCycle  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DeviceType classifies what kind of hardware the record describes.
type DeviceType string

const (
	TypeSensor DeviceType = "sensor"
	TypeFan    DeviceType = "fan"
	TypeHeater DeviceType = "heater"
	TypeMotor  DeviceType = "motor"
	TypeOther  DeviceType = "other"
)

// DeviceStatus is the operational state shown on the fleet dashboard.
type DeviceStatus string

const (
	StatusRunning     DeviceStatus = "running"
	StatusWarning     DeviceStatus = "warning"
	StatusMaintenance DeviceStatus = "maintenance"
)

// Telemetry is the live sensor reading applied to a device.
type Telemetry struct {
	Temperature *float64
	Humidity    *float64
	FanSpeed    *int
	HeaterOn    *bool
}
