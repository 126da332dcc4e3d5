package device

import (
	domainDevice "incubator-admin/internal/domain/device"
)

// ParseStatus converts a wire value into a DeviceStatus.
func ParseStatus(s string) (domainDevice.DeviceStatus, error) {
	switch domainDevice.DeviceStatus(s) {
	case domainDevice.StatusRunning, domainDevice.StatusWarning, domainDevice.StatusMaintenance:
		return domainDevice.DeviceStatus(s), nil
	}
	return "", domainDevice.ErrInvalidStatus
}

// ParseType converts a wire value into a DeviceType.
func ParseType(s string) (domainDevice.DeviceType, error) {
	switch domainDevice.DeviceType(s) {
	case domainDevice.TypeSensor, domainDevice.TypeFan, domainDevice.TypeHeater,
		domainDevice.TypeMotor, domainDevice.TypeOther:
		return domainDevice.DeviceType(s), nil
	}
	return "", domainDevice.ErrInvalidType
}
