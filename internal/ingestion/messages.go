// Package ingestion feeds live incubator telemetry from the MQTT broker
// into the device fleet. It is optional; without a broker the fleet simply
// keeps its seeded readings.
package ingestion

// TelemetryMessage is the sensor reading units publish. Absent fields leave
// the stored value untouched.
type TelemetryMessage struct {
	DeviceID    string   `json:"device_id"`
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	FanSpeed    *int     `json:"fan_speed"`
	HeaterOn    *bool    `json:"heater_on"`
}

// StatusMessage announces an operational state change for a unit.
type StatusMessage struct {
	DeviceID string `json:"device_id"`
	Status   string `json:"status"`
}
