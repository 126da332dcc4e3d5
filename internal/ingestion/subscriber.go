package ingestion

import (
	"context"
	"encoding/json"

	domainDevice "incubator-admin/internal/domain/device"
	"incubator-admin/internal/logger"
	"incubator-admin/pkg/mqtt"

	"go.uber.org/zap"
)

// Config carries the broker topics the subscriber listens on.
type Config struct {
	TelemetryTopic string
	StatusTopic    string
	QoS            byte
}

// Subscriber routes broker messages into the device repository.
type Subscriber struct {
	client     *mqtt.Client
	deviceRepo domainDevice.Repository
	config     Config
}

// NewSubscriber creates a subscriber over an unconnected MQTT client.
func NewSubscriber(client *mqtt.Client, deviceRepo domainDevice.Repository, config Config) *Subscriber {
	return &Subscriber{
		client:     client,
		deviceRepo: deviceRepo,
		config:     config,
	}
}

// Start connects to the broker and subscribes to both topics.
func (s *Subscriber) Start() error {
	if err := s.client.Connect(); err != nil {
		return err
	}
	if err := s.client.Subscribe(s.config.TelemetryTopic, s.config.QoS, s.handleTelemetry); err != nil {
		return err
	}
	if err := s.client.Subscribe(s.config.StatusTopic, s.config.QoS, s.handleStatus); err != nil {
		return err
	}

	logger.Info("Telemetry ingestion started",
		zap.String("telemetry_topic", s.config.TelemetryTopic),
		zap.String("status_topic", s.config.StatusTopic),
		zap.String("event", "ingestion_started"),
	)
	return nil
}

// Stop unsubscribes and drops the broker connection.
func (s *Subscriber) Stop() {
	_ = s.client.Unsubscribe(s.config.TelemetryTopic, s.config.StatusTopic)
	s.client.Disconnect()
}

func (s *Subscriber) handleTelemetry(topic string, payload []byte) {
	var msg TelemetryMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		logger.Warn("Dropping malformed telemetry message",
			zap.String("topic", topic),
			zap.Error(err),
		)
		return
	}
	if msg.DeviceID == "" {
		logger.Warn("Dropping telemetry message without device_id", zap.String("topic", topic))
		return
	}

	err := s.deviceRepo.UpdateTelemetry(context.Background(), msg.DeviceID, domainDevice.Telemetry{
		Temperature: msg.Temperature,
		Humidity:    msg.Humidity,
		FanSpeed:    msg.FanSpeed,
		HeaterOn:    msg.HeaterOn,
	})
	if err != nil {
		logger.Warn("Telemetry update failed",
			zap.String("device_id", msg.DeviceID),
			zap.Error(err),
		)
	}
}

func (s *Subscriber) handleStatus(topic string, payload []byte) {
	var msg StatusMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		logger.Warn("Dropping malformed status message",
			zap.String("topic", topic),
			zap.Error(err),
		)
		return
	}

	status := domainDevice.DeviceStatus(msg.Status)
	switch status {
	case domainDevice.StatusRunning, domainDevice.StatusWarning, domainDevice.StatusMaintenance:
	default:
		logger.Warn("Dropping status message with unknown status",
			zap.String("device_id", msg.DeviceID),
			zap.String("status", msg.Status),
		)
		return
	}

	if err := s.deviceRepo.UpdateStatus(context.Background(), msg.DeviceID, status); err != nil {
		logger.Warn("Status update failed",
			zap.String("device_id", msg.DeviceID),
			zap.Error(err),
		)
		return
	}

	logger.Info("Device status ingested",
		zap.String("device_id", msg.DeviceID),
		zap.String("status", msg.Status),
		zap.String("event", "device_status_ingested"),
	)
}
