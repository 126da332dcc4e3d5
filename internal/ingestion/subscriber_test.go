package ingestion

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainDevice "incubator-admin/internal/domain/device"
	"incubator-admin/internal/logger"
	"incubator-admin/internal/memory"
)

func TestMain(m *testing.M) {
	if err := logger.Init("production"); err != nil {
		panic(err)
	}
	code := m.Run()
	logger.Sync()
	os.Exit(code)
}

func newTestSubscriber() (*Subscriber, *memory.DeviceRepository) {
	repo := memory.NewSeededStores().Devices
	s := NewSubscriber(nil, repo, Config{
		TelemetryTopic: "incubators/+/telemetry",
		StatusTopic:    "incubators/+/status",
	})
	return s, repo
}

func TestHandleTelemetry(t *testing.T) {
	s, repo := newTestSubscriber()

	s.handleTelemetry("incubators/INC-2024-001/telemetry",
		[]byte(`{"device_id":"INC-2024-001","temperature":38.9,"fan_speed":90}`))

	d, err := repo.GetByID(context.Background(), "INC-2024-001")
	require.NoError(t, err)
	assert.Equal(t, 38.9, d.Temperature)
	assert.Equal(t, 90, d.FanSpeed)
	// Humidity was not in the message and keeps the seeded value.
	assert.Equal(t, 65.0, d.Humidity)
}

func TestHandleTelemetryDropsBadMessages(t *testing.T) {
	s, repo := newTestSubscriber()

	before, err := repo.GetByID(context.Background(), "INC-2024-001")
	require.NoError(t, err)

	s.handleTelemetry("incubators/x/telemetry", []byte(`not json`))
	s.handleTelemetry("incubators/x/telemetry", []byte(`{"temperature":40}`))
	s.handleTelemetry("incubators/x/telemetry", []byte(`{"device_id":"INC-9999-000","temperature":40}`))

	after, err := repo.GetByID(context.Background(), "INC-2024-001")
	require.NoError(t, err)
	assert.Equal(t, before.Temperature, after.Temperature)
}

func TestHandleStatus(t *testing.T) {
	s, repo := newTestSubscriber()

	s.handleStatus("incubators/INC-2024-001/status",
		[]byte(`{"device_id":"INC-2024-001","status":"maintenance"}`))

	d, err := repo.GetByID(context.Background(), "INC-2024-001")
	require.NoError(t, err)
	assert.Equal(t, domainDevice.StatusMaintenance, d.Status)

	// Unknown vocabulary never reaches the repository.
	s.handleStatus("incubators/INC-2024-001/status",
		[]byte(`{"device_id":"INC-2024-001","status":"exploded"}`))

	d, err = repo.GetByID(context.Background(), "INC-2024-001")
	require.NoError(t, err)
	assert.Equal(t, domainDevice.StatusMaintenance, d.Status)
}
