package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"incubator-admin/internal/domain/device"
	"incubator-admin/internal/domain/template"
	"incubator-admin/internal/domain/user"
	"incubator-admin/internal/domain/warranty"
)

func TestSeededStores(t *testing.T) {
	s := NewSeededStores()
	ctx := context.Background()

	products, err := s.Products.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 5)

	templates, total, err := s.Templates.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, templates, 5)

	stats, err := s.Devices.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, stats.Total, stats.Running+stats.Warning+stats.Maintenance)
}

func TestTemplateUpdateIsolation(t *testing.T) {
	s := NewSeededStores()
	ctx := context.Background()

	updated := &template.Template{
		ID:          "T002",
		Name:        "Trứng Vịt Xiêm",
		Icon:        "🦆",
		Temperature: "37-37.5°C",
		Humidity:    "58-62%",
		Duration:    "30 ngày",
		TurnCycle:   "2 giờ",
		Users:       89,
		Sessions:    178,
		SuccessRate: 88,
	}
	require.NoError(t, s.Templates.Update(ctx, updated))

	all, total, err := s.Templates.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, total)

	for _, tpl := range all {
		switch tpl.ID {
		case "T002":
			assert.Equal(t, "Trứng Vịt Xiêm", tpl.Name)
			assert.Equal(t, "30 ngày", tpl.Duration)
		case "T001":
			assert.Equal(t, "Trứng Gà", tpl.Name)
		}
	}
}

func TestTemplateUpdateUnknownID(t *testing.T) {
	s := NewSeededStores()
	err := s.Templates.Update(context.Background(), &template.Template{ID: "T999"})
	assert.ErrorIs(t, err, template.ErrTemplateNotFound)
}

func TestDeviceListFilterIdempotent(t *testing.T) {
	s := NewSeededStores()
	ctx := context.Background()
	filter := &device.Filter{Status: string(device.StatusRunning)}

	first, firstTotal, err := s.Devices.List(ctx, filter)
	require.NoError(t, err)
	second, secondTotal, err := s.Devices.List(ctx, filter)
	require.NoError(t, err)

	assert.Equal(t, firstTotal, secondTotal)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
	for _, d := range first {
		assert.Equal(t, device.StatusRunning, d.Status)
	}
}

func TestDeviceUpdateTelemetry(t *testing.T) {
	s := NewSeededStores()
	ctx := context.Background()

	temp := 39.1
	humidity := 70.0
	err := s.Devices.UpdateTelemetry(ctx, "INC-2024-001", device.Telemetry{
		Temperature: &temp,
		Humidity:    &humidity,
	})
	require.NoError(t, err)

	d, err := s.Devices.GetByID(ctx, "INC-2024-001")
	require.NoError(t, err)
	assert.Equal(t, 39.1, d.Temperature)
	assert.Equal(t, 70.0, d.Humidity)
	// Fields absent from the telemetry message keep their previous value.
	assert.Equal(t, 85, d.FanSpeed)
	assert.True(t, d.HeaterOn)

	err = s.Devices.UpdateTelemetry(ctx, "INC-9999-000", device.Telemetry{Temperature: &temp})
	assert.ErrorIs(t, err, device.ErrDeviceNotFound)
}

func TestUserDelete(t *testing.T) {
	s := NewSeededStores()
	ctx := context.Background()

	require.NoError(t, s.Users.Delete(ctx, "U005"))

	_, err := s.Users.GetByID(ctx, "U005")
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	count, err := s.Users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	assert.ErrorIs(t, s.Users.Delete(ctx, "U005"), user.ErrUserNotFound)
}

func TestWarrantyIssueSliceIsolation(t *testing.T) {
	s := NewSeededStores()
	ctx := context.Background()

	w, err := s.Warranties.GetByID(ctx, "WRT-2024-001")
	require.NoError(t, err)
	require.Len(t, w.Issues, 1)

	w.Issues[0].Status = warranty.IssueReported
	w.Issues[0].Notes = "scratch"

	fresh, err := s.Warranties.GetByID(ctx, "WRT-2024-001")
	require.NoError(t, err)
	assert.Equal(t, warranty.IssueResolved, fresh.Issues[0].Status)
	assert.Equal(t, "Thay cảm biến nhiệt độ", fresh.Issues[0].Notes)
}
