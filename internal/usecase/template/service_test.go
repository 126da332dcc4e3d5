package template

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainTemplate "incubator-admin/internal/domain/template"
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

func newTestService() *Service {
	return NewService(memory.NewSeededStores().Templates)
}

func TestCreateTemplateFormatsDisplayStrings(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateTemplate(ctx, &CreateTemplateRequest{
		Name:           "Trứng Cút",
		Icon:           "🐦",
		TempMin:        37.5,
		TempMax:        38,
		HumidityMin:    55,
		HumidityMax:    65,
		DurationDays:   17,
		TurnCycleHours: 1.5,
	})
	require.NoError(t, err)

	assert.Equal(t, "T006", created.ID)
	assert.Equal(t, "37.5-38°C", created.Temperature)
	assert.Equal(t, "55-65%", created.Humidity)
	assert.Equal(t, "17 ngày", created.Duration)
	assert.Equal(t, "1.5 giờ", created.TurnCycle)
}

func TestCreateTemplateRejectsInvalidIcon(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateTemplate(context.Background(), &CreateTemplateRequest{
		Name:           "Trứng Rồng",
		Icon:           "🐉",
		TempMin:        37,
		TempMax:        38,
		HumidityMin:    50,
		HumidityMax:    60,
		DurationDays:   21,
		TurnCycleHours: 2,
	})
	assert.ErrorIs(t, err, domainTemplate.ErrInvalidIcon)
}

func TestCreateTemplateRejectsInvertedRange(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateTemplate(context.Background(), &CreateTemplateRequest{
		Name:           "Trứng Gà",
		Icon:           "🐔",
		TempMin:        38,
		TempMax:        37,
		HumidityMin:    50,
		HumidityMax:    60,
		DurationDays:   21,
		TurnCycleHours: 2,
	})
	assert.ErrorIs(t, err, domainTemplate.ErrInvalidRange)
}

func TestGetTemplateParsesNumericValues(t *testing.T) {
	svc := newTestService()

	resp, err := svc.GetTemplate(context.Background(), "T001")
	require.NoError(t, err)

	assert.Equal(t, "Trứng Gà", resp.Name)
	assert.Equal(t, 37.5, resp.TempMin)
	assert.Equal(t, 38.0, resp.TempMax)
	assert.Equal(t, 55.0, resp.HumidityMin)
	assert.Equal(t, 65.0, resp.HumidityMax)
	assert.Equal(t, 21.0, resp.DurationDays)
	assert.Equal(t, 2.0, resp.TurnCycleHours)
}

func TestUpdateTemplateOnlyTouchesTarget(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	updated, err := svc.UpdateTemplate(ctx, "T002", &UpdateTemplateRequest{
		Name:           "Trứng Vịt Xiêm",
		Icon:           "🦆",
		TempMin:        37,
		TempMax:        37.5,
		HumidityMin:    58,
		HumidityMax:    62,
		DurationDays:   30,
		TurnCycleHours: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Trứng Vịt Xiêm", updated.Name)
	assert.Equal(t, "30 ngày", updated.Duration)

	list, err := svc.ListTemplates(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, list.Total)
	for _, tpl := range list.Templates {
		if tpl.ID == "T001" {
			assert.Equal(t, "Trứng Gà", tpl.Name)
			assert.Equal(t, "21 ngày", tpl.Duration)
		}
	}

	_, err = svc.UpdateTemplate(ctx, "T999", &UpdateTemplateRequest{
		Name:           "Không tồn tại",
		Icon:           "🐔",
		TempMin:        37,
		TempMax:        38,
		HumidityMin:    50,
		HumidityMax:    60,
		DurationDays:   21,
		TurnCycleHours: 2,
	})
	assert.ErrorIs(t, err, domainTemplate.ErrTemplateNotFound)
}

func TestListTemplatesSearch(t *testing.T) {
	svc := newTestService()

	list, err := svc.ListTemplates(context.Background(), &TemplateFilterRequest{Search: "vịt"})
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "T002", list.Templates[0].ID)
	assert.Empty(t, list.PageTokens)
}
