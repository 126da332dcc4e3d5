package warranty

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainWarranty "incubator-admin/internal/domain/warranty"
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
	return NewService(memory.NewSeededStores().Warranties)
}

func TestReportIssue(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// WRT-2024-002 has no issues and full allowance.
	updated, err := svc.ReportIssue(ctx, "WRT-2024-002", &ReportIssueRequest{
		Type:        "Nhiệt độ",
		Description: "Nhiệt độ dao động bất thường trong đêm",
	})
	require.NoError(t, err)

	require.Len(t, updated.Issues, 1)
	issue := updated.Issues[0]
	assert.Equal(t, "ISS-005", issue.IssueID)
	assert.Equal(t, "reported", issue.Status)
	assert.Equal(t, time.Now().Format("2006-01-02"), issue.Date)
	assert.Equal(t, 1, updated.ServiceCount)
}

func TestReportIssueExpiredWarranty(t *testing.T) {
	svc := newTestService()

	_, err := svc.ReportIssue(context.Background(), "WRT-2024-003", &ReportIssueRequest{
		Type:        "Motor",
		Description: "Motor đảo trứng dừng giữa chu kỳ",
	})
	assert.ErrorIs(t, err, domainWarranty.ErrWarrantyExpired)
}

func TestReportIssueServiceExhausted(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// WRT-2024-004 starts at 2 of 3 services used.
	_, err := svc.ReportIssue(ctx, "WRT-2024-004", &ReportIssueRequest{
		Type:        "Điện",
		Description: "Bảng điều khiển chập chờn khi khởi động",
	})
	require.NoError(t, err)

	_, err = svc.ReportIssue(ctx, "WRT-2024-004", &ReportIssueRequest{
		Type:        "Điện",
		Description: "Bảng điều khiển tiếp tục chập chờn",
	})
	assert.ErrorIs(t, err, domainWarranty.ErrServiceExhausted)
}

func TestUpdateIssueResolution(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// ISS-004 on WRT-2024-004 is in progress.
	updated, err := svc.UpdateIssue(ctx, "WRT-2024-004", "ISS-004", &UpdateIssueRequest{
		Status: "resolved",
		Notes:  "Đã thay cảm biến độ ẩm mới",
	})
	require.NoError(t, err)

	require.Len(t, updated.Issues, 1)
	assert.Equal(t, "resolved", updated.Issues[0].Status)
	assert.Equal(t, time.Now().Format("2006-01-02"), updated.Issues[0].ResolutionDate)

	_, err = svc.UpdateIssue(ctx, "WRT-2024-004", "ISS-999", &UpdateIssueRequest{Status: "resolved"})
	assert.ErrorIs(t, err, domainWarranty.ErrIssueNotFound)
}

func TestListWarrantiesByStatus(t *testing.T) {
	svc := newTestService()

	list, err := svc.ListWarranties(context.Background(), &WarrantyFilterRequest{Status: "active"})
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)

	stats, err := svc.GetStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Expiring)
	assert.Equal(t, 1, stats.Expired)
}
