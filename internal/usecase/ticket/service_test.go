package ticket

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainTicket "incubator-admin/internal/domain/ticket"
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
	return NewService(memory.NewSeededStores().Tickets)
}

func TestValidateStatusTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    domainTicket.TicketStatus
		to      domainTicket.TicketStatus
		wantErr bool
	}{
		{"new to processing", domainTicket.StatusNew, domainTicket.StatusProcessing, false},
		{"processing to done", domainTicket.StatusProcessing, domainTicket.StatusDone, false},
		{"new to done skips processing", domainTicket.StatusNew, domainTicket.StatusDone, true},
		{"done is terminal", domainTicket.StatusDone, domainTicket.StatusProcessing, true},
		{"no going back", domainTicket.StatusProcessing, domainTicket.StatusNew, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStatusTransition(tt.from, tt.to)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainTicket.ErrInvalidTransition)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateStatusRequiresAssignee(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// TKT-2024-002 is new and unassigned.
	_, err := svc.UpdateStatus(ctx, "TKT-2024-002", &UpdateTicketStatusRequest{
		Status: "processing",
	})
	assert.ErrorIs(t, err, domainTicket.ErrAssigneeRequired)

	updated, err := svc.UpdateStatus(ctx, "TKT-2024-002", &UpdateTicketStatusRequest{
		Status:   "processing",
		Assignee: "Kỹ thuật viên Hùng",
	})
	require.NoError(t, err)
	assert.Equal(t, "processing", updated.Status)
	assert.Equal(t, "Kỹ thuật viên Hùng", updated.Assignee)
}

func TestUpdateStatusRecordsSolution(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// TKT-2024-001 is already processing with an assignee.
	updated, err := svc.UpdateStatus(ctx, "TKT-2024-001", &UpdateTicketStatusRequest{
		Status:   "done",
		Solution: "Thay bộ gia nhiệt và kiểm tra lại cảm biến",
	})
	require.NoError(t, err)
	assert.Equal(t, "done", updated.Status)
	assert.Equal(t, "Thay bộ gia nhiệt và kiểm tra lại cảm biến", updated.Solution)

	// Done tickets reject further moves.
	_, err = svc.UpdateStatus(ctx, "TKT-2024-001", &UpdateTicketStatusRequest{
		Status: "processing",
	})
	assert.ErrorIs(t, err, domainTicket.ErrInvalidTransition)
}

func TestCreateTicketEntersQueueAsNew(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateTicket(ctx, &CreateTicketRequest{
		DeviceID: "INC-2024-003",
		Customer: "Lê Văn C",
		Issue:    "Quạt tản nhiệt kêu to bất thường khi chạy",
		Priority: "medium",
	})
	require.NoError(t, err)
	assert.Equal(t, "new", created.Status)
	assert.Empty(t, created.Assignee)

	stats, err := svc.GetStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 3, stats.New)
}

func TestListTicketsFilterByPriority(t *testing.T) {
	svc := newTestService()

	list, err := svc.ListTickets(context.Background(), &TicketFilterRequest{Priority: "high"})
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	for _, tk := range list.Tickets {
		assert.Equal(t, "high", tk.Priority)
	}
}
