package ticket

import (
	"context"
	"fmt"
	"time"

	domainTicket "incubator-admin/internal/domain/ticket"
	"incubator-admin/internal/logger"
	appErrors "incubator-admin/pkg/errors"
	"incubator-admin/pkg/pagination"
	"incubator-admin/pkg/utils"

	"go.uber.org/zap"
)

// Service implements support queue use cases.
type Service struct {
	ticketRepo domainTicket.Repository
}

// NewService creates a new ticket service.
func NewService(ticketRepo domainTicket.Repository) *Service {
	return &Service{ticketRepo: ticketRepo}
}

func (s *Service) CreateTicket(ctx context.Context, req *CreateTicketRequest) (*TicketResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	count, err := s.ticketRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ticket := &domainTicket.Ticket{
		ID:        fmt.Sprintf("TKT-%d-%03d", now.Year(), count+1),
		DeviceID:  req.DeviceID,
		Customer:  req.Customer,
		Issue:     req.Issue,
		Status:    domainTicket.StatusNew,
		Priority:  domainTicket.Priority(req.Priority),
		CreatedAt: now.Format("2006-01-02 15:04"),
		HasImage:  req.HasImage,
	}

	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}

	logger.Info("Ticket opened",
		zap.String("ticket_id", ticket.ID),
		zap.String("device_id", ticket.DeviceID),
		zap.String("priority", string(ticket.Priority)),
		zap.String("event", "ticket_opened"),
	)

	return ToTicketResponse(ticket), nil
}

func (s *Service) GetTicket(ctx context.Context, id string) (*TicketResponse, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToTicketResponse(ticket), nil
}

// UpdateStatus moves a ticket through the queue. Taking a ticket into
// processing requires an assignee; completing it records the solution.
func (s *Service) UpdateStatus(ctx context.Context, id string, req *UpdateTicketStatusRequest) (*TicketResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	ticket, err := s.ticketRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	target := domainTicket.TicketStatus(req.Status)
	if err := ValidateStatusTransition(ticket.Status, target); err != nil {
		return nil, err
	}

	if target == domainTicket.StatusProcessing {
		if req.Assignee == "" && ticket.Assignee == "" {
			return nil, domainTicket.ErrAssigneeRequired
		}
	}

	ticket.Status = target
	if req.Assignee != "" {
		ticket.Assignee = req.Assignee
	}
	if req.Solution != "" {
		ticket.Solution = req.Solution
	}

	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}

	logger.Info("Ticket status updated",
		zap.String("ticket_id", id),
		zap.String("status", req.Status),
		zap.String("event", "ticket_status_updated"),
	)

	return ToTicketResponse(ticket), nil
}

func (s *Service) ListTickets(ctx context.Context, filter *TicketFilterRequest) (*TicketListResponse, error) {
	if filter == nil {
		filter = &TicketFilterRequest{}
	}
	filter.Page, filter.PageSize = pagination.Clamp(filter.Page, filter.PageSize, 20, 100)

	tickets, total, err := s.ticketRepo.List(ctx, ToDomainFilter(filter))
	if err != nil {
		return nil, err
	}

	responses := make([]TicketResponse, len(tickets))
	for i, t := range tickets {
		responses[i] = *ToTicketResponse(t)
	}

	totalPages := pagination.PageCount(total, filter.PageSize)
	from, to := pagination.Range(filter.Page, filter.PageSize, total)

	return &TicketListResponse{
		Tickets:     responses,
		Total:       total,
		Page:        filter.Page,
		PageSize:    filter.PageSize,
		TotalPages:  totalPages,
		PageTokens:  pageTokens(filter.Page, totalPages),
		ShowingFrom: from,
		ShowingTo:   to,
	}, nil
}

func (s *Service) GetStatistics(ctx context.Context) (*TicketStatisticsResponse, error) {
	stats, err := s.ticketRepo.Statistics(ctx)
	if err != nil {
		return nil, err
	}
	return &TicketStatisticsResponse{
		Total:      stats.Total,
		New:        stats.New,
		Processing: stats.Processing,
		Done:       stats.Done,
	}, nil
}
