package warranty

import (
	"context"
	"fmt"
	"time"

	domainWarranty "incubator-admin/internal/domain/warranty"
	"incubator-admin/internal/logger"
	appErrors "incubator-admin/pkg/errors"
	"incubator-admin/pkg/pagination"
	"incubator-admin/pkg/utils"

	"go.uber.org/zap"
)

// Service implements warranty desk use cases.
type Service struct {
	warrantyRepo domainWarranty.Repository
}

// NewService creates a new warranty service.
func NewService(warrantyRepo domainWarranty.Repository) *Service {
	return &Service{warrantyRepo: warrantyRepo}
}

func (s *Service) GetWarranty(ctx context.Context, id string) (*WarrantyResponse, error) {
	warranty, err := s.warrantyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToWarrantyResponse(warranty), nil
}

func (s *Service) ListWarranties(ctx context.Context, filter *WarrantyFilterRequest) (*WarrantyListResponse, error) {
	if filter == nil {
		filter = &WarrantyFilterRequest{}
	}
	filter.Page, filter.PageSize = pagination.Clamp(filter.Page, filter.PageSize, 20, 100)

	warranties, total, err := s.warrantyRepo.List(ctx, ToDomainFilter(filter))
	if err != nil {
		return nil, err
	}

	responses := make([]WarrantyResponse, len(warranties))
	for i, w := range warranties {
		responses[i] = *ToWarrantyResponse(w)
	}

	totalPages := pagination.PageCount(total, filter.PageSize)
	from, to := pagination.Range(filter.Page, filter.PageSize, total)

	return &WarrantyListResponse{
		Warranties:  responses,
		Total:       total,
		Page:        filter.Page,
		PageSize:    filter.PageSize,
		TotalPages:  totalPages,
		PageTokens:  pageTokens(filter.Page, totalPages),
		ShowingFrom: from,
		ShowingTo:   to,
	}, nil
}

// ReportIssue records a service event under the warranty. Expired coverage
// and exhausted service allowances both reject the report.
func (s *Service) ReportIssue(ctx context.Context, warrantyID string, req *ReportIssueRequest) (*WarrantyResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	warranty, err := s.warrantyRepo.GetByID(ctx, warrantyID)
	if err != nil {
		return nil, err
	}

	if warranty.Status == domainWarranty.StatusExpired {
		return nil, domainWarranty.ErrWarrantyExpired
	}
	if warranty.ServiceExhausted() {
		return nil, domainWarranty.ErrServiceExhausted
	}

	issueID, err := s.nextIssueID(ctx)
	if err != nil {
		return nil, err
	}

	warranty.Issues = append(warranty.Issues, domainWarranty.TechnicalIssue{
		IssueID:     issueID,
		Date:        time.Now().Format("2006-01-02"),
		Type:        req.Type,
		Description: req.Description,
		Status:      domainWarranty.IssueReported,
		Notes:       req.Notes,
	})
	warranty.ServiceCount++

	if err := s.warrantyRepo.Update(ctx, warranty); err != nil {
		return nil, err
	}

	logger.Info("Warranty issue reported",
		zap.String("warranty_id", warrantyID),
		zap.String("issue_id", issueID),
		zap.String("type", req.Type),
		zap.String("event", "warranty_issue_reported"),
	)

	return ToWarrantyResponse(warranty), nil
}

// UpdateIssue moves a reported issue along; resolving it stamps the
// resolution date.
func (s *Service) UpdateIssue(ctx context.Context, warrantyID, issueID string, req *UpdateIssueRequest) (*WarrantyResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	warranty, err := s.warrantyRepo.GetByID(ctx, warrantyID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range warranty.Issues {
		if warranty.Issues[i].IssueID != issueID {
			continue
		}
		warranty.Issues[i].Status = domainWarranty.IssueStatus(req.Status)
		if req.Notes != "" {
			warranty.Issues[i].Notes = req.Notes
		}
		if warranty.Issues[i].Status == domainWarranty.IssueResolved {
			warranty.Issues[i].ResolutionDate = time.Now().Format("2006-01-02")
		}
		found = true
		break
	}
	if !found {
		return nil, domainWarranty.ErrIssueNotFound
	}

	if err := s.warrantyRepo.Update(ctx, warranty); err != nil {
		return nil, err
	}

	logger.Info("Warranty issue updated",
		zap.String("warranty_id", warrantyID),
		zap.String("issue_id", issueID),
		zap.String("status", req.Status),
		zap.String("event", "warranty_issue_updated"),
	)

	return ToWarrantyResponse(warranty), nil
}

func (s *Service) GetStatistics(ctx context.Context) (*WarrantyStatisticsResponse, error) {
	stats, err := s.warrantyRepo.Statistics(ctx)
	if err != nil {
		return nil, err
	}
	return &WarrantyStatisticsResponse{
		Total:    stats.Total,
		Active:   stats.Active,
		Expiring: stats.Expiring,
		Expired:  stats.Expired,
	}, nil
}

// nextIssueID numbers issues sequentially across all warranties.
func (s *Service) nextIssueID(ctx context.Context) (string, error) {
	warranties, _, err := s.warrantyRepo.List(ctx, nil)
	if err != nil {
		return "", err
	}
	count := 0
	for _, w := range warranties {
		count += len(w.Issues)
	}
	return fmt.Sprintf("ISS-%03d", count+1), nil
}
