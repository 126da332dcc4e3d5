package user

import (
	"context"
	"fmt"
	"time"

	domainUser "incubator-admin/internal/domain/user"
	"incubator-admin/internal/logger"
	appErrors "incubator-admin/pkg/errors"
	"incubator-admin/pkg/pagination"
	"incubator-admin/pkg/utils"

	"go.uber.org/zap"
)

// Service implements account management use cases.
type Service struct {
	userRepo domainUser.Repository
}

// NewService creates a new user service.
func NewService(userRepo domainUser.Repository) *Service {
	return &Service{userRepo: userRepo}
}

func (s *Service) CreateUser(ctx context.Context, req *CreateUserRequest) (*UserResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	id, err := s.nextUserID(ctx)
	if err != nil {
		return nil, err
	}

	user := &domainUser.User{
		ID:       id,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     domainUser.Role(req.Role),
		Status:   domainUser.StatusActive,
		JoinDate: time.Now().Format("2006-01-02"),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User account created",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)),
		zap.String("event", "user_created"),
	)

	return ToUserResponse(user), nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

func (s *Service) UpdateUser(ctx context.Context, id string, req *UpdateUserRequest) (*UserResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Phone = req.Phone
	user.Role = domainUser.Role(req.Role)
	user.Status = domainUser.UserStatus(req.Status)

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User account updated",
		zap.String("user_id", id),
		zap.String("event", "user_updated"),
	)

	return ToUserResponse(user), nil
}

// DeleteUser removes an account. The confirmation flag from the delete
// dialog must be set; anything else fails closed.
func (s *Service) DeleteUser(ctx context.Context, id string, confirm bool) error {
	if !confirm {
		return appErrors.ErrDeleteNotConfirmed
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("User account deleted",
		zap.String("user_id", id),
		zap.String("event", "user_deleted"),
	)

	return nil
}

func (s *Service) ListUsers(ctx context.Context, filter *UserFilterRequest) (*UserListResponse, error) {
	if filter == nil {
		filter = &UserFilterRequest{}
	}
	filter.Page, filter.PageSize = pagination.Clamp(filter.Page, filter.PageSize, 20, 100)

	users, total, err := s.userRepo.List(ctx, ToDomainFilter(filter))
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, len(users))
	for i, u := range users {
		responses[i] = *ToUserResponse(u)
	}

	totalPages := pagination.PageCount(total, filter.PageSize)
	from, to := pagination.Range(filter.Page, filter.PageSize, total)

	return &UserListResponse{
		Users:       responses,
		Total:       total,
		Page:        filter.Page,
		PageSize:    filter.PageSize,
		TotalPages:  totalPages,
		PageTokens:  pageTokens(filter.Page, totalPages),
		ShowingFrom: from,
		ShowingTo:   to,
	}, nil
}

// nextUserID allocates the next U-prefixed ID from the highest suffix still
// in the store. Accounts can be deleted, so the record count alone would
// reissue a live ID.
func (s *Service) nextUserID(ctx context.Context) (string, error) {
	users, _, err := s.userRepo.List(ctx, &domainUser.Filter{})
	if err != nil {
		return "", err
	}

	max := 0
	for _, u := range users {
		var n int
		if _, err := fmt.Sscanf(u.ID, "U%d", &n); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("U%03d", max+1), nil
}

func (s *Service) GetStatistics(ctx context.Context) (*UserStatisticsResponse, error) {
	stats, err := s.userRepo.Statistics(ctx)
	if err != nil {
		return nil, err
	}
	return &UserStatisticsResponse{
		Total:  stats.Total,
		Admins: stats.Admins,
		Staff:  stats.Staff,
		Active: stats.Active,
	}, nil
}
