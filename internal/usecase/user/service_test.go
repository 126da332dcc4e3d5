package user

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainUser "incubator-admin/internal/domain/user"
	"incubator-admin/internal/logger"
	"incubator-admin/internal/memory"
	appErrors "incubator-admin/pkg/errors"
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
	return NewService(memory.NewSeededStores().Users)
}

func TestDeleteUserFailsClosedWithoutConfirmation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	err := svc.DeleteUser(ctx, "U004", false)
	assert.ErrorIs(t, err, appErrors.ErrDeleteNotConfirmed)

	// The account is untouched.
	u, err := svc.GetUser(ctx, "U004")
	require.NoError(t, err)
	assert.Equal(t, "Phạm Thị D", u.Name)

	require.NoError(t, svc.DeleteUser(ctx, "U004", true))
	_, err = svc.GetUser(ctx, "U004")
	assert.ErrorIs(t, err, domainUser.ErrUserNotFound)
}

func TestDeleteUserUnknownID(t *testing.T) {
	svc := newTestService()
	err := svc.DeleteUser(context.Background(), "U999", true)
	assert.ErrorIs(t, err, domainUser.ErrUserNotFound)
}

func TestCreateUserDefaults(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, &CreateUserRequest{
		Name:  "Võ Thị F",
		Email: "vtf@example.com",
		Phone: "0934567890",
		Role:  "staff",
	})
	require.NoError(t, err)
	assert.Equal(t, "U006", created.ID)
	assert.Equal(t, "active", created.Status)

	stats, err := svc.GetStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 3, stats.Staff)
}

func TestCreateUserAfterMiddleDelete(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.DeleteUser(ctx, "U002", true))

	// U005 survives the delete, so the next ID must step past it rather
	// than being re-derived from the shrunken count.
	created, err := svc.CreateUser(ctx, &CreateUserRequest{
		Name:  "Đỗ Văn G",
		Email: "dvg@example.com",
		Phone: "0945678901",
		Role:  "user",
	})
	require.NoError(t, err)
	assert.Equal(t, "U006", created.ID)

	u5, err := svc.GetUser(ctx, "U005")
	require.NoError(t, err)
	assert.NotEqual(t, created.Name, u5.Name)
}

func TestCreateUserRejectsBadPhone(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateUser(context.Background(), &CreateUserRequest{
		Name:  "Người Lạ",
		Email: "stranger@example.com",
		Phone: "12345",
		Role:  "user",
	})
	require.Error(t, err)
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestListUsersFilters(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	byRole, err := svc.ListUsers(ctx, &UserFilterRequest{Role: "staff"})
	require.NoError(t, err)
	assert.Equal(t, 2, byRole.Total)

	byStatus, err := svc.ListUsers(ctx, &UserFilterRequest{Status: "inactive"})
	require.NoError(t, err)
	require.Equal(t, 1, byStatus.Total)
	assert.Equal(t, "U005", byStatus.Users[0].ID)

	all, err := svc.ListUsers(ctx, &UserFilterRequest{Role: "all", Status: "all"})
	require.NoError(t, err)
	assert.Equal(t, 5, all.Total)
}
