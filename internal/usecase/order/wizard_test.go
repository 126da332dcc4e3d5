package order

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainOrder "incubator-admin/internal/domain/order"
	domainProduct "incubator-admin/internal/domain/product"
	"incubator-admin/internal/logger"
	"incubator-admin/internal/memory"
	"incubator-admin/pkg/utils"
)

func TestMain(m *testing.M) {
	if err := logger.Init("production"); err != nil {
		panic(err)
	}
	code := m.Run()
	logger.Sync()
	os.Exit(code)
}

func newTestWizard() (*Wizard, *memory.OrderRepository) {
	products := memory.NewProductRepository()
	products.Add(&domainProduct.Product{
		ID:       "P002",
		Name:     "Máy ấp trứng 100",
		Capacity: "100 trứng",
		Stock:    32,
		Price:    5200000,
	})
	orders := memory.NewOrderRepository()
	return NewWizard(orders, products), orders
}

func TestWizardFlow(t *testing.T) {
	w, _ := newTestWizard()
	ctx := context.Background()

	draft := w.Start(ctx)
	assert.Equal(t, StepProduct, draft.Step)
	assert.Equal(t, 1, draft.Quantity)
	assert.Equal(t, string(domainOrder.PaymentDeposit), draft.PaymentMethod)

	// Step 1 requires a product before advancing.
	_, err := w.Next(ctx, draft.ID)
	assert.ErrorIs(t, err, domainOrder.ErrProductRequired)

	_, err = w.Update(ctx, draft.ID, &UpdateDraftRequest{
		ProductID: utils.StringPtr("P002"),
		Quantity:  intPtr(2),
	})
	require.NoError(t, err)

	draft, err = w.Next(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, StepCustomer, draft.Step)

	// Step 2 requires name and phone.
	_, err = w.Next(ctx, draft.ID)
	assert.ErrorIs(t, err, domainOrder.ErrCustomerRequired)

	_, err = w.Update(ctx, draft.ID, &UpdateDraftRequest{
		CustomerName: utils.StringPtr("Nguyễn Văn A"),
		Phone:        utils.StringPtr("0912345678"),
	})
	require.NoError(t, err)

	draft, err = w.Next(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, StepPayment, draft.Step)

	summary, err := w.Summary(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10400000), summary.Total)
	assert.Equal(t, int64(30), summary.DepositPercent)
	assert.Equal(t, int64(3120000), summary.Deposit)
	assert.Equal(t, int64(7280000), summary.Remaining)
	assert.Equal(t, "10.400.000 ₫", summary.TotalFormatted)
	assert.Equal(t, "3.120.000 ₫", summary.DepositFormatted)

	created, err := w.Submit(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("ORD-%d-001", time.Now().Year()), created.ID)
	assert.Equal(t, string(domainOrder.StatusDeposit), created.Status)
	assert.Equal(t, "Máy ấp trứng 100", created.ProductName)
	assert.Equal(t, int64(10400000), created.Amount)
	assert.Equal(t, int64(3120000), created.DepositAmount)
	assert.Equal(t, time.Now().Format("2006-01-02"), created.Date)

	// The draft is gone once submitted.
	_, err = w.Get(ctx, draft.ID)
	assert.ErrorIs(t, err, domainOrder.ErrDraftNotFound)
}

func TestWizardFullPaymentShipsImmediately(t *testing.T) {
	w, _ := newTestWizard()
	ctx := context.Background()

	draft := w.Start(ctx)
	_, err := w.Update(ctx, draft.ID, &UpdateDraftRequest{
		ProductID:     utils.StringPtr("P002"),
		CustomerName:  utils.StringPtr("Trần Thị B"),
		Phone:         utils.StringPtr("0987654321"),
		PaymentMethod: utils.StringPtr("full"),
	})
	require.NoError(t, err)

	_, err = w.Next(ctx, draft.ID)
	require.NoError(t, err)
	_, err = w.Next(ctx, draft.ID)
	require.NoError(t, err)

	summary, err := w.Summary(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), summary.DepositPercent)
	assert.Equal(t, summary.Total, summary.Deposit)
	assert.Equal(t, int64(0), summary.Remaining)

	created, err := w.Submit(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domainOrder.StatusShipping), created.Status)
	assert.Equal(t, created.Amount, created.DepositAmount)
}

func TestWizardSubmitBeforePaymentStep(t *testing.T) {
	w, _ := newTestWizard()
	ctx := context.Background()

	draft := w.Start(ctx)
	_, err := w.Update(ctx, draft.ID, &UpdateDraftRequest{ProductID: utils.StringPtr("P002")})
	require.NoError(t, err)

	_, err = w.Submit(ctx, draft.ID)
	assert.ErrorIs(t, err, domainOrder.ErrNotOnPaymentStep)
}

func TestWizardSubmitRejectsBlankedCustomer(t *testing.T) {
	w, _ := newTestWizard()
	ctx := context.Background()

	draft := w.Start(ctx)
	_, err := w.Update(ctx, draft.ID, &UpdateDraftRequest{
		ProductID:    utils.StringPtr("P002"),
		CustomerName: utils.StringPtr("Hoàng Văn D"),
		Phone:        utils.StringPtr("0911222333"),
	})
	require.NoError(t, err)
	_, err = w.Next(ctx, draft.ID)
	require.NoError(t, err)
	_, err = w.Next(ctx, draft.ID)
	require.NoError(t, err)

	// On the payment step, blanking the name must not slip past the guard.
	_, err = w.Update(ctx, draft.ID, &UpdateDraftRequest{CustomerName: utils.StringPtr("")})
	require.NoError(t, err)

	_, err = w.Submit(ctx, draft.ID)
	assert.ErrorIs(t, err, domainOrder.ErrCustomerRequired)

	_, err = w.Update(ctx, draft.ID, &UpdateDraftRequest{CustomerName: utils.StringPtr("Hoàng Văn D")})
	require.NoError(t, err)

	created, err := w.Submit(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hoàng Văn D", created.CustomerName)
}

func TestWizardBackKeepsFields(t *testing.T) {
	w, _ := newTestWizard()
	ctx := context.Background()

	draft := w.Start(ctx)
	_, err := w.Update(ctx, draft.ID, &UpdateDraftRequest{
		ProductID:    utils.StringPtr("P002"),
		CustomerName: utils.StringPtr("Lê Văn C"),
		Phone:        utils.StringPtr("0901234567"),
	})
	require.NoError(t, err)

	_, err = w.Next(ctx, draft.ID)
	require.NoError(t, err)

	draft, err = w.Back(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, StepProduct, draft.Step)
	assert.Equal(t, "P002", draft.ProductID)
	assert.Equal(t, "Lê Văn C", draft.CustomerName)

	// Backing off the first step stays on the first step.
	draft, err = w.Back(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, StepProduct, draft.Step)
}

func TestWizardCancel(t *testing.T) {
	w, _ := newTestWizard()
	ctx := context.Background()

	draft := w.Start(ctx)
	require.NoError(t, w.Cancel(ctx, draft.ID))
	assert.ErrorIs(t, w.Cancel(ctx, draft.ID), domainOrder.ErrDraftNotFound)
}

func TestWizardUnknownProduct(t *testing.T) {
	w, _ := newTestWizard()
	ctx := context.Background()

	draft := w.Start(ctx)
	_, err := w.Update(ctx, draft.ID, &UpdateDraftRequest{ProductID: utils.StringPtr("P999")})
	assert.ErrorIs(t, err, domainProduct.ErrProductNotFound)
}

func intPtr(v int) *int { return &v }
