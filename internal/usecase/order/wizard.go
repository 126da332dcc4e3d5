package order

import (
	"context"
	"fmt"
	"sync"
	"time"

	domainOrder "incubator-admin/internal/domain/order"
	domainProduct "incubator-admin/internal/domain/product"
	"incubator-admin/internal/logger"
	appErrors "incubator-admin/pkg/errors"
	"incubator-admin/pkg/format"
	"incubator-admin/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Wizard steps. Step 1 picks a product, step 2 collects the customer,
// step 3 confirms payment and submits.
const (
	StepProduct = iota + 1
	StepCustomer
	StepPayment
)

// Draft is an in-progress order held by the three-step wizard. Drafts live
// only in memory; abandoning the wizard loses them.
type Draft struct {
	ID            string
	Step          int
	ProductID     string
	Quantity      int
	CustomerName  string
	Email         string
	Phone         string
	Address       string
	PaymentMethod domainOrder.PaymentMethod
	Notes         string
	CreatedAt     time.Time
}

// Wizard manages order drafts across the multi-step creation flow.
type Wizard struct {
	mu          sync.RWMutex
	drafts      map[string]*Draft
	orderRepo   domainOrder.Repository
	productRepo domainProduct.Repository
}

// NewWizard creates a wizard backed by the given repositories.
func NewWizard(orderRepo domainOrder.Repository, productRepo domainProduct.Repository) *Wizard {
	return &Wizard{
		drafts:      make(map[string]*Draft),
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// Start opens a fresh draft on step 1 with the form defaults.
func (w *Wizard) Start(ctx context.Context) *DraftResponse {
	draft := &Draft{
		ID:            uuid.NewString(),
		Step:          StepProduct,
		Quantity:      1,
		PaymentMethod: domainOrder.PaymentDeposit,
		CreatedAt:     time.Now(),
	}

	w.mu.Lock()
	w.drafts[draft.ID] = draft
	w.mu.Unlock()

	logger.Info("Order draft started",
		zap.String("draft_id", draft.ID),
		zap.String("event", "order_draft_started"),
	)

	return toDraftResponse(draft)
}

// Update applies the provided fields to the draft. Absent fields keep their
// current value, so partial form saves are safe.
func (w *Wizard) Update(ctx context.Context, draftID string, req *UpdateDraftRequest) (*DraftResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if req.ProductID != nil {
		if _, err := w.productRepo.GetByID(ctx, *req.ProductID); err != nil {
			return nil, err
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	draft, ok := w.drafts[draftID]
	if !ok {
		return nil, domainOrder.ErrDraftNotFound
	}

	if req.ProductID != nil {
		draft.ProductID = *req.ProductID
	}
	if req.Quantity != nil {
		draft.Quantity = *req.Quantity
	}
	if req.CustomerName != nil {
		draft.CustomerName = *req.CustomerName
	}
	if req.Email != nil {
		draft.Email = *req.Email
	}
	if req.Phone != nil {
		draft.Phone = *req.Phone
	}
	if req.Address != nil {
		draft.Address = *req.Address
	}
	if req.PaymentMethod != nil {
		draft.PaymentMethod = domainOrder.PaymentMethod(*req.PaymentMethod)
	}
	if req.Notes != nil {
		draft.Notes = *req.Notes
	}

	return toDraftResponse(draft), nil
}

// Next advances the draft one step, enforcing the per-step guards: a
// product must be selected before step 2, and the customer's name and phone
// must be filled before step 3.
func (w *Wizard) Next(ctx context.Context, draftID string) (*DraftResponse, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	draft, ok := w.drafts[draftID]
	if !ok {
		return nil, domainOrder.ErrDraftNotFound
	}

	switch draft.Step {
	case StepProduct:
		if draft.ProductID == "" {
			return nil, domainOrder.ErrProductRequired
		}
		draft.Step = StepCustomer
	case StepCustomer:
		if draft.CustomerName == "" || draft.Phone == "" {
			return nil, domainOrder.ErrCustomerRequired
		}
		draft.Step = StepPayment
	}

	return toDraftResponse(draft), nil
}

// Back returns the draft to the previous step. Entered fields are kept.
func (w *Wizard) Back(ctx context.Context, draftID string) (*DraftResponse, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	draft, ok := w.drafts[draftID]
	if !ok {
		return nil, domainOrder.ErrDraftNotFound
	}

	if draft.Step > StepProduct {
		draft.Step--
	}

	return toDraftResponse(draft), nil
}

// Get returns the current draft state.
func (w *Wizard) Get(ctx context.Context, draftID string) (*DraftResponse, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	draft, ok := w.drafts[draftID]
	if !ok {
		return nil, domainOrder.ErrDraftNotFound
	}
	return toDraftResponse(draft), nil
}

// Summary computes the payment breakdown for the confirmation step: the
// total, the share due now for the chosen payment method and the remainder
// due on delivery.
func (w *Wizard) Summary(ctx context.Context, draftID string) (*SummaryResponse, error) {
	w.mu.RLock()
	draft, ok := w.drafts[draftID]
	if !ok {
		w.mu.RUnlock()
		return nil, domainOrder.ErrDraftNotFound
	}
	snapshot := *draft
	w.mu.RUnlock()

	if snapshot.ProductID == "" {
		return nil, domainOrder.ErrProductRequired
	}

	product, err := w.productRepo.GetByID(ctx, snapshot.ProductID)
	if err != nil {
		return nil, err
	}

	return buildSummary(product, &snapshot), nil
}

// Submit turns the draft into a persisted order and discards the draft.
// Full payment ships immediately; a deposit parks the order until the
// remainder is settled.
func (w *Wizard) Submit(ctx context.Context, draftID string) (*OrderResponse, error) {
	w.mu.Lock()
	draft, ok := w.drafts[draftID]
	if !ok {
		w.mu.Unlock()
		return nil, domainOrder.ErrDraftNotFound
	}
	snapshot := *draft
	w.mu.Unlock()

	if snapshot.Step != StepPayment {
		return nil, domainOrder.ErrNotOnPaymentStep
	}
	// The step guards are re-checked here: Update can blank a field after
	// the draft has already passed its step.
	if snapshot.ProductID == "" {
		return nil, domainOrder.ErrProductRequired
	}
	if snapshot.CustomerName == "" || snapshot.Phone == "" {
		return nil, domainOrder.ErrCustomerRequired
	}

	product, err := w.productRepo.GetByID(ctx, snapshot.ProductID)
	if err != nil {
		return nil, err
	}

	summary := buildSummary(product, &snapshot)

	status := domainOrder.StatusDeposit
	if snapshot.PaymentMethod == domainOrder.PaymentFull {
		status = domainOrder.StatusShipping
	}

	count, err := w.orderRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &domainOrder.Order{
		ID:            fmt.Sprintf("ORD-%d-%03d", now.Year(), count+1),
		CustomerName:  snapshot.CustomerName,
		Email:         snapshot.Email,
		Phone:         snapshot.Phone,
		Address:       snapshot.Address,
		ProductID:     product.ID,
		ProductName:   product.Name,
		Quantity:      snapshot.Quantity,
		Status:        status,
		Amount:        summary.Total,
		DepositAmount: summary.Deposit,
		PaymentMethod: snapshot.PaymentMethod,
		Date:          now.Format("2006-01-02"),
		QRCode:        fmt.Sprintf("INC-%d-%d", now.Year(), 100+count),
		Notes:         snapshot.Notes,
	}

	if err := w.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	w.mu.Lock()
	delete(w.drafts, draftID)
	w.mu.Unlock()

	logger.Info("Order created",
		zap.String("order_id", order.ID),
		zap.String("product_id", order.ProductID),
		zap.String("payment_method", string(order.PaymentMethod)),
		zap.Int64("amount", order.Amount),
		zap.String("event", "order_created"),
	)

	return ToOrderResponse(order), nil
}

// Cancel discards the draft without creating an order.
func (w *Wizard) Cancel(ctx context.Context, draftID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.drafts[draftID]; !ok {
		return domainOrder.ErrDraftNotFound
	}
	delete(w.drafts, draftID)
	return nil
}

func buildSummary(p *domainProduct.Product, d *Draft) *SummaryResponse {
	total := p.Price * int64(d.Quantity)
	percent := domainOrder.DepositPercent(d.PaymentMethod)
	deposit := total * percent / 100
	remaining := total - deposit

	return &SummaryResponse{
		ProductID:          p.ID,
		ProductName:        p.Name,
		UnitPrice:          p.Price,
		Quantity:           d.Quantity,
		Total:              total,
		TotalFormatted:     format.FormatVND(total),
		DepositPercent:     percent,
		Deposit:            deposit,
		DepositFormatted:   format.FormatVND(deposit),
		Remaining:          remaining,
		RemainingFormatted: format.FormatVND(remaining),
	}
}

func toDraftResponse(d *Draft) *DraftResponse {
	return &DraftResponse{
		ID:            d.ID,
		Step:          d.Step,
		ProductID:     d.ProductID,
		Quantity:      d.Quantity,
		CustomerName:  d.CustomerName,
		Email:         d.Email,
		Phone:         d.Phone,
		Address:       d.Address,
		PaymentMethod: string(d.PaymentMethod),
		Notes:         d.Notes,
	}
}
