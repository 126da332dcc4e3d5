package order

import "errors"

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")

	ErrDraftNotFound    = errors.New("order draft not found")
	ErrProductRequired  = errors.New("a product must be selected")
	ErrCustomerRequired = errors.New("customer name and phone are required")
	ErrNotOnPaymentStep = errors.New("draft has not reached the payment step")
)
