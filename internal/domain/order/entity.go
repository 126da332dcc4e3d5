package order

// Order is a confirmed sales order created through the order wizard.
type Order struct {
	ID            string
	CustomerName  string
	Email         string
	Phone         string
	Address       string
	ProductID     string
	ProductName   string
	Quantity      int
	Status        OrderStatus
	Amount        int64
	DepositAmount int64
	PaymentMethod PaymentMethod
	Date          string
	QRCode        string
	Notes         string
}

// OrderStatus tracks the order through payment and delivery.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusDeposit   OrderStatus = "deposit"
	StatusShipping  OrderStatus = "shipping"
	StatusCompleted OrderStatus = "completed"
)

// PaymentMethod selects between a 30% deposit and paying in full.
type PaymentMethod string

const (
	PaymentDeposit PaymentMethod = "deposit"
	PaymentFull    PaymentMethod = "full"
)

// DepositPercent is the share of the total due up front for the given
// payment method.
func DepositPercent(m PaymentMethod) int64 {
	if m == PaymentDeposit {
		return 30
	}
	return 100
}
