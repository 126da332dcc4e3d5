package warranty

// Warranty tracks the coverage of a sold incubator and the technical issues
// reported under it.
type Warranty struct {
	ID                string
	ProductID         string
	ProductName       string
	CustomerName      string
	CustomerEmail     string
	CustomerPhone     string
	PurchaseDate      string
	WarrantyEndDate   string
	Status            WarrantyStatus
	ServiceCount      int
	MaxServiceAllowed int
	Issues            []TechnicalIssue
}

// WarrantyStatus is assigned by the warranty desk, not derived from the end
// date here.
type WarrantyStatus string

const (
	StatusActive   WarrantyStatus = "active"
	StatusExpiring WarrantyStatus = "expiring"
	StatusExpired  WarrantyStatus = "expired"
)

// TechnicalIssue is one service event recorded under a warranty.
type TechnicalIssue struct {
	IssueID        string
	Date           string
	Type           string
	Description    string
	Status         IssueStatus
	ResolutionDate string
	Notes          string
}

// IssueStatus tracks a reported issue to resolution.
type IssueStatus string

const (
	IssueReported   IssueStatus = "reported"
	IssueInProgress IssueStatus = "in-progress"
	IssueResolved   IssueStatus = "resolved"
)

// ServiceExhausted reports whether the warranty has used up its allowed
// service visits.
func (w *Warranty) ServiceExhausted() bool {
	return w.ServiceCount >= w.MaxServiceAllowed
}
