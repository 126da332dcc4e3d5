package ticket

// Ticket is a maintenance request raised against a device in the field.
type Ticket struct {
	ID        string
	DeviceID  string
	Customer  string
	Issue     string
	Status    TicketStatus
	Priority  Priority
	CreatedAt string
	Assignee  string
	Solution  string
	HasImage  bool
}

// TicketStatus tracks the ticket through the support queue.
type TicketStatus string

const (
	StatusNew        TicketStatus = "new"
	StatusProcessing TicketStatus = "processing"
	StatusDone       TicketStatus = "done"
)

// Priority orders the support queue.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)
