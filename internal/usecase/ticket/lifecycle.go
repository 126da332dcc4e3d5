package ticket

import (
	domainTicket "incubator-admin/internal/domain/ticket"
)

// validTransitions defines the support queue state machine. A ticket moves
// forward only; done is terminal.
var validTransitions = map[domainTicket.TicketStatus][]domainTicket.TicketStatus{
	domainTicket.StatusNew:        {domainTicket.StatusProcessing},
	domainTicket.StatusProcessing: {domainTicket.StatusDone},
	domainTicket.StatusDone:       {},
}

// ValidateStatusTransition checks whether the queue allows moving a ticket
// from one status to another.
func ValidateStatusTransition(from, to domainTicket.TicketStatus) error {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return domainTicket.ErrInvalidTransition
}
