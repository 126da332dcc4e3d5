package ticket

import "errors"

var (
	ErrTicketNotFound    = errors.New("ticket not found")
	ErrInvalidStatus     = errors.New("invalid ticket status")
	ErrInvalidTransition = errors.New("invalid ticket status transition")
	ErrAssigneeRequired  = errors.New("an assignee is required to start processing")
)
