package warranty

import "errors"

var (
	ErrWarrantyNotFound = errors.New("warranty not found")
	ErrIssueNotFound    = errors.New("technical issue not found")
	ErrWarrantyExpired  = errors.New("warranty has expired")
	ErrServiceExhausted = errors.New("allowed service count exhausted")
)
