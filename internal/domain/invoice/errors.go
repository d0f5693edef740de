package invoice

import "errors"

var (
	ErrBucketNotFound   = errors.New("no invoice records for this agent, vendor and issue date")
	ErrInvalidIssueDate = errors.New("issue date must be a pay-period date")
	ErrAgentMismatch    = errors.New("cannot save invoices for another agent")
)
