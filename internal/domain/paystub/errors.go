package paystub

import "errors"

var (
	ErrPaystubNotFound  = errors.New("paystub not found")
	ErrMissingIssueDate = errors.New("rebuild requires an explicit issue date")
)
