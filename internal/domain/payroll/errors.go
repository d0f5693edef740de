package payroll

import "errors"

var (
	ErrLedgerRowNotFound = errors.New("payroll ledger row not found")
)
