package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRow is the per-agent-per-pay-date summary used for payment
// tracking. It is a projection: the save workflow rebuilds it from the
// fact tables, it is never edited directly.
//
// VendorID records the vendor of the save that last wrote the row. A row
// covers the agent's whole pay date, so when an agent works several
// vendors in one period the column only reflects the latest write.
type LedgerRow struct {
	ID        int64
	AgentID   int
	AgentName string
	Amount    decimal.Decimal
	IsPaid    bool
	VendorID  int
	PayDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
