package paystub

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Paystub is the denormalized per-agent-per-vendor rollup shown to the
// agent. Rows are regenerated wholesale for a date; they are never
// updated in place.
type Paystub struct {
	ID         int64
	AgentID    int
	AgentName  string
	VendorID   int
	VendorName string
	Amount     decimal.Decimal
	IssueDate  time.Time
	WeekEnding time.Time
	ModifiedBy int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RowFailure records one paystub insert that failed during a rebuild.
type RowFailure struct {
	AgentID  int    `json:"agent_id"`
	VendorID int    `json:"vendor_id"`
	Reason   string `json:"reason"`
}

// RebuildReport is the outcome of one full-date rebuild. Failures are
// collected per row instead of being swallowed; the run continues past
// them so one bad row cannot block the rest of the date.
type RebuildReport struct {
	RunID     uuid.UUID    `json:"run_id"`
	IssueDate string       `json:"issue_date"`
	Deleted   int64        `json:"deleted"`
	Created   int          `json:"created"`
	Failed    []RowFailure `json:"failed,omitempty"`
}

// Ok reports whether every row landed.
func (r RebuildReport) Ok() bool {
	return len(r.Failed) == 0
}
