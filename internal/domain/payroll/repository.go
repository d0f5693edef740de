package payroll

import (
	"context"
	"time"

	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/filter"
)

type LedgerRepository interface {
	// DeleteForKey clears prior rows written by a save of the same
	// bucket. Runs inside the save transaction.
	DeleteForKey(ctx context.Context, agentID, vendorID int, payDate time.Time) error

	Insert(ctx context.Context, row LedgerRow) (LedgerRow, error)

	List(ctx context.Context, payDate time.Time, agent, vendor filter.Filter, includePaid bool) ([]LedgerRow, error)

	MarkPaid(ctx context.Context, ids []int64, isPaid bool) (int64, error)
}

type LedgerService interface {
	ListLedger(ctx context.Context, payDate time.Time, agent, vendor filter.Filter, includePaid bool) (LedgerResponse, error)
	MarkPaid(ctx context.Context, req MarkPaidRequest) (int64, error)
}
