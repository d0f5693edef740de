package invoice

import (
	"context"
	"time"
)

// InvoiceRepository is data access for the three fact tables. Writes are
// always bucket-scoped: the edit workflow deletes a whole bucket and
// re-inserts it, never updates single rows.
type InvoiceRepository interface {
	// LockBucket serializes writers of one bucket for the duration of
	// the enclosing transaction.
	LockBucket(ctx context.Context, key BucketKey) error

	// BucketExists is the union check: true when any of the three fact
	// tables has a row for the key.
	BucketExists(ctx context.Context, key BucketKey) (bool, error)

	DeleteSales(ctx context.Context, key BucketKey) error
	DeleteOverrides(ctx context.Context, key BucketKey) error
	DeleteExpenses(ctx context.Context, key BucketKey) error

	InsertSales(ctx context.Context, sales []Sale) error
	InsertOverrides(ctx context.Context, overrides []Override) error
	InsertExpenses(ctx context.Context, expenses []Expense) error

	GetSales(ctx context.Context, key BucketKey) ([]Sale, error)
	GetOverrides(ctx context.Context, key BucketKey) ([]Override, error)
	GetExpenses(ctx context.Context, key BucketKey) ([]Expense, error)

	// Issue-date loads feed the paystub rebuild: three flat queries,
	// partitioned in memory, never per-agent round trips.
	GetSalesByIssueDate(ctx context.Context, issueDate time.Time) ([]Sale, error)
	GetOverridesByIssueDate(ctx context.Context, issueDate time.Time) ([]Override, error)
	GetExpensesByIssueDate(ctx context.Context, issueDate time.Time) ([]Expense, error)
}

// InvoiceService is the edit/save workflow.
type InvoiceService interface {
	SaveInvoice(ctx context.Context, req SaveInvoiceRequest) (SaveInvoiceResult, error)
	GetBucket(ctx context.Context, agentID, vendorID int, issueDate time.Time) (BucketResponse, error)
}
