package paystub

import (
	"context"
	"time"

	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/filter"
)

type PaystubRepository interface {
	DeleteForDate(ctx context.Context, issueDate time.Time) (int64, error)
	Insert(ctx context.Context, stub Paystub) (Paystub, error)
	List(ctx context.Context, issueDate time.Time, agent, vendor filter.Filter) ([]Paystub, error)
}

// RebuildOptions tunes one rebuild run.
type RebuildOptions struct {
	// VendorScoped writes per-vendor totals instead of the legacy
	// agent-wide total on every row.
	VendorScoped bool

	// ModifiedBy overrides the actor stamped on the rows. Zero means
	// "resolve from context, falling back to the system user".
	ModifiedBy int
}

type PaystubService interface {
	RebuildForDate(ctx context.Context, issueDate time.Time, opts RebuildOptions) (RebuildReport, error)
	List(ctx context.Context, issueDate time.Time, agent, vendor filter.Filter) ([]PaystubResponse, error)
}
