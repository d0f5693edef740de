package payroll

import (
	"context"
	"time"

	"github.com/drewpayment/choice-marketing-partners-sub002/internal/domain/payroll"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/dates"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/filter"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/identity"
	"github.com/shopspring/decimal"
)

type LedgerServiceImpl struct {
	ledgerRepo payroll.LedgerRepository
}

func NewLedgerService(ledgerRepo payroll.LedgerRepository) payroll.LedgerService {
	return &LedgerServiceImpl{ledgerRepo: ledgerRepo}
}

func (s *LedgerServiceImpl) ListLedger(ctx context.Context, payDate time.Time, agent, vendor filter.Filter, includePaid bool) (payroll.LedgerResponse, error) {
	claims, err := identity.FromContext(ctx)
	if err != nil {
		return payroll.LedgerResponse{}, err
	}
	if !claims.IsAdmin && !claims.IsManager {
		agent = filter.Equals(claims.EmployeeID)
	}

	payDate = dates.NormalizeIssueDate(payDate)

	rows, err := s.ledgerRepo.List(ctx, payDate, agent, vendor, includePaid)
	if err != nil {
		return payroll.LedgerResponse{}, err
	}

	resp := payroll.LedgerResponse{
		PayDate: dates.Format(payDate),
		Rows:    make([]payroll.LedgerRowResponse, 0, len(rows)),
		Total:   decimal.Zero,
	}
	for _, row := range rows {
		resp.Rows = append(resp.Rows, payroll.LedgerRowResponse{
			ID:        row.ID,
			AgentID:   row.AgentID,
			AgentName: row.AgentName,
			Amount:    row.Amount,
			IsPaid:    row.IsPaid,
			VendorID:  row.VendorID,
			PayDate:   dates.Format(row.PayDate),
		})
		resp.Total = resp.Total.Add(row.Amount)
	}

	return resp, nil
}

func (s *LedgerServiceImpl) MarkPaid(ctx context.Context, req payroll.MarkPaidRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	return s.ledgerRepo.MarkPaid(ctx, req.IDs, req.IsPaid)
}
