package paystub

import (
	"context"
	"fmt"
	"time"

	"github.com/drewpayment/choice-marketing-partners-sub002/internal/domain/employee"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/domain/invoice"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/domain/paystub"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/domain/vendor"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/dates"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/filter"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/identity"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaystubServiceImpl struct {
	paystubRepo  paystub.PaystubRepository
	invoiceRepo  invoice.InvoiceRepository
	employeeRepo employee.EmployeeRepository
	vendorRepo   vendor.VendorRepository
	systemUserID int
}

func NewPaystubService(
	paystubRepo paystub.PaystubRepository,
	invoiceRepo invoice.InvoiceRepository,
	employeeRepo employee.EmployeeRepository,
	vendorRepo vendor.VendorRepository,
	systemUserID int,
) paystub.PaystubService {
	return &PaystubServiceImpl{
		paystubRepo:  paystubRepo,
		invoiceRepo:  invoiceRepo,
		employeeRepo: employeeRepo,
		vendorRepo:   vendorRepo,
		systemUserID: systemUserID,
	}
}

// agentBucket is the in-memory partition of one agent's rows for the date.
type agentBucket struct {
	sales     []invoice.Sale
	overrides []invoice.Override
	expenses  []invoice.Expense
}

// vendorSet returns every vendor id the agent has data under, in
// first-seen order across the three categories.
func (b agentBucket) vendorSet() []int {
	seen := make(map[int]bool)
	var ids []int
	add := func(id int) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, s := range b.sales {
		add(s.VendorID)
	}
	for _, o := range b.overrides {
		add(o.VendorID)
	}
	for _, e := range b.expenses {
		add(e.VendorID)
	}
	return ids
}

func (b agentBucket) total() decimal.Decimal {
	return invoice.Total(b.sales, b.overrides, b.expenses)
}

func (b agentBucket) vendorTotal(vendorID int) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range b.sales {
		if s.VendorID == vendorID {
			sum = sum.Add(s.Amount)
		}
	}
	for _, o := range b.overrides {
		if o.VendorID == vendorID {
			sum = sum.Add(o.Total)
		}
	}
	for _, e := range b.expenses {
		if e.VendorID == vendorID {
			sum = sum.Add(e.Amount)
		}
	}
	return sum
}

// weekEnding picks the week-ending stamped on the agent's rows: the
// first sale row's value, or the issue date when the agent has no sales.
func (b agentBucket) weekEnding(issueDate time.Time) time.Time {
	if len(b.sales) > 0 {
		return b.sales[0].WeekEnding
	}
	return issueDate
}

// RebuildForDate regenerates every paystub row for one issue date from
// the fact tables. The date's rows are deleted first, then one row per
// active agent per vendor is written back. Inserts run row by row so a
// single bad row is reported in the result instead of aborting the rest
// of the date; the next rebuild of the same date heals any gap.
func (s *PaystubServiceImpl) RebuildForDate(ctx context.Context, issueDate time.Time, opts paystub.RebuildOptions) (paystub.RebuildReport, error) {
	if issueDate.IsZero() {
		return paystub.RebuildReport{}, paystub.ErrMissingIssueDate
	}
	issueDate = dates.NormalizeIssueDate(issueDate)

	modifiedBy := opts.ModifiedBy
	if modifiedBy == 0 {
		modifiedBy = identity.UserIDOr(ctx, s.systemUserID)
	}

	report := paystub.RebuildReport{
		RunID:     uuid.New(),
		IssueDate: dates.Format(issueDate),
	}

	deleted, err := s.paystubRepo.DeleteForDate(ctx, issueDate)
	if err != nil {
		return report, err
	}
	report.Deleted = deleted

	agents, err := s.employeeRepo.GetActive(ctx)
	if err != nil {
		return report, err
	}
	vendors, err := s.vendorRepo.GetAll(ctx, false)
	if err != nil {
		return report, err
	}
	vendorNames := make(map[int]string, len(vendors))
	for _, v := range vendors {
		vendorNames[v.ID] = v.Name
	}

	sales, err := s.invoiceRepo.GetSalesByIssueDate(ctx, issueDate)
	if err != nil {
		return report, err
	}
	overrides, err := s.invoiceRepo.GetOverridesByIssueDate(ctx, issueDate)
	if err != nil {
		return report, err
	}
	expenses, err := s.invoiceRepo.GetExpensesByIssueDate(ctx, issueDate)
	if err != nil {
		return report, err
	}

	buckets := make(map[int]*agentBucket)
	bucketFor := func(agentID int) *agentBucket {
		b, ok := buckets[agentID]
		if !ok {
			b = &agentBucket{}
			buckets[agentID] = b
		}
		return b
	}
	for _, row := range sales {
		b := bucketFor(row.AgentID)
		b.sales = append(b.sales, row)
	}
	for _, row := range overrides {
		b := bucketFor(row.AgentID)
		b.overrides = append(b.overrides, row)
	}
	for _, row := range expenses {
		b := bucketFor(row.AgentID)
		b.expenses = append(b.expenses, row)
	}

	for _, agent := range agents {
		b, ok := buckets[agent.ID]
		if !ok {
			continue
		}

		weekEnding := b.weekEnding(issueDate)
		agentTotal := b.total()

		for _, vendorID := range b.vendorSet() {
			vendorName, ok := vendorNames[vendorID]
			if !ok {
				report.Failed = append(report.Failed, paystub.RowFailure{
					AgentID:  agent.ID,
					VendorID: vendorID,
					Reason:   fmt.Sprintf("vendor %d not found", vendorID),
				})
				continue
			}

			amount := agentTotal
			if opts.VendorScoped {
				amount = b.vendorTotal(vendorID)
			}

			_, err := s.paystubRepo.Insert(ctx, paystub.Paystub{
				AgentID:    agent.ID,
				AgentName:  agent.Name,
				VendorID:   vendorID,
				VendorName: vendorName,
				Amount:     amount,
				IssueDate:  issueDate,
				WeekEnding: weekEnding,
				ModifiedBy: modifiedBy,
			})
			if err != nil {
				report.Failed = append(report.Failed, paystub.RowFailure{
					AgentID:  agent.ID,
					VendorID: vendorID,
					Reason:   err.Error(),
				})
				continue
			}
			report.Created++
		}
	}

	return report, nil
}

func (s *PaystubServiceImpl) List(ctx context.Context, issueDate time.Time, agent, vendor filter.Filter) ([]paystub.PaystubResponse, error) {
	if issueDate.IsZero() {
		return nil, paystub.ErrMissingIssueDate
	}

	claims, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	// Non-privileged users only ever see their own stubs.
	if !claims.IsAdmin && !claims.IsManager {
		agent = filter.Equals(claims.EmployeeID)
	}

	stubs, err := s.paystubRepo.List(ctx, dates.NormalizeIssueDate(issueDate), agent, vendor)
	if err != nil {
		return nil, err
	}

	return paystub.MapResponses(stubs), nil
}
