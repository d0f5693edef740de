package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/drewpayment/choice-marketing-partners-sub002/internal/domain/employee"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/domain/invoice"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/domain/payroll"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/domain/paystub"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/database"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/dates"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/identity"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type InvoiceServiceImpl struct {
	db             *database.DB
	invoiceRepo    invoice.InvoiceRepository
	ledgerRepo     payroll.LedgerRepository
	employeeRepo   employee.EmployeeRepository
	paystubService paystub.PaystubService
	vendorScoped   bool
}

func NewInvoiceService(
	db *database.DB,
	invoiceRepo invoice.InvoiceRepository,
	ledgerRepo payroll.LedgerRepository,
	employeeRepo employee.EmployeeRepository,
	paystubService paystub.PaystubService,
	vendorScoped bool,
) invoice.InvoiceService {
	return &InvoiceServiceImpl{
		db:             db,
		invoiceRepo:    invoiceRepo,
		ledgerRepo:     ledgerRepo,
		employeeRepo:   employeeRepo,
		paystubService: paystubService,
		vendorScoped:   vendorScoped,
	}
}

// SaveInvoice replaces one bucket with the submitted line items, rebuilds
// the payroll ledger row for the key, and retriggers the paystub rollup
// for the whole issue date.
//
// The replace, the ledger rebuild and the bucket lock all live in one
// transaction: a crash mid-save leaves the old bucket intact, never an
// empty one.
func (s *InvoiceServiceImpl) SaveInvoice(ctx context.Context, req invoice.SaveInvoiceRequest) (invoice.SaveInvoiceResult, error) {
	if err := req.Validate(); err != nil {
		return invoice.SaveInvoiceResult{}, err
	}

	claims, err := identity.FromContext(ctx)
	if err != nil {
		return invoice.SaveInvoiceResult{}, err
	}
	if !claims.IsAdmin && !claims.IsManager && claims.EmployeeID != req.EmployeeID {
		return invoice.SaveInvoiceResult{}, invoice.ErrAgentMismatch
	}

	issueDate, err := dates.Parse(req.IssueDate)
	if err != nil {
		return invoice.SaveInvoiceResult{}, err
	}
	issueDate = dates.NormalizeIssueDate(issueDate)

	weekEnding := dates.LegacyWeekEnding(issueDate)
	if req.WeekEnding != "" {
		weekEnding, err = dates.Parse(req.WeekEnding)
		if err != nil {
			return invoice.SaveInvoiceResult{}, err
		}
	}

	agent, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return invoice.SaveInvoiceResult{}, err
	}

	key := invoice.BucketKey{AgentID: req.EmployeeID, VendorID: req.VendorID, IssueDate: issueDate}

	sales, err := buildSales(key, weekEnding, req.Sales)
	if err != nil {
		return invoice.SaveInvoiceResult{}, err
	}
	overrides := buildOverrides(key, weekEnding, req.Overrides)
	expenses := buildExpenses(key, weekEnding, req.Expenses)

	appliedOverrides := overrides
	if !req.HasOverrides {
		appliedOverrides = nil
	}
	appliedExpenses := expenses
	if !req.HasExpenses {
		appliedExpenses = nil
	}

	payrollTotal := invoice.Total(sales, appliedOverrides, appliedExpenses)

	var replaced bool
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.invoiceRepo.LockBucket(txCtx, key); err != nil {
			return err
		}

		exists, err := s.invoiceRepo.BucketExists(txCtx, key)
		if err != nil {
			return err
		}
		replaced = exists

		if err := s.invoiceRepo.DeleteSales(txCtx, key); err != nil {
			return err
		}
		if err := s.ledgerRepo.DeleteForKey(txCtx, key.AgentID, key.VendorID, key.IssueDate); err != nil {
			return err
		}
		if req.HasOverrides {
			if err := s.invoiceRepo.DeleteOverrides(txCtx, key); err != nil {
				return err
			}
		}
		if req.HasExpenses {
			if err := s.invoiceRepo.DeleteExpenses(txCtx, key); err != nil {
				return err
			}
		}

		if err := s.invoiceRepo.InsertSales(txCtx, sales); err != nil {
			return err
		}
		if req.HasOverrides && len(appliedOverrides) > 0 {
			if err := s.invoiceRepo.InsertOverrides(txCtx, appliedOverrides); err != nil {
				return err
			}
		}
		if req.HasExpenses && len(appliedExpenses) > 0 {
			if err := s.invoiceRepo.InsertExpenses(txCtx, appliedExpenses); err != nil {
				return err
			}
		}

		_, err = s.ledgerRepo.Insert(txCtx, payroll.LedgerRow{
			AgentID:   key.AgentID,
			AgentName: agent.Name,
			Amount:    payrollTotal,
			IsPaid:    false,
			VendorID:  key.VendorID,
			PayDate:   key.IssueDate,
		})
		return err
	})
	if err != nil {
		return invoice.SaveInvoiceResult{}, fmt.Errorf("failed to save invoice bucket: %w", err)
	}

	result := invoice.SaveInvoiceResult{
		AgentID:        key.AgentID,
		VendorID:       key.VendorID,
		IssueDate:      dates.Format(key.IssueDate),
		Replaced:       replaced,
		PayrollTotal:   payrollTotal,
		SalesSaved:     len(sales),
		OverridesSaved: len(appliedOverrides),
		ExpensesSaved:  len(appliedExpenses),
		Placeholder:    len(req.Sales) == 0,
	}

	// The bucket is committed; the rollup runs after it and its outcome
	// rides along in the result instead of being dropped.
	report, err := s.paystubService.RebuildForDate(ctx, key.IssueDate, paystub.RebuildOptions{VendorScoped: s.vendorScoped})
	if err != nil {
		result.PaystubErrors = append(result.PaystubErrors, err.Error())
		return result, nil
	}
	result.PaystubsCreated = report.Created
	for _, f := range report.Failed {
		result.PaystubErrors = append(result.PaystubErrors,
			fmt.Sprintf("agent %d vendor %d: %s", f.AgentID, f.VendorID, f.Reason))
	}

	return result, nil
}

func (s *InvoiceServiceImpl) GetBucket(ctx context.Context, agentID, vendorID int, issueDate time.Time) (invoice.BucketResponse, error) {
	claims, err := identity.FromContext(ctx)
	if err != nil {
		return invoice.BucketResponse{}, err
	}
	if !claims.IsAdmin && !claims.IsManager && claims.EmployeeID != agentID {
		return invoice.BucketResponse{}, invoice.ErrAgentMismatch
	}

	// Same normalization as the save path, so a bucket saved under a
	// Friday date is found again when fetched with that date.
	key := invoice.BucketKey{AgentID: agentID, VendorID: vendorID, IssueDate: dates.NormalizeIssueDate(issueDate)}

	sales, err := s.invoiceRepo.GetSales(ctx, key)
	if err != nil {
		return invoice.BucketResponse{}, err
	}
	overrides, err := s.invoiceRepo.GetOverrides(ctx, key)
	if err != nil {
		return invoice.BucketResponse{}, err
	}
	expenses, err := s.invoiceRepo.GetExpenses(ctx, key)
	if err != nil {
		return invoice.BucketResponse{}, err
	}

	if len(sales) == 0 && len(overrides) == 0 && len(expenses) == 0 {
		return invoice.BucketResponse{}, invoice.ErrBucketNotFound
	}

	resp := invoice.BucketResponse{
		AgentID:   agentID,
		VendorID:  vendorID,
		IssueDate: dates.Format(key.IssueDate),
		Sales:     make([]invoice.SaleResponse, 0, len(sales)),
		Overrides: make([]invoice.OverrideResponse, 0, len(overrides)),
		Expenses:  make([]invoice.ExpenseResponse, 0, len(expenses)),
	}
	for _, s := range sales {
		resp.Sales = append(resp.Sales, invoice.MapSaleResponse(s))
	}
	for _, o := range overrides {
		resp.Overrides = append(resp.Overrides, invoice.MapOverrideResponse(o))
	}
	for _, e := range expenses {
		resp.Expenses = append(resp.Expenses, invoice.MapExpenseResponse(e))
	}

	return resp, nil
}

// ========== BUILDERS ==========

func buildSales(key invoice.BucketKey, weekEnding time.Time, inputs []invoice.SaleInput) ([]invoice.Sale, error) {
	if len(inputs) == 0 {
		// Zero-sale stub keeps the agent visible to downstream joins.
		return []invoice.Sale{invoice.NewPlaceholderSale(key, weekEnding)}, nil
	}

	sales := make([]invoice.Sale, 0, len(inputs))
	for _, in := range inputs {
		saleDate := key.IssueDate
		if in.SaleDate != "" {
			parsed, err := dates.Parse(in.SaleDate)
			if err != nil {
				return nil, err
			}
			saleDate = parsed
		}
		rowWeekEnding := weekEnding
		if in.WeekEnding != "" {
			parsed, err := dates.Parse(in.WeekEnding)
			if err != nil {
				return nil, err
			}
			rowWeekEnding = parsed
		}
		sales = append(sales, invoice.Sale{
			VendorID:   key.VendorID,
			AgentID:    key.AgentID,
			IssueDate:  key.IssueDate,
			SaleDate:   saleDate,
			WeekEnding: rowWeekEnding,
			FirstName:  in.FirstName,
			LastName:   in.LastName,
			Address:    in.Address,
			City:       in.City,
			Status:     in.Status,
			Amount:     in.Amount.Decimal,
		})
	}
	return sales, nil
}

func buildOverrides(key invoice.BucketKey, weekEnding time.Time, inputs []invoice.OverrideInput) []invoice.Override {
	overrides := make([]invoice.Override, 0, len(inputs))
	for _, in := range inputs {
		// Total is never trusted from the client.
		total := in.Commission.Decimal.Mul(decimal.NewFromInt(int64(in.NumSales)))
		overrides = append(overrides, invoice.Override{
			VendorID:   key.VendorID,
			AgentID:    key.AgentID,
			IssueDate:  key.IssueDate,
			WeekEnding: weekEnding,
			Name:       in.Name,
			NumSales:   in.NumSales,
			Commission: in.Commission.Decimal,
			Total:      total,
		})
	}
	return overrides
}

func buildExpenses(key invoice.BucketKey, weekEnding time.Time, inputs []invoice.ExpenseInput) []invoice.Expense {
	expenses := make([]invoice.Expense, 0, len(inputs))
	for _, in := range inputs {
		expenses = append(expenses, invoice.Expense{
			VendorID:   key.VendorID,
			AgentID:    key.AgentID,
			IssueDate:  key.IssueDate,
			WeekEnding: weekEnding,
			Type:       in.Type,
			Amount:     in.Amount.Decimal,
			Notes:      in.Notes,
		})
	}
	return expenses
}
