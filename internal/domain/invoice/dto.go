package invoice

import (
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/dates"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== SAVE DTOs ==========

type SaleInput struct {
	SaleDate   string `json:"sale_date"`
	WeekEnding string `json:"week_ending,omitempty"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Status     string `json:"status"`
	Amount     Amount `json:"amount"`
}

type OverrideInput struct {
	Name       string `json:"name"`
	NumSales   int    `json:"num_sales"`
	Commission Amount `json:"commission"`
}

type ExpenseInput struct {
	Type   string `json:"type"`
	Amount Amount `json:"amount"`
	Notes  string `json:"notes,omitempty"`
}

// SaveInvoiceRequest is a full replacement set for one bucket. The
// has_overrides/has_expenses flags distinguish "replace with nothing"
// from "leave this category alone", since an empty array is ambiguous
// on its own.
type SaveInvoiceRequest struct {
	EmployeeID   int             `json:"employee_id"`
	VendorID     int             `json:"vendor_id"`
	IssueDate    string          `json:"issue_date"`
	WeekEnding   string          `json:"week_ending,omitempty"`
	Sales        []SaleInput     `json:"sales"`
	Overrides    []OverrideInput `json:"overrides"`
	Expenses     []ExpenseInput  `json:"expenses"`
	HasOverrides bool            `json:"has_overrides"`
	HasExpenses  bool            `json:"has_expenses"`
}

func (r *SaveInvoiceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.VendorID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "vendor_id", Message: "is required"})
	}
	if r.IssueDate == "" {
		errs = append(errs, validator.ValidationError{Field: "issue_date", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.IssueDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "issue_date", Message: "must be YYYY-MM-DD"})
	}
	if r.WeekEnding != "" {
		if _, ok := validator.IsValidDate(r.WeekEnding); !ok {
			errs = append(errs, validator.ValidationError{Field: "week_ending", Message: "must be YYYY-MM-DD"})
		}
	}
	for i, s := range r.Sales {
		if s.SaleDate != "" {
			if _, ok := validator.IsValidDate(s.SaleDate); !ok {
				errs = append(errs, validator.ValidationError{Field: "sales[" + validator.Itoa(i) + "].sale_date", Message: "must be YYYY-MM-DD"})
			}
		}
	}
	for i, o := range r.Overrides {
		if validator.IsEmpty(o.Name) {
			errs = append(errs, validator.ValidationError{Field: "overrides[" + validator.Itoa(i) + "].name", Message: "is required"})
		}
		if o.NumSales < 0 {
			errs = append(errs, validator.ValidationError{Field: "overrides[" + validator.Itoa(i) + "].num_sales", Message: "must be non-negative"})
		}
	}
	for i, e := range r.Expenses {
		if validator.IsEmpty(e.Type) {
			errs = append(errs, validator.ValidationError{Field: "expenses[" + validator.Itoa(i) + "].type", Message: "is required"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SaveInvoiceResult reports what one save actually did. Nothing in it is
// defaulted; every field reflects an outcome of a committed step.
type SaveInvoiceResult struct {
	AgentID         int             `json:"agent_id"`
	VendorID        int             `json:"vendor_id"`
	IssueDate       string          `json:"issue_date"`
	Replaced        bool            `json:"replaced"`
	PayrollTotal    decimal.Decimal `json:"payroll_total"`
	SalesSaved      int             `json:"sales_saved"`
	OverridesSaved  int             `json:"overrides_saved"`
	ExpensesSaved   int             `json:"expenses_saved"`
	Placeholder     bool            `json:"placeholder"`
	PaystubsCreated int             `json:"paystubs_created"`
	PaystubErrors   []string        `json:"paystub_errors,omitempty"`
}

// ========== READ DTOs ==========

type SaleResponse struct {
	ID         int64           `json:"id"`
	VendorID   int             `json:"vendor_id"`
	AgentID    int             `json:"agent_id"`
	IssueDate  string          `json:"issue_date"`
	SaleDate   string          `json:"sale_date"`
	WeekEnding string          `json:"week_ending"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	Address    string          `json:"address"`
	City       string          `json:"city"`
	Status     string          `json:"status"`
	Amount     decimal.Decimal `json:"amount"`
}

type OverrideResponse struct {
	ID         int64           `json:"id"`
	VendorID   int             `json:"vendor_id"`
	AgentID    int             `json:"agent_id"`
	IssueDate  string          `json:"issue_date"`
	WeekEnding string          `json:"week_ending"`
	Name       string          `json:"name"`
	NumSales   int             `json:"num_sales"`
	Commission decimal.Decimal `json:"commission"`
	Total      decimal.Decimal `json:"total"`
}

type ExpenseResponse struct {
	ID         int64           `json:"id"`
	VendorID   int             `json:"vendor_id"`
	AgentID    int             `json:"agent_id"`
	IssueDate  string          `json:"issue_date"`
	WeekEnding string          `json:"week_ending"`
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Notes      string          `json:"notes,omitempty"`
}

type BucketResponse struct {
	AgentID   int                `json:"agent_id"`
	VendorID  int                `json:"vendor_id"`
	IssueDate string             `json:"issue_date"`
	Sales     []SaleResponse     `json:"sales"`
	Overrides []OverrideResponse `json:"overrides"`
	Expenses  []ExpenseResponse  `json:"expenses"`
}

func MapSaleResponse(s Sale) SaleResponse {
	return SaleResponse{
		ID:         s.ID,
		VendorID:   s.VendorID,
		AgentID:    s.AgentID,
		IssueDate:  dates.Format(s.IssueDate),
		SaleDate:   dates.Format(s.SaleDate),
		WeekEnding: dates.Format(s.WeekEnding),
		FirstName:  s.FirstName,
		LastName:   s.LastName,
		Address:    s.Address,
		City:       s.City,
		Status:     s.Status,
		Amount:     s.Amount,
	}
}

func MapOverrideResponse(o Override) OverrideResponse {
	return OverrideResponse{
		ID:         o.ID,
		VendorID:   o.VendorID,
		AgentID:    o.AgentID,
		IssueDate:  dates.Format(o.IssueDate),
		WeekEnding: dates.Format(o.WeekEnding),
		Name:       o.Name,
		NumSales:   o.NumSales,
		Commission: o.Commission,
		Total:      o.Total,
	}
}

func MapExpenseResponse(e Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:         e.ID,
		VendorID:   e.VendorID,
		AgentID:    e.AgentID,
		IssueDate:  dates.Format(e.IssueDate),
		WeekEnding: dates.Format(e.WeekEnding),
		Type:       e.Type,
		Amount:     e.Amount,
		Notes:      e.Notes,
	}
}
