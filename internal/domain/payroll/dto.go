package payroll

import (
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type LedgerRowResponse struct {
	ID        int64           `json:"id"`
	AgentID   int             `json:"agent_id"`
	AgentName string          `json:"agent_name"`
	Amount    decimal.Decimal `json:"amount"`
	IsPaid    bool            `json:"is_paid"`
	VendorID  int             `json:"vendor_id"`
	PayDate   string          `json:"pay_date"`
}

type LedgerResponse struct {
	PayDate string              `json:"pay_date"`
	Rows    []LedgerRowResponse `json:"rows"`
	Total   decimal.Decimal     `json:"total"`
}

type MarkPaidRequest struct {
	IDs    []int64 `json:"ids"`
	IsPaid bool    `json:"is_paid"`
}

func (r *MarkPaidRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.IDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "ids", Message: "at least one ledger row id is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
