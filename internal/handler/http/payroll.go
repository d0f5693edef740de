package http

import (
	"encoding/json"
	"net/http"

	"github.com/drewpayment/choice-marketing-partners-sub002/internal/domain/payroll"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/handler/http/response"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/dates"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/filter"
)

type PayrollHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	ledgerService payroll.LedgerService
}

func NewPayrollHandler(ledgerService payroll.LedgerService) PayrollHandler {
	return &payrollHandlerImpl{
		ledgerService: ledgerService,
	}
}

func (h *payrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	payDate, err := dates.Parse(r.URL.Query().Get("pay_date"))
	if err != nil {
		response.BadRequest(w, "pay_date must be a valid date (YYYY-MM-DD)", nil)
		return
	}

	agent, err := filter.Parse(r.URL.Query().Get("agent"))
	if err != nil {
		response.BadRequest(w, "agent filter is invalid", nil)
		return
	}
	vendor, err := filter.Parse(r.URL.Query().Get("vendor"))
	if err != nil {
		response.BadRequest(w, "vendor filter is invalid", nil)
		return
	}
	includePaid := r.URL.Query().Get("include_paid") == "true"

	result, err := h.ledgerService.ListLedger(r.Context(), payDate, agent, vendor, includePaid)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	var req payroll.MarkPaidRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.ledgerService.MarkPaid(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll rows updated", map[string]int64{"updated": updated})
}
