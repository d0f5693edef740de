package http

import (
	"net/http"

	"github.com/drewpayment/choice-marketing-partners-sub002/internal/domain/paystub"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/handler/http/response"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/dates"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/filter"
	"github.com/go-chi/chi/v5"
)

type PaystubHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Reprocess(w http.ResponseWriter, r *http.Request)
}

type paystubHandlerImpl struct {
	paystubService paystub.PaystubService
	vendorScoped   bool
}

func NewPaystubHandler(paystubService paystub.PaystubService, vendorScoped bool) PaystubHandler {
	return &paystubHandlerImpl{
		paystubService: paystubService,
		vendorScoped:   vendorScoped,
	}
}

func (h *paystubHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("issue_date")
	if raw == "" {
		response.HandleError(w, paystub.ErrMissingIssueDate)
		return
	}
	issueDate, err := dates.Parse(raw)
	if err != nil {
		response.BadRequest(w, "issue_date must be a valid date (YYYY-MM-DD)", nil)
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

	results, err := h.paystubService.List(r.Context(), issueDate, agent, vendor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Reprocess drops and regenerates every paystub for one issue date.
// Admin only; the same rebuild runs automatically after each invoice
// save, this endpoint is the manual lever for repairs.
func (h *paystubHandlerImpl) Reprocess(w http.ResponseWriter, r *http.Request) {
	issueDate, err := dates.Parse(chi.URLParam(r, "date"))
	if err != nil {
		response.BadRequest(w, "date must be a valid date (YYYY-MM-DD)", nil)
		return
	}

	report, err := h.paystubService.RebuildForDate(r.Context(), issueDate, paystub.RebuildOptions{
		VendorScoped: h.vendorScoped,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if !report.Ok() {
		response.SuccessWithMessage(w, "Paystubs rebuilt with failures", report)
		return
	}
	response.SuccessWithMessage(w, "Paystubs rebuilt successfully", report)
}
