package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/drewpayment/choice-marketing-partners-sub002/internal/domain/invoice"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/handler/http/response"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/dates"
)

type InvoiceHandler interface {
	Save(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type invoiceHandlerImpl struct {
	invoiceService invoice.InvoiceService
}

func NewInvoiceHandler(invoiceService invoice.InvoiceService) InvoiceHandler {
	return &invoiceHandlerImpl{
		invoiceService: invoiceService,
	}
}

func (h *invoiceHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var req invoice.SaveInvoiceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.invoiceService.SaveInvoice(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result.Replaced {
		response.SuccessWithMessage(w, "Invoice replaced successfully", result)
		return
	}
	response.Created(w, "Invoice created successfully", result)
}

func (h *invoiceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	agentID, err := strconv.Atoi(r.URL.Query().Get("agent_id"))
	if err != nil {
		response.BadRequest(w, "agent_id must be an integer", nil)
		return
	}
	vendorID, err := strconv.Atoi(r.URL.Query().Get("vendor_id"))
	if err != nil {
		response.BadRequest(w, "vendor_id must be an integer", nil)
		return
	}
	issueDate, err := dates.Parse(r.URL.Query().Get("issue_date"))
	if err != nil {
		response.BadRequest(w, "issue_date must be a valid date (YYYY-MM-DD)", nil)
		return
	}

	result, err := h.invoiceService.GetBucket(r.Context(), agentID, vendorID, issueDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
