package http

import (
	"net/http"
	"strconv"

	"github.com/drewpayment/choice-marketing-partners-sub002/internal/handler/http/response"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/service/master"
	"github.com/go-chi/chi/v5"
)

type MasterHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	ListVendors(w http.ResponseWriter, r *http.Request)
	GetVendor(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{
		masterService: masterService,
	}
}

func (h *masterHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("include_inactive") == "true"

	results, err := h.masterService.ListEmployees(r.Context(), includeInactive)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "id must be an integer", nil)
		return
	}

	result, err := h.masterService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListVendors(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	results, err := h.masterService.ListVendors(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) GetVendor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "id must be an integer", nil)
		return
	}

	result, err := h.masterService.GetVendor(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
