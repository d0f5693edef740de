package response

import (
	"errors"
	"net/http"

	"github.com/drewpayment/choice-marketing-partners-sub002/internal/domain/employee"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/domain/invoice"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/domain/payroll"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/domain/paystub"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/domain/vendor"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Invoice domain errors
	case errors.Is(err, invoice.ErrBucketNotFound):
		NotFound(w, "Invoice not found")
	case errors.Is(err, invoice.ErrInvalidIssueDate):
		BadRequest(w, "Invalid issue date", nil)
	case errors.Is(err, invoice.ErrAgentMismatch):
		Forbidden(w, "Cannot modify another agent's invoice")

	// Paystub domain errors
	case errors.Is(err, paystub.ErrPaystubNotFound):
		NotFound(w, "Paystub not found")
	case errors.Is(err, paystub.ErrMissingIssueDate):
		BadRequest(w, "Issue date is required", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrLedgerRowNotFound):
		NotFound(w, "Payroll ledger row not found")

	// Master data errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, vendor.ErrVendorNotFound):
		NotFound(w, "Vendor not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
