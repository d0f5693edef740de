package invoice

import (
	"errors"
	"testing"

	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/validator"
)

func validSaveRequest() SaveInvoiceRequest {
	return SaveInvoiceRequest{
		EmployeeID: 3,
		VendorID:   1,
		IssueDate:  "2024-05-15",
		Sales: []SaleInput{
			{SaleDate: "2024-05-10", FirstName: "Jane", LastName: "Doe"},
		},
	}
}

func TestSaveInvoiceRequestValidate(t *testing.T) {
	req := validSaveRequest()
	if err := req.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
}

func TestSaveInvoiceRequestValidateErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SaveInvoiceRequest)
		field  string
	}{
		{"missing employee", func(r *SaveInvoiceRequest) { r.EmployeeID = 0 }, "employee_id"},
		{"missing vendor", func(r *SaveInvoiceRequest) { r.VendorID = 0 }, "vendor_id"},
		{"missing issue date", func(r *SaveInvoiceRequest) { r.IssueDate = "" }, "issue_date"},
		{"bad issue date", func(r *SaveInvoiceRequest) { r.IssueDate = "05/15/2024" }, "issue_date"},
		{"bad week ending", func(r *SaveInvoiceRequest) { r.WeekEnding = "soon" }, "week_ending"},
		{"bad sale date", func(r *SaveInvoiceRequest) { r.Sales[0].SaleDate = "x" }, "sales[0].sale_date"},
		{"unnamed override", func(r *SaveInvoiceRequest) {
			r.Overrides = []OverrideInput{{Name: " ", NumSales: 2}}
		}, "overrides[0].name"},
		{"negative override count", func(r *SaveInvoiceRequest) {
			r.Overrides = []OverrideInput{{Name: "mgr", NumSales: -1}}
		}, "overrides[0].num_sales"},
		{"untyped expense", func(r *SaveInvoiceRequest) {
			r.Expenses = []ExpenseInput{{Notes: "gas"}}
		}, "expenses[0].type"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validSaveRequest()
			c.mutate(&req)

			err := req.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			var errs validator.ValidationErrors
			if !errors.As(err, &errs) {
				t.Fatalf("error type = %T", err)
			}
			if _, ok := errs.ToMap()[c.field]; !ok {
				t.Errorf("no error recorded for %s: %v", c.field, errs.ToMap())
			}
		})
	}
}

func TestSaveInvoiceRequestEmptySalesAllowed(t *testing.T) {
	req := validSaveRequest()
	req.Sales = nil
	if err := req.Validate(); err != nil {
		t.Fatalf("zero-sale save rejected: %v", err)
	}
}
