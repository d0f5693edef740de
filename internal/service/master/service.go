package master

import (
	"context"

	"github.com/drewpayment/choice-marketing-partners-sub002/internal/domain/employee"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/domain/vendor"
)

// MasterService serves the agent roster and vendor list backing the
// invoice and payroll screens.
type MasterService interface {
	ListEmployees(ctx context.Context, includeInactive bool) ([]employee.EmployeeResponse, error)
	GetEmployee(ctx context.Context, id int) (employee.EmployeeResponse, error)
	ListVendors(ctx context.Context, activeOnly bool) ([]vendor.VendorResponse, error)
	GetVendor(ctx context.Context, id int) (vendor.VendorResponse, error)
}

type masterServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	vendorRepo   vendor.VendorRepository
}

func NewMasterService(employeeRepo employee.EmployeeRepository, vendorRepo vendor.VendorRepository) MasterService {
	return &masterServiceImpl{
		employeeRepo: employeeRepo,
		vendorRepo:   vendorRepo,
	}
}

func (s *masterServiceImpl) ListEmployees(ctx context.Context, includeInactive bool) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.MapResponse(e))
	}
	return responses, nil
}

func (s *masterServiceImpl) GetEmployee(ctx context.Context, id int) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.MapResponse(e), nil
}

func (s *masterServiceImpl) ListVendors(ctx context.Context, activeOnly bool) ([]vendor.VendorResponse, error) {
	vendors, err := s.vendorRepo.GetAll(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]vendor.VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		responses = append(responses, vendor.MapResponse(v))
	}
	return responses, nil
}

func (s *masterServiceImpl) GetVendor(ctx context.Context, id int) (vendor.VendorResponse, error) {
	v, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return vendor.VendorResponse{}, err
	}
	return vendor.MapResponse(v), nil
}
