package employee

type EmployeeResponse struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	IsActive      bool    `json:"is_active"`
	IsAdmin       bool    `json:"is_admin"`
	IsManager     bool    `json:"is_mgr"`
	SalesID1      *string `json:"sales_id1,omitempty"`
	SalesID2      *string `json:"sales_id2,omitempty"`
	SalesID3      *string `json:"sales_id3,omitempty"`
	HiddenPayroll bool    `json:"hidden_payroll"`
}

func MapResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		Name:          e.Name,
		Email:         e.Email,
		Phone:         e.Phone,
		Address:       e.Address,
		IsActive:      e.IsActive,
		IsAdmin:       e.IsAdmin,
		IsManager:     e.IsManager,
		SalesID1:      e.SalesID1,
		SalesID2:      e.SalesID2,
		SalesID3:      e.SalesID3,
		HiddenPayroll: e.HiddenPayroll,
	}
}
