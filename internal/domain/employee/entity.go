package employee

import "time"

// Employee is a commission agent. Identity management (accounts,
// passwords, sessions) lives outside this service; rows here mirror the
// agent roster the payroll workflows read.
type Employee struct {
	ID            int
	Name          string
	Email         string
	Phone         *string
	Address       *string
	IsActive      bool
	IsAdmin       bool
	IsManager     bool
	SalesID1      *string
	SalesID2      *string
	SalesID3      *string
	HiddenPayroll bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
