package postgresql

import (
	"context"
	"fmt"

	"github.com/drewpayment/choice-marketing-partners-sub002/internal/domain/employee"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, name, email, phone, address, is_active, is_admin, is_mgr,
	sales_id1, sales_id2, sales_id3, hidden_payroll, created_at, updated_at
`

func (r *employeeRepository) GetByID(ctx context.Context, id int) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.Email, &e.Phone, &e.Address, &e.IsActive, &e.IsAdmin, &e.IsManager,
		&e.SalesID1, &e.SalesID2, &e.SalesID3, &e.HiddenPayroll, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetActive(ctx context.Context) ([]employee.Employee, error) {
	return r.query(ctx, `SELECT `+employeeColumns+` FROM employees WHERE is_active = true ORDER BY name`)
}

func (r *employeeRepository) List(ctx context.Context, includeInactive bool) ([]employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees`
	if !includeInactive {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name`
	return r.query(ctx, query)
}

func (r *employeeRepository) query(ctx context.Context, query string, args ...interface{}) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Email, &e.Phone, &e.Address, &e.IsActive, &e.IsAdmin, &e.IsManager,
			&e.SalesID1, &e.SalesID2, &e.SalesID3, &e.HiddenPayroll, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}
