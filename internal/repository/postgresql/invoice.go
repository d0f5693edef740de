package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/drewpayment/choice-marketing-partners-sub002/internal/domain/invoice"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/database"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/dates"
)

type invoiceRepository struct {
	db *database.DB
}

func NewInvoiceRepository(db *database.DB) invoice.InvoiceRepository {
	return &invoiceRepository{db: db}
}

// ========== LOCKING ==========

func (r *invoiceRepository) LockBucket(ctx context.Context, key invoice.BucketKey) error {
	q := GetQuerier(ctx, r.db)

	// Transaction-scoped advisory lock keyed on the bucket; concurrent
	// saves of the same bucket queue instead of interleaving their
	// delete/insert sequences.
	lockKey := fmt.Sprintf("invoices:%d:%d:%s", key.AgentID, key.VendorID, dates.Format(key.IssueDate))
	_, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, lockKey)
	if err != nil {
		return fmt.Errorf("failed to lock invoice bucket: %w", err)
	}
	return nil
}

// ========== EXISTENCE ==========

func (r *invoiceRepository) BucketExists(ctx context.Context, key invoice.BucketKey) (bool, error) {
	q := GetQuerier(ctx, r.db)

	// Union check across all three fact tables. A sales-only check would
	// let override/expense-only edits slip past the replace step.
	query := `
		SELECT EXISTS(SELECT 1 FROM invoices  WHERE agent_id = $1 AND vendor_id = $2 AND issue_date = $3)
		    OR EXISTS(SELECT 1 FROM overrides WHERE agent_id = $1 AND vendor_id = $2 AND issue_date = $3)
		    OR EXISTS(SELECT 1 FROM expenses  WHERE agent_id = $1 AND vendor_id = $2 AND issue_date = $3)
	`

	var exists bool
	err := q.QueryRow(ctx, query, key.AgentID, key.VendorID, key.IssueDate).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check invoice bucket: %w", err)
	}
	return exists, nil
}

// ========== DELETES ==========

func (r *invoiceRepository) DeleteSales(ctx context.Context, key invoice.BucketKey) error {
	return r.deleteBucket(ctx, "invoices", key)
}

func (r *invoiceRepository) DeleteOverrides(ctx context.Context, key invoice.BucketKey) error {
	return r.deleteBucket(ctx, "overrides", key)
}

func (r *invoiceRepository) DeleteExpenses(ctx context.Context, key invoice.BucketKey) error {
	return r.deleteBucket(ctx, "expenses", key)
}

func (r *invoiceRepository) deleteBucket(ctx context.Context, table string, key invoice.BucketKey) error {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`DELETE FROM %s WHERE agent_id = $1 AND vendor_id = $2 AND issue_date = $3`, table)
	_, err := q.Exec(ctx, query, key.AgentID, key.VendorID, key.IssueDate)
	if err != nil {
		return fmt.Errorf("failed to delete %s bucket: %w", table, err)
	}
	return nil
}

// ========== INSERTS ==========

func (r *invoiceRepository) InsertSales(ctx context.Context, sales []invoice.Sale) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO invoices (vendor_id, agent_id, issue_date, sale_date, wkending,
			first_name, last_name, address, city, status, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	for _, s := range sales {
		_, err := q.Exec(ctx, query,
			s.VendorID, s.AgentID, s.IssueDate, s.SaleDate, s.WeekEnding,
			s.FirstName, s.LastName, s.Address, s.City, s.Status, s.Amount,
		)
		if err != nil {
			return fmt.Errorf("failed to insert sale: %w", err)
		}
	}
	return nil
}

func (r *invoiceRepository) InsertOverrides(ctx context.Context, overrides []invoice.Override) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overrides (vendor_id, agent_id, issue_date, wkending, name, sales, commission, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for _, o := range overrides {
		_, err := q.Exec(ctx, query,
			o.VendorID, o.AgentID, o.IssueDate, o.WeekEnding, o.Name, o.NumSales, o.Commission, o.Total,
		)
		if err != nil {
			return fmt.Errorf("failed to insert override: %w", err)
		}
	}
	return nil
}

func (r *invoiceRepository) InsertExpenses(ctx context.Context, expenses []invoice.Expense) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO expenses (vendor_id, agent_id, issue_date, wkending, type, amount, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for _, e := range expenses {
		_, err := q.Exec(ctx, query,
			e.VendorID, e.AgentID, e.IssueDate, e.WeekEnding, e.Type, e.Amount, e.Notes,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense: %w", err)
		}
	}
	return nil
}

// ========== BUCKET READS ==========

func (r *invoiceRepository) GetSales(ctx context.Context, key invoice.BucketKey) ([]invoice.Sale, error) {
	return r.querySales(ctx, `
		SELECT id, vendor_id, agent_id, issue_date, sale_date, wkending,
			first_name, last_name, address, city, status, amount, created_at, updated_at
		FROM invoices
		WHERE agent_id = $1 AND vendor_id = $2 AND issue_date = $3
		ORDER BY id
	`, key.AgentID, key.VendorID, key.IssueDate)
}

func (r *invoiceRepository) GetOverrides(ctx context.Context, key invoice.BucketKey) ([]invoice.Override, error) {
	return r.queryOverrides(ctx, `
		SELECT id, vendor_id, agent_id, issue_date, wkending, name, sales, commission, total, created_at, updated_at
		FROM overrides
		WHERE agent_id = $1 AND vendor_id = $2 AND issue_date = $3
		ORDER BY id
	`, key.AgentID, key.VendorID, key.IssueDate)
}

func (r *invoiceRepository) GetExpenses(ctx context.Context, key invoice.BucketKey) ([]invoice.Expense, error) {
	return r.queryExpenses(ctx, `
		SELECT id, vendor_id, agent_id, issue_date, wkending, type, amount, notes, created_at, updated_at
		FROM expenses
		WHERE agent_id = $1 AND vendor_id = $2 AND issue_date = $3
		ORDER BY id
	`, key.AgentID, key.VendorID, key.IssueDate)
}

// ========== ISSUE-DATE READS ==========

func (r *invoiceRepository) GetSalesByIssueDate(ctx context.Context, issueDate time.Time) ([]invoice.Sale, error) {
	return r.querySales(ctx, `
		SELECT id, vendor_id, agent_id, issue_date, sale_date, wkending,
			first_name, last_name, address, city, status, amount, created_at, updated_at
		FROM invoices
		WHERE issue_date = $1
		ORDER BY agent_id, id
	`, issueDate)
}

func (r *invoiceRepository) GetOverridesByIssueDate(ctx context.Context, issueDate time.Time) ([]invoice.Override, error) {
	return r.queryOverrides(ctx, `
		SELECT id, vendor_id, agent_id, issue_date, wkending, name, sales, commission, total, created_at, updated_at
		FROM overrides
		WHERE issue_date = $1
		ORDER BY agent_id, id
	`, issueDate)
}

func (r *invoiceRepository) GetExpensesByIssueDate(ctx context.Context, issueDate time.Time) ([]invoice.Expense, error) {
	return r.queryExpenses(ctx, `
		SELECT id, vendor_id, agent_id, issue_date, wkending, type, amount, notes, created_at, updated_at
		FROM expenses
		WHERE issue_date = $1
		ORDER BY agent_id, id
	`, issueDate)
}

// ========== SCAN HELPERS ==========

func (r *invoiceRepository) querySales(ctx context.Context, query string, args ...interface{}) ([]invoice.Sale, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	var sales []invoice.Sale
	for rows.Next() {
		var s invoice.Sale
		if err := rows.Scan(
			&s.ID, &s.VendorID, &s.AgentID, &s.IssueDate, &s.SaleDate, &s.WeekEnding,
			&s.FirstName, &s.LastName, &s.Address, &s.City, &s.Status, &s.Amount,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, s)
	}

	return sales, rows.Err()
}

func (r *invoiceRepository) queryOverrides(ctx context.Context, query string, args ...interface{}) ([]invoice.Override, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query overrides: %w", err)
	}
	defer rows.Close()

	var overrides []invoice.Override
	for rows.Next() {
		var o invoice.Override
		if err := rows.Scan(
			&o.ID, &o.VendorID, &o.AgentID, &o.IssueDate, &o.WeekEnding,
			&o.Name, &o.NumSales, &o.Commission, &o.Total,
			&o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan override: %w", err)
		}
		overrides = append(overrides, o)
	}

	return overrides, rows.Err()
}

func (r *invoiceRepository) queryExpenses(ctx context.Context, query string, args ...interface{}) ([]invoice.Expense, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []invoice.Expense
	for rows.Next() {
		var e invoice.Expense
		if err := rows.Scan(
			&e.ID, &e.VendorID, &e.AgentID, &e.IssueDate, &e.WeekEnding,
			&e.Type, &e.Amount, &e.Notes,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}

	return expenses, rows.Err()
}
