package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/drewpayment/choice-marketing-partners-sub002/internal/domain/payroll"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/database"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/filter"
)

type ledgerRepository struct {
	db *database.DB
}

func NewLedgerRepository(db *database.DB) payroll.LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) DeleteForKey(ctx context.Context, agentID, vendorID int, payDate time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM payroll WHERE agent_id = $1 AND vendor_id = $2 AND pay_date = $3`
	_, err := q.Exec(ctx, query, agentID, vendorID, payDate)
	if err != nil {
		return fmt.Errorf("failed to delete payroll ledger rows: %w", err)
	}
	return nil
}

func (r *ledgerRepository) Insert(ctx context.Context, row payroll.LedgerRow) (payroll.LedgerRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll (agent_id, agent_name, amount, is_paid, vendor_id, pay_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, agent_id, agent_name, amount, is_paid, vendor_id, pay_date, created_at, updated_at
	`

	var inserted payroll.LedgerRow
	err := q.QueryRow(ctx, query,
		row.AgentID, row.AgentName, row.Amount, row.IsPaid, row.VendorID, row.PayDate,
	).Scan(
		&inserted.ID, &inserted.AgentID, &inserted.AgentName, &inserted.Amount,
		&inserted.IsPaid, &inserted.VendorID, &inserted.PayDate,
		&inserted.CreatedAt, &inserted.UpdatedAt,
	)
	if err != nil {
		return payroll.LedgerRow{}, fmt.Errorf("failed to insert payroll ledger row: %w", err)
	}

	return inserted, nil
}

func (r *ledgerRepository) List(ctx context.Context, payDate time.Time, agent, vendor filter.Filter, includePaid bool) ([]payroll.LedgerRow, error) {
	q := GetQuerier(ctx, r.db)

	conds := []string{"pay_date = $1"}
	args := []interface{}{payDate}
	argIdx := 2

	agent.Append("agent_id", &conds, &args, &argIdx)
	vendor.Append("vendor_id", &conds, &args, &argIdx)
	if !includePaid {
		conds = append(conds, "is_paid = false")
	}

	query := fmt.Sprintf(`
		SELECT id, agent_id, agent_name, amount, is_paid, vendor_id, pay_date, created_at, updated_at
		FROM payroll
		WHERE %s
		ORDER BY agent_name, agent_id
	`, strings.Join(conds, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll ledger: %w", err)
	}
	defer rows.Close()

	var result []payroll.LedgerRow
	for rows.Next() {
		var row payroll.LedgerRow
		if err := rows.Scan(
			&row.ID, &row.AgentID, &row.AgentName, &row.Amount,
			&row.IsPaid, &row.VendorID, &row.PayDate,
			&row.CreatedAt, &row.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll ledger row: %w", err)
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

func (r *ledgerRepository) MarkPaid(ctx context.Context, ids []int64, isPaid bool) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll
		SET is_paid = $1, updated_at = NOW()
		WHERE id = ANY($2)
	`

	tag, err := q.Exec(ctx, query, isPaid, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to mark payroll rows paid: %w", err)
	}

	return tag.RowsAffected(), nil
}
