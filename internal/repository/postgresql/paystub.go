package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/drewpayment/choice-marketing-partners-sub002/internal/domain/paystub"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/database"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/filter"
)

type paystubRepository struct {
	db *database.DB
}

func NewPaystubRepository(db *database.DB) paystub.PaystubRepository {
	return &paystubRepository{db: db}
}

func (r *paystubRepository) DeleteForDate(ctx context.Context, issueDate time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM paystubs WHERE issue_date = $1`, issueDate)
	if err != nil {
		return 0, fmt.Errorf("failed to delete paystubs for date: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *paystubRepository) Insert(ctx context.Context, stub paystub.Paystub) (paystub.Paystub, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO paystubs (agent_id, agent_name, vendor_id, vendor_name, amount, issue_date, wkend_date, modified_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, agent_id, agent_name, vendor_id, vendor_name, amount, issue_date, wkend_date, modified_by, created_at, updated_at
	`

	var inserted paystub.Paystub
	err := q.QueryRow(ctx, query,
		stub.AgentID, stub.AgentName, stub.VendorID, stub.VendorName,
		stub.Amount, stub.IssueDate, stub.WeekEnding, stub.ModifiedBy,
	).Scan(
		&inserted.ID, &inserted.AgentID, &inserted.AgentName, &inserted.VendorID, &inserted.VendorName,
		&inserted.Amount, &inserted.IssueDate, &inserted.WeekEnding, &inserted.ModifiedBy,
		&inserted.CreatedAt, &inserted.UpdatedAt,
	)
	if err != nil {
		return paystub.Paystub{}, fmt.Errorf("failed to insert paystub: %w", err)
	}

	return inserted, nil
}

func (r *paystubRepository) List(ctx context.Context, issueDate time.Time, agent, vendor filter.Filter) ([]paystub.Paystub, error) {
	q := GetQuerier(ctx, r.db)

	conds := []string{"issue_date = $1"}
	args := []interface{}{issueDate}
	argIdx := 2

	agent.Append("agent_id", &conds, &args, &argIdx)
	vendor.Append("vendor_id", &conds, &args, &argIdx)

	query := fmt.Sprintf(`
		SELECT id, agent_id, agent_name, vendor_id, vendor_name, amount, issue_date, wkend_date, modified_by, created_at, updated_at
		FROM paystubs
		WHERE %s
		ORDER BY agent_name, vendor_name
	`, strings.Join(conds, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list paystubs: %w", err)
	}
	defer rows.Close()

	var stubs []paystub.Paystub
	for rows.Next() {
		var s paystub.Paystub
		if err := rows.Scan(
			&s.ID, &s.AgentID, &s.AgentName, &s.VendorID, &s.VendorName,
			&s.Amount, &s.IssueDate, &s.WeekEnding, &s.ModifiedBy,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan paystub: %w", err)
		}
		stubs = append(stubs, s)
	}

	return stubs, rows.Err()
}
