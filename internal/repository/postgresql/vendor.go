package postgresql

import (
	"context"
	"fmt"

	"github.com/drewpayment/choice-marketing-partners-sub002/internal/domain/vendor"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type vendorRepository struct {
	db *database.DB
}

func NewVendorRepository(db *database.DB) vendor.VendorRepository {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) GetByID(ctx context.Context, id int) (vendor.Vendor, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, is_active, created_at, updated_at FROM vendors WHERE id = $1`

	var v vendor.Vendor
	err := q.QueryRow(ctx, query, id).Scan(&v.ID, &v.Name, &v.IsActive, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return vendor.Vendor{}, vendor.ErrVendorNotFound
		}
		return vendor.Vendor{}, fmt.Errorf("failed to get vendor: %w", err)
	}

	return v, nil
}

func (r *vendorRepository) GetAll(ctx context.Context, activeOnly bool) ([]vendor.Vendor, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, is_active, created_at, updated_at FROM vendors`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	defer rows.Close()

	var vendors []vendor.Vendor
	for rows.Next() {
		var v vendor.Vendor
		if err := rows.Scan(&v.ID, &v.Name, &v.IsActive, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vendor: %w", err)
		}
		vendors = append(vendors, v)
	}

	return vendors, rows.Err()
}
