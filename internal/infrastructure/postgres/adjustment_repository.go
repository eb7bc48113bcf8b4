package postgres

import (
	"context"
	"fmt"

	"github.com/netpulse/netpulse-api/internal/domain/entity"
	"github.com/netpulse/netpulse-api/internal/domain/repository"
)

var _ repository.AdjustmentRepository = (*AdjustmentRepo)(nil)

// AdjustmentRepo implements AdjustmentRepository (usable with pool or tx).
type AdjustmentRepo struct {
	q Querier
}

// NewAdjustmentRepository builds the adapter.
func NewAdjustmentRepository(q Querier) *AdjustmentRepo {
	return &AdjustmentRepo{q: q}
}

// Create persists one pro-rata line. Adjustments are append-only.
func (r *AdjustmentRepo) Create(adj *entity.BillAdjustment) error {
	query := `
		INSERT INTO bill_adjustments (id, tenant_id, customer_id, description, rate, from_date, to_date, days, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		adj.ID, adj.TenantID, adj.CustomerID, adj.Description, adj.Rate,
		adj.FromDate, adj.ToDate, adj.Days, adj.Amount, adj.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert adjustment: %w", err)
	}
	return nil
}

// ListByCustomer returns a customer's adjustment lines, oldest first.
func (r *AdjustmentRepo) ListByCustomer(customerID string) ([]*entity.BillAdjustment, error) {
	query := `
		SELECT id, tenant_id, customer_id, description, rate, from_date, to_date, days, amount, created_at
		FROM bill_adjustments WHERE customer_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list adjustments: %w", err)
	}
	defer rows.Close()
	var list []*entity.BillAdjustment
	for rows.Next() {
		var a entity.BillAdjustment
		if err := rows.Scan(&a.ID, &a.TenantID, &a.CustomerID, &a.Description, &a.Rate, &a.FromDate, &a.ToDate, &a.Days, &a.Amount, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan adjustment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
