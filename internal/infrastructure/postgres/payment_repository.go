package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/netpulse/netpulse-api/internal/domain/entity"
	"github.com/netpulse/netpulse-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implements PaymentRepository (usable with pool or tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository builds the adapter.
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persists one payment. Payments are append-only.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, tenant_id, customer_id, amount, method, trx_id, note, paid_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.TenantID, payment.CustomerID, payment.Amount, payment.Method,
		payment.TrxID, payment.Note, payment.PaidAt, payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// ListByCustomer returns a customer's payments, newest first.
func (r *PaymentRepo) ListByCustomer(customerID string) ([]*entity.Payment, error) {
	query := `
		SELECT id, tenant_id, customer_id, amount, method, trx_id, note, paid_at, created_at
		FROM payments WHERE customer_id = $1 ORDER BY paid_at DESC`
	rows, err := r.q.Query(context.Background(), query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list payments by customer: %w", err)
	}
	defer rows.Close()
	return collectPayments(rows)
}

// ListByTenantAndRange returns payments whose PaidAt falls in [from, to],
// oldest first.
func (r *PaymentRepo) ListByTenantAndRange(tenantID string, from, to time.Time) ([]*entity.Payment, error) {
	query := `
		SELECT id, tenant_id, customer_id, amount, method, trx_id, note, paid_at, created_at
		FROM payments WHERE tenant_id = $1 AND paid_at BETWEEN $2 AND $3 ORDER BY paid_at`
	rows, err := r.q.Query(context.Background(), query, tenantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list payments by range: %w", err)
	}
	defer rows.Close()
	return collectPayments(rows)
}

func collectPayments(rows pgx.Rows) ([]*entity.Payment, error) {
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.TenantID, &p.CustomerID, &p.Amount, &p.Method, &p.TrxID, &p.Note, &p.PaidAt, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
