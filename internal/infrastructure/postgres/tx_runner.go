package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/netpulse/netpulse-api/internal/application/billing"
	"github.com/netpulse/netpulse-api/internal/domain/repository"
)

var _ billing.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside a PostgreSQL transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner with the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run begins a transaction, runs fn with repos bound to the tx and commits,
// or rolls back when fn errors.
func (r *TxRunner) Run(ctx context.Context, fn func(
	adjustmentRepo repository.AdjustmentRepository,
	paymentRepo repository.PaymentRepository,
	customerRepo repository.CustomerRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	adjustmentRepo := NewAdjustmentRepository(tx)
	paymentRepo := NewPaymentRepository(tx)
	customerRepo := NewCustomerRepository(tx)

	if err := fn(adjustmentRepo, paymentRepo, customerRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
