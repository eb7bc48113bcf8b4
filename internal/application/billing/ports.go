package billing

import (
	"context"

	"github.com/netpulse/netpulse-api/internal/domain/entity"
	"github.com/netpulse/netpulse-api/internal/domain/repository"
)

// TxRunner runs fn with billing repositories bound to a single database
// transaction. A non-nil error from fn rolls everything back.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		adjustmentRepo repository.AdjustmentRepository,
		paymentRepo repository.PaymentRepository,
		customerRepo repository.CustomerRepository,
	) error) error
}

// StatementPDFGenerator renders a customer billing statement. The concrete
// implementation uses Maroto; tests inject a fake.
type StatementPDFGenerator interface {
	GenerateStatementPDF(
		ctx context.Context,
		tenant *entity.Tenant,
		customer *entity.Customer,
		pkg *entity.Package,
		adjustments []*entity.BillAdjustment,
		payments []*entity.Payment,
	) ([]byte, error)
}
