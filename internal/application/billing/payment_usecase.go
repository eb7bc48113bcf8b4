package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/netpulse/netpulse-api/internal/application/dto"
	"github.com/netpulse/netpulse-api/internal/domain"
	"github.com/netpulse/netpulse-api/internal/domain/entity"
	"github.com/netpulse/netpulse-api/internal/domain/repository"
)

// PaymentUseCase records collections against a customer's due balance.
type PaymentUseCase struct {
	paymentRepo  repository.PaymentRepository
	customerRepo repository.CustomerRepository
	packageRepo  repository.PackageRepository
	txRunner     TxRunner
}

// NewPaymentUseCase builds the use case.
func NewPaymentUseCase(
	paymentRepo repository.PaymentRepository,
	customerRepo repository.CustomerRepository,
	packageRepo repository.PackageRepository,
	txRunner TxRunner,
) *PaymentUseCase {
	return &PaymentUseCase{paymentRepo: paymentRepo, customerRepo: customerRepo, packageRepo: packageRepo, txRunner: txRunner}
}

var validMethods = map[string]bool{
	entity.PaymentMethodCash:   true,
	entity.PaymentMethodBkash:  true,
	entity.PaymentMethodNagad:  true,
	entity.PaymentMethodRocket: true,
	entity.PaymentMethodBank:   true,
}

// Record persists a payment, reduces the customer's due balance and, when the
// balance clears, extends the expiry by the package validity and reactivates
// the account. The payment row and the customer update commit together.
func (uc *PaymentUseCase) Record(ctx context.Context, tenantID string, in dto.PaymentRequest) (*dto.PaymentResponse, error) {
	if in.CustomerID == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if !validMethods[in.Method] {
		return nil, domain.ErrInvalidInput
	}

	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.TenantID != tenantID {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	payment := &entity.Payment{
		ID:         uuid.New().String(),
		TenantID:   tenantID,
		CustomerID: in.CustomerID,
		Amount:     in.Amount,
		Method:     in.Method,
		TrxID:      in.TrxID,
		Note:       in.Note,
		PaidAt:     now,
		CreatedAt:  now,
	}
	err = uc.txRunner.Run(ctx, func(
		_ repository.AdjustmentRepository,
		paymentRepo repository.PaymentRepository,
		customerRepo repository.CustomerRepository,
	) error {
		if err := paymentRepo.Create(payment); err != nil {
			return err
		}
		customer.DueAmount = customer.DueAmount.Sub(in.Amount)
		if !customer.DueAmount.IsPositive() {
			// Balance cleared: roll the subscription forward one validity period.
			validity := entity.DefaultValidityDays
			if pkg, pErr := uc.packageRepo.GetByID(customer.PackageID); pErr == nil && pkg != nil {
				validity = pkg.Validity()
			}
			customer.ExpiryDate = customer.ExpiryDate.AddDate(0, 0, validity)
			customer.Status = entity.CustomerStatusActive
		}
		customer.UpdatedAt = now
		return customerRepo.Update(customer)
	})
	if err != nil {
		return nil, err
	}

	return &dto.PaymentResponse{
		ID:           payment.ID,
		CustomerID:   payment.CustomerID,
		Amount:       payment.Amount,
		Method:       payment.Method,
		TrxID:        payment.TrxID,
		PaidAt:       payment.PaidAt.Format(time.RFC3339),
		RemainingDue: customer.DueAmount,
		ExpiryDate:   customer.ExpiryDate.Format(dateLayout),
	}, nil
}
