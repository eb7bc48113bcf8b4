// Package billing holds the billing use cases: pro-rata adjustments, payment
// collection and the statement PDF.
package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/netpulse/netpulse-api/internal/application/dto"
	"github.com/netpulse/netpulse-api/internal/domain"
	domainbilling "github.com/netpulse/netpulse-api/internal/domain/billing"
	"github.com/netpulse/netpulse-api/internal/domain/entity"
	"github.com/netpulse/netpulse-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// AdjustmentUseCase records pro-rata bill lines for partial periods
// (mid-cycle package changes and the like).
type AdjustmentUseCase struct {
	adjustmentRepo repository.AdjustmentRepository
	customerRepo   repository.CustomerRepository
	txRunner       TxRunner
}

// NewAdjustmentUseCase builds the use case.
func NewAdjustmentUseCase(
	adjustmentRepo repository.AdjustmentRepository,
	customerRepo repository.CustomerRepository,
	txRunner TxRunner,
) *AdjustmentUseCase {
	return &AdjustmentUseCase{adjustmentRepo: adjustmentRepo, customerRepo: customerRepo, txRunner: txRunner}
}

// Create computes the proportional charge for [from_date, to_date] at the
// given monthly rate, persists the line and adds it to the customer's due
// balance in one transaction. A negative amount (inverted range) is accepted
// and acts as a credit.
func (uc *AdjustmentUseCase) Create(ctx context.Context, tenantID string, in dto.AdjustmentRequest) (*dto.AdjustmentResponse, error) {
	if in.CustomerID == "" || in.Rate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	from, err := time.Parse(dateLayout, in.FromDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	to, err := time.Parse(dateLayout, in.ToDate)
	if err != nil {
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

	days := domainbilling.DaysCount(from, to)
	amount := domainbilling.ProRataAmount(in.Rate, from, to)

	adj := &entity.BillAdjustment{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		CustomerID:  in.CustomerID,
		Description: in.Description,
		Rate:        in.Rate,
		FromDate:    from,
		ToDate:      to,
		Days:        days,
		Amount:      amount,
		CreatedAt:   time.Now(),
	}
	err = uc.txRunner.Run(ctx, func(
		adjustmentRepo repository.AdjustmentRepository,
		_ repository.PaymentRepository,
		customerRepo repository.CustomerRepository,
	) error {
		if err := adjustmentRepo.Create(adj); err != nil {
			return err
		}
		customer.DueAmount = customer.DueAmount.Add(amount)
		customer.UpdatedAt = time.Now()
		return customerRepo.Update(customer)
	})
	if err != nil {
		return nil, err
	}

	return toAdjustmentResponse(adj), nil
}

// ListByCustomer returns a customer's adjustment lines, tenant-checked.
func (uc *AdjustmentUseCase) ListByCustomer(tenantID, customerID string) ([]*dto.AdjustmentResponse, error) {
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.TenantID != tenantID {
		return nil, domain.ErrForbidden
	}
	list, err := uc.adjustmentRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AdjustmentResponse, 0, len(list))
	for _, adj := range list {
		out = append(out, toAdjustmentResponse(adj))
	}
	return out, nil
}

func toAdjustmentResponse(adj *entity.BillAdjustment) *dto.AdjustmentResponse {
	return &dto.AdjustmentResponse{
		ID:          adj.ID,
		CustomerID:  adj.CustomerID,
		Description: adj.Description,
		Rate:        adj.Rate,
		FromDate:    adj.FromDate.Format(dateLayout),
		ToDate:      adj.ToDate.Format(dateLayout),
		Days:        adj.Days,
		Amount:      adj.Amount,
	}
}
