package repository

import (
	"time"

	"github.com/netpulse/netpulse-api/internal/domain/entity"
)

// PaymentRepository is the persistence port for collected payments.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	ListByCustomer(customerID string) ([]*entity.Payment, error)
	// ListByTenantAndRange returns payments whose PaidAt falls in [from, to].
	ListByTenantAndRange(tenantID string, from, to time.Time) ([]*entity.Payment, error)
}
