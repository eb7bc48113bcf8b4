package repository

import "github.com/netpulse/netpulse-api/internal/domain/entity"

// AdjustmentRepository is the persistence port for pro-rata bill adjustments.
type AdjustmentRepository interface {
	Create(adj *entity.BillAdjustment) error
	ListByCustomer(customerID string) ([]*entity.BillAdjustment, error)
}
