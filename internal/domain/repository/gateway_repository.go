package repository

import "github.com/netpulse/netpulse-api/internal/domain/entity"

// GatewayRepository is the persistence port for tenant SMS gateway settings.
// One configuration per tenant; Upsert replaces any existing row.
type GatewayRepository interface {
	GetByTenant(tenantID string) (*entity.SMSGateway, error)
	Upsert(gw *entity.SMSGateway) error
}
