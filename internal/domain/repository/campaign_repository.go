package repository

import "github.com/netpulse/netpulse-api/internal/domain/entity"

// CampaignRepository is the persistence port for SMS campaigns.
type CampaignRepository interface {
	Create(campaign *entity.Campaign) error
	GetByID(id string) (*entity.Campaign, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Campaign, error)
	Update(campaign *entity.Campaign) error
}
