package campaign

import (
	"time"

	"github.com/google/uuid"

	"github.com/netpulse/netpulse-api/internal/application/dto"
	"github.com/netpulse/netpulse-api/internal/domain"
	"github.com/netpulse/netpulse-api/internal/domain/entity"
	"github.com/netpulse/netpulse-api/internal/domain/repository"
)

// GatewayUseCase manages a tenant's SMS gateway settings.
type GatewayUseCase struct {
	gatewayRepo repository.GatewayRepository
}

// NewGatewayUseCase builds the use case.
func NewGatewayUseCase(gatewayRepo repository.GatewayRepository) *GatewayUseCase {
	return &GatewayUseCase{gatewayRepo: gatewayRepo}
}

// Get returns the tenant's gateway settings, or ErrNotFound when none are
// configured yet. The API key is never returned in full.
func (uc *GatewayUseCase) Get(tenantID string) (*dto.GatewayConfigResponse, error) {
	gw, err := uc.gatewayRepo.GetByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	if gw == nil {
		return nil, domain.ErrNotFound
	}
	return toGatewayResponse(gw), nil
}

// Save replaces the tenant's gateway settings.
func (uc *GatewayUseCase) Save(tenantID string, in dto.GatewayConfigRequest) (*dto.GatewayConfigResponse, error) {
	if in.Provider == "" || in.APIKey == "" || in.SenderID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	gw := &entity.SMSGateway{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Provider:  in.Provider,
		APIKey:    in.APIKey,
		SenderID:  in.SenderID,
		Masked:    in.Masked,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.gatewayRepo.Upsert(gw); err != nil {
		return nil, err
	}
	return toGatewayResponse(gw), nil
}

func toGatewayResponse(gw *entity.SMSGateway) *dto.GatewayConfigResponse {
	tail := gw.APIKey
	if len(tail) > 4 {
		tail = tail[len(tail)-4:]
	}
	return &dto.GatewayConfigResponse{
		Provider:   gw.Provider,
		APIKeyTail: tail,
		SenderID:   gw.SenderID,
		Masked:     gw.Masked,
		Status:     gw.Status,
	}
}
