package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/netpulse/netpulse-api/internal/domain/entity"
	"github.com/netpulse/netpulse-api/internal/domain/repository"
)

var _ repository.GatewayRepository = (*GatewayRepo)(nil)

// GatewayRepo implements GatewayRepository. One row per tenant, enforced by a
// unique index on tenant_id.
type GatewayRepo struct {
	q Querier
}

// NewGatewayRepository builds the adapter.
func NewGatewayRepository(q Querier) *GatewayRepo {
	return &GatewayRepo{q: q}
}

// GetByTenant fetches the tenant's gateway settings. Nil when not configured.
func (r *GatewayRepo) GetByTenant(tenantID string) (*entity.SMSGateway, error) {
	query := `
		SELECT id, tenant_id, provider, api_key, sender_id, masked, status, created_at, updated_at
		FROM sms_gateways WHERE tenant_id = $1`
	var gw entity.SMSGateway
	err := r.q.QueryRow(context.Background(), query, tenantID).Scan(
		&gw.ID, &gw.TenantID, &gw.Provider, &gw.APIKey, &gw.SenderID,
		&gw.Masked, &gw.Status, &gw.CreatedAt, &gw.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gateway: %w", err)
	}
	return &gw, nil
}

// Upsert inserts or replaces tenant gateway settings.
func (r *GatewayRepo) Upsert(gw *entity.SMSGateway) error {
	query := `
		INSERT INTO sms_gateways (id, tenant_id, provider, api_key, sender_id, masked, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (tenant_id) DO UPDATE SET
			provider = EXCLUDED.provider,
			api_key = EXCLUDED.api_key,
			sender_id = EXCLUDED.sender_id,
			masked = EXCLUDED.masked,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		gw.ID, gw.TenantID, gw.Provider, gw.APIKey, gw.SenderID, gw.Masked,
		gw.Status, gw.CreatedAt, gw.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert gateway: %w", err)
	}
	return nil
}
