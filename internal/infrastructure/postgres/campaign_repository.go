package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/netpulse/netpulse-api/internal/domain/entity"
	"github.com/netpulse/netpulse-api/internal/domain/repository"
)

var _ repository.CampaignRepository = (*CampaignRepo)(nil)

// CampaignRepo implements CampaignRepository (usable with pool or tx).
type CampaignRepo struct {
	q Querier
}

// NewCampaignRepository builds the adapter.
func NewCampaignRepository(q Querier) *CampaignRepo {
	return &CampaignRepo{q: q}
}

// Create persists a new campaign.
func (r *CampaignRepo) Create(campaign *entity.Campaign) error {
	query := `
		INSERT INTO sms_campaigns (id, tenant_id, name, audience, area_id, template, status, total_recipients, sent_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		campaign.ID, campaign.TenantID, campaign.Name, campaign.Audience, campaign.AreaID,
		campaign.Template, campaign.Status, campaign.TotalRecipients, campaign.SentCount,
		campaign.CreatedAt, campaign.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

// GetByID fetches one campaign by ID. Nil when not found.
func (r *CampaignRepo) GetByID(id string) (*entity.Campaign, error) {
	query := `
		SELECT id, tenant_id, name, audience, COALESCE(area_id, ''), template, status, total_recipients, sent_count, created_at, updated_at
		FROM sms_campaigns WHERE id = $1`
	var c entity.Campaign
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.TenantID, &c.Name, &c.Audience, &c.AreaID, &c.Template,
		&c.Status, &c.TotalRecipients, &c.SentCount, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	return &c, nil
}

// ListByTenant pages through the tenant's campaigns, newest first.
func (r *CampaignRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Campaign, error) {
	query := `
		SELECT id, tenant_id, name, audience, COALESCE(area_id, ''), template, status, total_recipients, sent_count, created_at, updated_at
		FROM sms_campaigns WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()
	var list []*entity.Campaign
	for rows.Next() {
		var c entity.Campaign
		if err := rows.Scan(&c.ID, &c.TenantID, &c.Name, &c.Audience, &c.AreaID, &c.Template, &c.Status, &c.TotalRecipients, &c.SentCount, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update rewrites a campaign's mutable columns (status and counters).
func (r *CampaignRepo) Update(campaign *entity.Campaign) error {
	query := `
		UPDATE sms_campaigns SET status = $2, total_recipients = $3, sent_count = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		campaign.ID, campaign.Status, campaign.TotalRecipients, campaign.SentCount, campaign.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update campaign: %w", err)
	}
	return nil
}
