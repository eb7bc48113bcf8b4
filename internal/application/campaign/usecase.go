// Package campaign implements bulk SMS runs: audience selection, template
// rendering and dispatch through the tenant's configured gateway.
package campaign

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/netpulse/netpulse-api/internal/application/dto"
	"github.com/netpulse/netpulse-api/internal/domain"
	"github.com/netpulse/netpulse-api/internal/domain/entity"
	"github.com/netpulse/netpulse-api/internal/domain/repository"
)

// Dispatcher delivers one SMS through the external gateway. Failures are
// per-message; a failed send never aborts the rest of the run.
type Dispatcher interface {
	SendSMS(ctx context.Context, gw *entity.SMSGateway, phone, message string) error
}

// UseCase campaign operations for one tenant.
type UseCase struct {
	campaignRepo repository.CampaignRepository
	customerRepo repository.CustomerRepository
	gatewayRepo  repository.GatewayRepository
	dispatcher   Dispatcher
}

// NewUseCase builds the use case.
func NewUseCase(
	campaignRepo repository.CampaignRepository,
	customerRepo repository.CustomerRepository,
	gatewayRepo repository.GatewayRepository,
	dispatcher Dispatcher,
) *UseCase {
	return &UseCase{
		campaignRepo: campaignRepo,
		customerRepo: customerRepo,
		gatewayRepo:  gatewayRepo,
		dispatcher:   dispatcher,
	}
}

// Send creates a campaign, resolves its audience and dispatches the rendered
// message to every recipient with a phone number. Recipients that fail at the
// gateway are counted but do not stop the run.
func (uc *UseCase) Send(ctx context.Context, tenantID string, in dto.CreateCampaignRequest) (*dto.CampaignResponse, error) {
	if in.Name == "" || in.Template == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Audience == entity.AudienceArea && in.AreaID == "" {
		return nil, domain.ErrInvalidInput
	}

	gw, err := uc.gatewayRepo.GetByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	if gw == nil || gw.Status != "active" {
		return nil, domain.ErrGatewayUnavailable
	}

	customers, err := uc.customerRepo.ListAllByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	recipients := SelectAudience(customers, in.Audience, in.AreaID, time.Now())

	now := time.Now()
	c := &entity.Campaign{
		ID:              uuid.New().String(),
		TenantID:        tenantID,
		Name:            in.Name,
		Audience:        in.Audience,
		AreaID:          in.AreaID,
		Template:        in.Template,
		Status:          entity.CampaignStatusDraft,
		TotalRecipients: len(recipients),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.campaignRepo.Create(c); err != nil {
		return nil, err
	}

	sent := 0
	for _, r := range recipients {
		if r.Phone == "" {
			continue
		}
		msg := RenderTemplate(in.Template, r)
		if sendErr := uc.dispatcher.SendSMS(ctx, gw, r.Phone, msg); sendErr != nil {
			log.Warn().Err(sendErr).
				Str("campaign_id", c.ID).
				Str("customer_id", r.ID).
				Msg("sms dispatch failed")
			continue
		}
		sent++
	}

	c.SentCount = sent
	switch {
	case sent == 0 && len(recipients) > 0:
		c.Status = entity.CampaignStatusFailed
	case sent < len(recipients):
		c.Status = entity.CampaignStatusPartial
	default:
		c.Status = entity.CampaignStatusSent
	}
	c.UpdatedAt = time.Now()
	if err := uc.campaignRepo.Update(c); err != nil {
		return nil, err
	}
	return toCampaignResponse(c), nil
}

// List pages through the tenant's campaigns.
func (uc *UseCase) List(tenantID string, limit, offset int) ([]*dto.CampaignResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.campaignRepo.ListByTenant(tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CampaignResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCampaignResponse(c))
	}
	return out, nil
}

// SelectAudience filters the customer base for a campaign, preserving input
// order.
func SelectAudience(customers []*entity.Customer, audience, areaID string, now time.Time) []*entity.Customer {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var out []*entity.Customer
	for _, c := range customers {
		switch audience {
		case entity.AudienceAll:
			out = append(out, c)
		case entity.AudienceDue:
			if c.DueAmount.IsPositive() {
				out = append(out, c)
			}
		case entity.AudienceExpired:
			if c.ExpiryDate.Before(today) {
				out = append(out, c)
			}
		case entity.AudienceArea:
			if c.AreaID != nil && *c.AreaID == areaID {
				out = append(out, c)
			}
		}
	}
	return out
}

// RenderTemplate substitutes the supported placeholders with the customer's
// values: {name}, {due_amount}, {expiry_date}.
func RenderTemplate(tpl string, c *entity.Customer) string {
	r := strings.NewReplacer(
		"{name}", c.Name,
		"{due_amount}", c.DueAmount.StringFixed(2),
		"{expiry_date}", c.ExpiryDate.Format("2006-01-02"),
	)
	return r.Replace(tpl)
}

func toCampaignResponse(c *entity.Campaign) *dto.CampaignResponse {
	return &dto.CampaignResponse{
		ID:              c.ID,
		TenantID:        c.TenantID,
		Name:            c.Name,
		Audience:        c.Audience,
		AreaID:          c.AreaID,
		Template:        c.Template,
		Status:          c.Status,
		TotalRecipients: c.TotalRecipients,
		SentCount:       c.SentCount,
	}
}
