package entity

import "time"

// Campaign audiences.
const (
	AudienceAll     = "all"
	AudienceDue     = "due"
	AudienceExpired = "expired"
	AudienceArea    = "area"
)

// Campaign statuses.
const (
	CampaignStatusDraft   = "draft"
	CampaignStatusSent    = "sent"
	CampaignStatusPartial = "partial" // some messages failed at the gateway
	CampaignStatusFailed  = "failed"
)

// Campaign is a bulk SMS run against a tenant's customer base.
// Template supports {name}, {due_amount} and {expiry_date} placeholders.
type Campaign struct {
	ID              string
	TenantID        string
	Name            string
	Audience        string
	AreaID          string // only set when Audience == AudienceArea
	Template        string
	Status          string
	TotalRecipients int
	SentCount       int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
