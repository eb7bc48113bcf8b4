package dto

// CreateCampaignRequest body for POST /api/campaigns.
// Audience: all | due | expired | area (area requires AreaID).
type CreateCampaignRequest struct {
	Name     string `json:"name"`
	Audience string `json:"audience"`
	AreaID   string `json:"area_id,omitempty"`
	Template string `json:"template"`
}

// CampaignResponse campaign in responses.
type CampaignResponse struct {
	ID              string `json:"id"`
	TenantID        string `json:"tenant_id"`
	Name            string `json:"name"`
	Audience        string `json:"audience"`
	AreaID          string `json:"area_id,omitempty"`
	Template        string `json:"template"`
	Status          string `json:"status"`
	TotalRecipients int    `json:"total_recipients"`
	SentCount       int    `json:"sent_count"`
}

// GatewayConfigRequest body for PUT /api/sms-gateway.
type GatewayConfigRequest struct {
	Provider string `json:"provider"`
	APIKey   string `json:"api_key"`
	SenderID string `json:"sender_id"`
	Masked   bool   `json:"masked,omitempty"`
}

// GatewayConfigResponse gateway settings in responses; the API key is
// truncated to its last four characters.
type GatewayConfigResponse struct {
	Provider   string `json:"provider"`
	APIKeyTail string `json:"api_key_tail,omitempty"`
	SenderID   string `json:"sender_id"`
	Masked     bool   `json:"masked"`
	Status     string `json:"status"`
}
