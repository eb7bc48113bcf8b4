package entity

import "time"

// SMSGateway is a tenant's SMS provider configuration. Delivery goes through
// the external polling server; this record only carries the credentials and
// sender identity it should use.
type SMSGateway struct {
	ID        string
	TenantID  string
	Provider  string // e.g. "bulksmsbd", "ssl_wireless"
	APIKey    string
	SenderID  string
	Masked    bool   // masked sender (brand name) vs non-masked (number)
	Status    string // active | disabled
	CreatedAt time.Time
	UpdatedAt time.Time
}
