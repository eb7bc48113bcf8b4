package entity

import "time"

// Area is a coverage zone within a tenant's network (e.g. a para or ward).
type Area struct {
	ID        string
	TenantID  string
	Name      string
	Upazila   string
	District  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
