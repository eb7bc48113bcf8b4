package intake

import "context"

// UsernameChecker answers whether a PPPoE username is already taken by another
// customer of the tenant. Implementations must match case-insensitively.
type UsernameChecker interface {
	Exists(ctx context.Context, tenantID, username string) (bool, error)
}

// Payload is the flat denormalized object the wizard assembles on submit.
// Key presence is meaningful: an absent key must not touch the stored column
// (e.g. "status" is only present when the caller may edit it), while a key
// holding nil writes NULL.
type Payload map[string]interface{}

// CustomerWriter persists the assembled payload. Contract: true means
// committed; false or an error means not committed. The writer owns any
// user-facing failure messaging.
type CustomerWriter interface {
	Create(ctx context.Context, tenantID string, payload Payload) (bool, error)
	Update(ctx context.Context, tenantID, customerID string, payload Payload) (bool, error)
}
