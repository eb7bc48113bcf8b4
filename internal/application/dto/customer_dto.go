package dto

import "github.com/shopspring/decimal"

// CustomerResponse customer in responses. PPPoE password is never echoed.
type CustomerResponse struct {
	ID             string          `json:"id"`
	TenantID       string          `json:"tenant_id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone,omitempty"`
	Email          string          `json:"email,omitempty"`
	NIDNumber      string          `json:"nid_number,omitempty"`
	Address        string          `json:"address,omitempty"`
	AreaID         *string         `json:"area_id"`
	MikrotikID     *string         `json:"mikrotik_id"`
	PPPoEUsername  string          `json:"pppoe_username"`
	PackageID      string          `json:"package_id"`
	ConnectionDate string          `json:"connection_date"`
	ExpiryDate     string          `json:"expiry_date"`
	MonthlyBill    decimal.Decimal `json:"monthly_bill"`
	DueAmount      decimal.Decimal `json:"due_amount"`
	Status         string          `json:"status"`
	Notes          string          `json:"notes,omitempty"`
}

// IntakeStartRequest body for POST /api/intake/sessions.
// Mode "edit" requires CustomerID.
type IntakeStartRequest struct {
	Mode       string `json:"mode"`
	CustomerID string `json:"customer_id,omitempty"`
}

// IntakeFieldsRequest body for PATCH /api/intake/sessions/:id/fields.
// Pointer fields distinguish "not sent" from "set to empty", mirroring the
// field-by-field mutation of the dialog.
type IntakeFieldsRequest struct {
	Name           *string `json:"name,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Email          *string `json:"email,omitempty"`
	NIDNumber      *string `json:"nid_number,omitempty"`
	Address        *string `json:"address,omitempty"`
	AreaID         *string `json:"area_id,omitempty"`
	MikrotikID     *string `json:"mikrotik_id,omitempty"`
	PPPoEUsername  *string `json:"pppoe_username,omitempty"`
	PPPoEPassword  *string `json:"pppoe_password,omitempty"`
	PackageID      *string `json:"package_id,omitempty"`
	ConnectionDate *string `json:"connection_date,omitempty"` // YYYY-MM-DD
	Status         *string `json:"status,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// IntakeStateResponse the session state returned after every wizard call.
type IntakeStateResponse struct {
	SessionID      string            `json:"session_id"`
	Mode           string            `json:"mode"`
	Step           int               `json:"step"`
	Name           string            `json:"name"`
	Phone          string            `json:"phone,omitempty"`
	Email          string            `json:"email,omitempty"`
	AreaID         string            `json:"area_id,omitempty"`
	MikrotikID     string            `json:"mikrotik_id,omitempty"`
	PPPoEUsername  string            `json:"pppoe_username"`
	PackageID      string            `json:"package_id,omitempty"`
	ConnectionDate string            `json:"connection_date,omitempty"`
	ExpiryDate     string            `json:"expiry_date,omitempty"`
	MonthlyBill    decimal.Decimal   `json:"monthly_bill"`
	Errors         map[string]string `json:"errors,omitempty"`
	Done           bool              `json:"done"`
}
